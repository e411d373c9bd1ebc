package token

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/token-gateway/pkg/l2"
)

// Storage layout shared by every instance.
const (
	slotInitialized = "initialized"
	slotL1Address   = "l1Address"
	slotGateway     = "gateway"
	slotName        = "name"
	slotSymbol      = "symbol"
	slotDecimals    = "decimals"
	slotTotalSupply = "totalSupply"
	prefixBalance   = "balance/"
)

func balanceSlot(holder common.Address) string {
	return prefixBalance + holder.Hex()
}

// Template is the behaviour shared by every instance of a representation. It keeps no
// state of its own: all reads and writes go to the storage of the instance running it
// (env.Self()).
type Template interface {
	l2.Contract
	Mint(env *l2.Env, to common.Address, amount *big.Int) error
	Burn(env *l2.Env, from common.Address, amount *big.Int) error
	Transfer(env *l2.Env, from, to common.Address, amount *big.Int) error
}

// ERC20Template implements a mint/burn capable fungible token.
type ERC20Template struct {
	kind string
}

// NewStandardTemplate returns the template used by controller-deployed instances.
func NewStandardTemplate() *ERC20Template {
	return &ERC20Template{kind: "standard-template"}
}

// NewCustomTemplate returns the template used by operator-deployed custom instances.
func NewCustomTemplate() *ERC20Template {
	return &ERC20Template{kind: "custom-template"}
}

func (t *ERC20Template) Kind() string { return t.kind }

func (t *ERC20Template) Mint(env *l2.Env, to common.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	txn := env.Txn()
	bal := txn.BigAt(env.Self(), balanceSlot(to))
	supply := txn.BigAt(env.Self(), slotTotalSupply)

	supply.Add(supply, amount)
	if supply.BitLen() > amountBits {
		return fmt.Errorf("%w: total supply overflow", ErrInvalidAmount)
	}

	if err := env.SetState(balanceSlot(to), bal.Add(bal, amount)); err != nil {
		return err
	}
	if err := env.SetState(slotTotalSupply, supply); err != nil {
		return err
	}
	return env.Emit(TransferEvent{From: common.Address{}, To: to, Value: new(big.Int).Set(amount)})
}

func (t *ERC20Template) Burn(env *l2.Env, from common.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	txn := env.Txn()
	bal := txn.BigAt(env.Self(), balanceSlot(from))
	if bal.Cmp(amount) < 0 {
		return fmt.Errorf("%w: have %s, want %s", ErrInsufficientBalance, bal, amount)
	}
	supply := txn.BigAt(env.Self(), slotTotalSupply)

	if err := env.SetState(balanceSlot(from), bal.Sub(bal, amount)); err != nil {
		return err
	}
	if err := env.SetState(slotTotalSupply, supply.Sub(supply, amount)); err != nil {
		return err
	}
	return env.Emit(TransferEvent{From: from, To: common.Address{}, Value: new(big.Int).Set(amount)})
}

func (t *ERC20Template) Transfer(env *l2.Env, from, to common.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if to == (common.Address{}) {
		return ErrZeroAddress
	}
	txn := env.Txn()
	fromBal := txn.BigAt(env.Self(), balanceSlot(from))
	if fromBal.Cmp(amount) < 0 {
		return fmt.Errorf("%w: have %s, want %s", ErrInsufficientBalance, fromBal, amount)
	}
	if err := env.SetState(balanceSlot(from), fromBal.Sub(fromBal, amount)); err != nil {
		return err
	}
	toBal := txn.BigAt(env.Self(), balanceSlot(to))
	if err := env.SetState(balanceSlot(to), toBal.Add(toBal, amount)); err != nil {
		return err
	}
	return env.Emit(TransferEvent{From: from, To: to, Value: new(big.Int).Set(amount)})
}

func checkAmount(amount *big.Int) error {
	if !ValidAmount(amount) {
		return ErrInvalidAmount
	}
	return nil
}
