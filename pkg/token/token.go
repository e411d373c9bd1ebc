// Package token implements the secondary-domain token instances managed by the gateway.
// An instance is a thin proxy bound to one primary-domain asset and to the controller
// that initialized it; its behaviour is delegated to a shared Template.
package token

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/token-gateway/pkg/l2"
)

var (
	ErrAlreadyInitialized  = errors.New("token already initialized")
	ErrNotInitialized      = errors.New("token not initialized")
	ErrOnlyGateway         = errors.New("caller is not the token gateway")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrZeroAddress         = errors.New("zero address")
)

// amountBits is the width of an on-chain amount.
const amountBits = 256

// ValidAmount reports whether amount is non-negative and fits in a uint256.
func ValidAmount(amount *big.Int) bool {
	return amount != nil && amount.Sign() >= 0 && amount.BitLen() <= amountBits
}

// DefaultDecimals is used when the primary domain reports no decimals.
const DefaultDecimals uint8 = 18

// ProxyCreationCode identifies the proxy code every instance is deployed with. Its
// hash takes part in the address derivation of controller-deployed instances.
var ProxyCreationCode = []byte("token-gateway/clonable-proxy/v1")

// ProxyCodeHash returns the hash of ProxyCreationCode.
func ProxyCodeHash() common.Hash {
	return crypto.Keccak256Hash(ProxyCreationCode)
}

// Metadata describes the asset an instance represents.
type Metadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// DefaultMetadata returns ("", "", 18).
func DefaultMetadata() Metadata {
	return Metadata{Decimals: DefaultDecimals}
}

// Controller is the gateway surface an instance calls back into.
type Controller interface {
	Withdraw(env *l2.Env, l1Token, dest common.Address, amount *big.Int) (*big.Int, error)
	Migrate(env *l2.Env, l1Token, account common.Address, amount *big.Int) error
}

// Token is a proxy instance. The template is fixed at construction.
type Token struct {
	templateAddr common.Address
	template     Template
}

// NewProxy returns an instance delegating to template, which is installed at
// templateAddr.
func NewProxy(templateAddr common.Address, template Template) *Token {
	return &Token{templateAddr: templateAddr, template: template}
}

func (t *Token) Kind() string { return "token-proxy:" + t.template.Kind() }

// TemplateAddress returns the address of the template the instance delegates to.
func (t *Token) TemplateAddress() common.Address { return t.templateAddr }

// Initialize binds the instance to l1Token and to the calling controller. It can run
// only once.
func (t *Token) Initialize(env *l2.Env, l1Token common.Address, md Metadata) error {
	if env.Txn().BoolAt(env.Self(), slotInitialized) {
		return ErrAlreadyInitialized
	}
	writes := []struct {
		slot string
		v    any
	}{
		{slotInitialized, true},
		{slotL1Address, l1Token},
		{slotGateway, env.Caller()},
		{slotName, md.Name},
		{slotSymbol, md.Symbol},
		{slotDecimals, md.Decimals},
	}
	for _, w := range writes {
		if err := env.SetState(w.slot, w.v); err != nil {
			return err
		}
	}
	return nil
}

func (t *Token) gateway(env *l2.Env) (common.Address, error) {
	gw := env.Txn().AddressAt(env.Self(), slotGateway)
	if gw == (common.Address{}) {
		return common.Address{}, ErrNotInitialized
	}
	return gw, nil
}

// Mint credits amount to to. Only the controller that initialized the instance may mint.
func (t *Token) Mint(env *l2.Env, to common.Address, amount *big.Int) error {
	gw, err := t.gateway(env)
	if err != nil {
		return err
	}
	if env.Caller() != gw {
		return fmt.Errorf("%w: %s", ErrOnlyGateway, env.Caller().Hex())
	}
	return t.template.Mint(env, to, amount)
}

// Transfer moves amount from the caller to to.
func (t *Token) Transfer(env *l2.Env, to common.Address, amount *big.Int) error {
	if _, err := t.gateway(env); err != nil {
		return err
	}
	return t.template.Transfer(env, env.Caller(), to, amount)
}

// WithdrawTo burns amount from the caller and asks the controller to send it to dest on
// the primary domain. It returns the withdrawal id.
func (t *Token) WithdrawTo(env *l2.Env, dest common.Address, amount *big.Int) (*big.Int, error) {
	gw, err := t.gateway(env)
	if err != nil {
		return nil, err
	}
	if err := t.template.Burn(env, env.Caller(), amount); err != nil {
		return nil, err
	}

	l1Token := env.Txn().AddressAt(env.Self(), slotL1Address)
	var id *big.Int
	res := env.Call(gw, env.GasLeft(), func(g *l2.Env) error {
		c, err := l2.CodeAs[Controller](g.Txn(), gw)
		if err != nil {
			return err
		}
		id, err = c.Withdraw(g, l1Token, dest, amount)
		return err
	})
	if res.Failed() {
		return nil, fmt.Errorf("gateway withdraw: %w", res.Err)
	}
	return id, nil
}

// Migrate burns amount from the caller and asks the controller to mint it on the
// custom representation of the same asset.
func (t *Token) Migrate(env *l2.Env, amount *big.Int) error {
	gw, err := t.gateway(env)
	if err != nil {
		return err
	}
	holder := env.Caller()
	if err := t.template.Burn(env, holder, amount); err != nil {
		return err
	}

	l1Token := env.Txn().AddressAt(env.Self(), slotL1Address)
	res := env.Call(gw, env.GasLeft(), func(g *l2.Env) error {
		c, err := l2.CodeAs[Controller](g.Txn(), gw)
		if err != nil {
			return err
		}
		return c.Migrate(g, l1Token, holder, amount)
	})
	if res.Failed() {
		return fmt.Errorf("gateway migrate: %w", res.Err)
	}
	return nil
}
