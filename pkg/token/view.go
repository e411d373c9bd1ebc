package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/token-gateway/pkg/l2"
)

// TransferEvent is emitted on every balance movement. Mints have a zero From, burns a
// zero To.
type TransferEvent struct {
	From  common.Address
	To    common.Address
	Value *big.Int
}

func (TransferEvent) EventName() string { return "Transfer" }

// TransferReceiver is implemented by contracts that want to be notified when a deposit
// with callback data lands on them.
type TransferReceiver interface {
	l2.Contract
	// OnTransferReceived must return TransferReceivedSelector to accept the transfer.
	OnTransferReceived(env *l2.Env, operator, sender common.Address, amount *big.Int, data []byte) ([4]byte, error)
}

// TransferReceivedSelector is the acknowledgement a TransferReceiver returns.
var TransferReceivedSelector = func() [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte("onTransferReceived(address,address,uint256,bytes)"))[:4])
	return sel
}()

// Info is a read-only snapshot of an instance.
type Info struct {
	Address     common.Address
	L1Address   common.Address
	Gateway     common.Address
	Template    common.Address
	Kind        string
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
}

// Describe reads the instance at addr.
func Describe(txn *l2.Txn, addr common.Address) (*Info, error) {
	t, err := l2.CodeAs[*Token](txn, addr)
	if err != nil {
		return nil, err
	}
	if !txn.BoolAt(addr, slotInitialized) {
		return nil, ErrNotInitialized
	}
	var decimals uint8
	if v, ok := txn.GetState(addr, slotDecimals); ok {
		decimals = v.(uint8)
	}
	return &Info{
		Address:     addr,
		L1Address:   txn.AddressAt(addr, slotL1Address),
		Gateway:     txn.AddressAt(addr, slotGateway),
		Template:    t.TemplateAddress(),
		Kind:        t.template.Kind(),
		Name:        txn.StringAt(addr, slotName),
		Symbol:      txn.StringAt(addr, slotSymbol),
		Decimals:    decimals,
		TotalSupply: txn.BigAt(addr, slotTotalSupply),
	}, nil
}

// BalanceOf returns the balance of holder on the instance at addr. Unknown instances
// and holders have a zero balance.
func BalanceOf(txn *l2.Txn, addr, holder common.Address) *big.Int {
	return txn.BigAt(addr, balanceSlot(holder))
}

// Holders returns every holder of the instance at addr with a non-zero balance.
func Holders(txn *l2.Txn, addr common.Address) map[common.Address]*big.Int {
	out := make(map[common.Address]*big.Int)
	txn.WalkStorage(addr, prefixBalance, func(slot string, v any) bool {
		b := v.(*big.Int)
		if b.Sign() > 0 {
			out[common.HexToAddress(slot[len(prefixBalance):])] = new(big.Int).Set(b)
		}
		return false
	})
	return out
}
