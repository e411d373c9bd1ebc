package outbox

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrNotWithdrawal = errors.New("message is not a withdrawal")

// WithdrawalSignature is the primary-domain entry point a withdrawal message invokes.
const WithdrawalSignature = "finalizeWithdrawal(uint256,address,address,uint256)"

// WithdrawalSelector is the 4-byte selector of WithdrawalSignature.
var WithdrawalSelector = crypto.Keccak256([]byte(WithdrawalSignature))[:4]

var withdrawalArgs = func() abi.Arguments {
	uint256, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}
	address, err := abi.NewType("address", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{
		{Name: "exitNum", Type: uint256},
		{Name: "l1Token", Type: address},
		{Name: "to", Type: address},
		{Name: "amount", Type: uint256},
	}
}()

// Withdrawal is the payload of a withdrawal message.
type Withdrawal struct {
	ExitNum *big.Int
	L1Token common.Address
	To      common.Address
	Amount  *big.Int
}

// EncodeWithdrawal returns selector || abi.encode(exitNum, l1Token, to, amount).
func EncodeWithdrawal(w Withdrawal) ([]byte, error) {
	packed, err := withdrawalArgs.Pack(w.ExitNum, w.L1Token, w.To, w.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to pack withdrawal: %w", err)
	}
	return append(common.CopyBytes(WithdrawalSelector), packed...), nil
}

// DecodeWithdrawal parses a payload produced by EncodeWithdrawal.
func DecodeWithdrawal(data []byte) (*Withdrawal, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], WithdrawalSelector) {
		return nil, ErrNotWithdrawal
	}
	vals, err := withdrawalArgs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack withdrawal: %w", err)
	}
	return &Withdrawal{
		ExitNum: vals[0].(*big.Int),
		L1Token: vals[1].(common.Address),
		To:      vals[2].(common.Address),
		Amount:  vals[3].(*big.Int),
	}, nil
}
