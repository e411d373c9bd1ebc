package gateway

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/token"
)

var (
	gwAddr         = common.HexToAddress("0x0000000000000000000000000000000000001000")
	counterpart    = common.HexToAddress("0x00000000000000000000000000000000000011a1")
	templateAddr   = common.HexToAddress("0x0000000000000000000000000000000000002000")
	customTemplate = common.HexToAddress("0x0000000000000000000000000000000000002001")
	operator       = common.HexToAddress("0x0000000000000000000000000000000000000e1e")

	t1     = common.HexToAddress("0x00000000000000000000000000000000000000f1")
	sender = common.HexToAddress("0x0000000000000000000000000000000000000005")
	dest   = common.HexToAddress("0x000000000000000000000000000000000000000d")
	dest2  = common.HexToAddress("0x00000000000000000000000000000000000000d2")
)

const testGas = 3_000_000

// testingT is satisfied by *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

func newRuntime(t testingT) *l2.Runtime {
	t.Helper()
	rt := l2.NewRuntime()
	err := Bootstrap(rt, Genesis{
		Gateway:        gwAddr,
		Counterpart:    counterpart,
		Template:       templateAddr,
		CustomTemplate: customTemplate,
		Operator:       operator,
	})
	require.NoError(t, err)
	return rt
}

// run executes fn as a top-level call from caller into self and commits when fn
// succeeds.
func run(t testingT, rt *l2.Runtime, caller, self common.Address, gas uint64, fn func(env *l2.Env) error) ([]*l2.Log, error) {
	t.Helper()
	txn := rt.Begin()
	defer txn.Rollback()
	if err := fn(txn.NewEnv(caller, self, gas)); err != nil {
		return nil, err
	}
	return txn.Commit()
}

func deposit(t testingT, rt *l2.Runtime, d Deposit) (*DepositResult, []*l2.Log, error) {
	t.Helper()
	var res *DepositResult
	logs, err := run(t, rt, counterpart, gwAddr, testGas, func(env *l2.Env) error {
		var err error
		res, err = New().FinalizeInboundTransfer(env, d)
		return err
	})
	return res, logs, err
}

var depositNonce uint64

func nextDepositID() common.Hash {
	depositNonce++
	return crypto.Keccak256Hash(new(big.Int).SetUint64(depositNonce).Bytes())
}

func metadata(t testingT, name, symbol string, decimals uint8) []byte {
	t.Helper()
	data, err := EncodeMetadata(token.Metadata{Name: name, Symbol: symbol, Decimals: decimals})
	require.NoError(t, err)
	return data
}

func view[T any](t testingT, rt *l2.Runtime, fn func(txn *l2.Txn) T) T {
	t.Helper()
	var out T
	require.NoError(t, rt.View(func(txn *l2.Txn) error {
		out = fn(txn)
		return nil
	}))
	return out
}

func balance(t testingT, rt *l2.Runtime, tokenAddr, holder common.Address) int64 {
	t.Helper()
	return view(t, rt, func(txn *l2.Txn) *big.Int {
		return token.BalanceOf(txn, tokenAddr, holder)
	}).Int64()
}

func bridgeState(t testingT, rt *l2.Runtime) *State {
	t.Helper()
	return view(t, rt, func(txn *l2.Txn) *State {
		st, err := Load(txn, gwAddr)
		require.NoError(t, err)
		return st
	})
}

// receiver is a TransferReceiver with scripted behaviour.
type receiver struct {
	ack   [4]byte
	err   error
	panic bool
	burn  bool
	calls int
}

func (r *receiver) Kind() string { return "test-receiver" }

func (r *receiver) OnTransferReceived(env *l2.Env, _, _ common.Address, _ *big.Int, _ []byte) ([4]byte, error) {
	r.calls++
	if err := env.SetState("touched", true); err != nil {
		return [4]byte{}, err
	}
	switch {
	case r.panic:
		panic("receiver exploded")
	case r.burn:
		return [4]byte{}, env.UseGas(env.GasLeft() + 1)
	case r.err != nil:
		return [4]byte{}, r.err
	}
	return r.ack, nil
}

func installReceiver(t testingT, rt *l2.Runtime, addr common.Address, r *receiver) {
	t.Helper()
	txn := rt.Begin()
	defer txn.Rollback()
	require.NoError(t, txn.Install(addr, r))
	_, err := txn.Commit()
	require.NoError(t, err)
}

var errHookRejected = errors.New("hook rejected")
