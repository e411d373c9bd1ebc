package l2

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrContractAddressCollision = errors.New("contract address collision")

// maxCallDepth bounds nested calls.
const maxCallDepth = 1024

// Contract is code installed at an address.
type Contract interface {
	// Kind names the code, e.g. "standard-token".
	Kind() string
}

// Env is a call frame: the code running at Self was invoked by Caller.
type Env struct {
	txn    *Txn
	caller common.Address
	self   common.Address
	gas    *GasMeter
	depth  int
}

// NewEnv opens a top-level frame on the transaction.
func (t *Txn) NewEnv(caller, self common.Address, gasLimit uint64) *Env {
	return &Env{
		txn:    t,
		caller: caller,
		self:   self,
		gas:    NewGasMeter(gasLimit),
	}
}

// Caller returns the address that invoked the frame.
func (e *Env) Caller() common.Address { return e.caller }

// Self returns the address of the executing contract.
func (e *Env) Self() common.Address { return e.self }

// Txn exposes the frame's transaction for unmetered reads.
func (e *Env) Txn() *Txn { return e.txn }

// GasLeft returns the gas remaining in this frame.
func (e *Env) GasLeft() uint64 { return e.gas.Left() }

// GasUsed returns the gas consumed by this frame.
func (e *Env) GasUsed() uint64 { return e.gas.Used() }

// UseGas charges n gas to the frame.
func (e *Env) UseGas(n uint64) error { return e.gas.Consume(n) }

// SetState writes a slot of the executing contract.
func (e *Env) SetState(slot string, v any) error {
	k := storageKey(e.self, slot)
	cost := GasStorageSet
	if _, ok := e.txn.get(k); ok {
		cost = GasStorageReset
	}
	if err := e.gas.Consume(cost); err != nil {
		return err
	}
	if b, ok := v.(*big.Int); ok {
		v = new(big.Int).Set(b)
	}
	e.txn.set(k, v)
	return nil
}

// State reads a slot of the executing contract.
func (e *Env) State(slot string) (any, bool) {
	return e.txn.GetState(e.self, slot)
}

// Emit appends an event log attributed to the executing contract.
func (e *Env) Emit(ev Event) error {
	if err := e.gas.Consume(GasLog); err != nil {
		return err
	}
	e.txn.logs = append(e.txn.logs, &Log{
		Address: e.self,
		Index:   uint(len(e.txn.logs)),
		Event:   ev,
	})
	return nil
}

// CallResult is the outcome of an isolated sub-call.
type CallResult struct {
	GasUsed uint64
	Err     error
}

// Failed reports whether the sub-call reverted.
func (r CallResult) Failed() bool { return r.Err != nil }

// Call runs fn as a sub-call into the contract at to with at most gas units. The
// sub-call is isolated: if fn returns an error, runs out of gas or panics, every write
// and log it made is reverted and the failure is returned in the result instead of
// unwinding the caller. Gas used by the sub-call is charged to this frame.
func (e *Env) Call(to common.Address, gas uint64, fn func(*Env) error) CallResult {
	if err := e.gas.Consume(GasCall); err != nil {
		return CallResult{Err: err}
	}
	if e.depth+1 > maxCallDepth {
		return CallResult{Err: fmt.Errorf("%w: max call depth", ErrExecutionFailure)}
	}

	child := &Env{
		txn:    e.txn,
		caller: e.self,
		self:   to,
		gas:    NewGasMeter(callGasCap(e.gas.Left(), gas)),
		depth:  e.depth + 1,
	}

	snap := e.txn.Snapshot()
	err := child.run(fn)
	if err != nil {
		if rerr := e.txn.RevertToSnapshot(snap); rerr != nil {
			panic(rerr)
		}
	} else {
		e.txn.snapshots = e.txn.snapshots[:snap]
	}

	// The child budget is capped at what this frame had left, so the charge fits.
	used := child.gas.Used()
	if err := e.gas.Consume(used); err != nil {
		panic(err)
	}
	return CallResult{GasUsed: used, Err: err}
}

func (e *Env) run(fn func(*Env) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrExecutionFailure, r)
		}
	}()
	return fn(e)
}

// Create deploys code at the address derived from the executing contract and its nonce.
func (e *Env) Create(code Contract) (common.Address, error) {
	nonce := e.txn.Nonce(e.self)
	addr := crypto.CreateAddress(e.self, nonce)
	if err := e.install(addr, code); err != nil {
		return common.Address{}, err
	}
	e.txn.setNonce(e.self, nonce+1)
	return addr, nil
}

// Create2 deploys code at the content-addressed location derived from the executing
// contract, salt and init code hash.
func (e *Env) Create2(salt, initCodeHash common.Hash, code Contract) (common.Address, error) {
	addr := crypto.CreateAddress2(e.self, [32]byte(salt), initCodeHash.Bytes())
	if err := e.install(addr, code); err != nil {
		return common.Address{}, err
	}
	e.txn.setNonce(e.self, e.txn.Nonce(e.self)+1)
	return addr, nil
}

func (e *Env) install(addr common.Address, code Contract) error {
	if e.txn.HasCode(addr) {
		return fmt.Errorf("%w: %s", ErrContractAddressCollision, addr.Hex())
	}
	if err := e.gas.Consume(GasCreate); err != nil {
		return err
	}
	e.txn.set(codeKey(addr), code)
	return nil
}

// Install places code at a fixed address outside of any frame. Used for genesis
// contracts such as the controller and the messaging precompile.
func (t *Txn) Install(addr common.Address, code Contract) error {
	if t.HasCode(addr) {
		return fmt.Errorf("%w: %s", ErrContractAddressCollision, addr.Hex())
	}
	t.set(codeKey(addr), code)
	return nil
}

// CodeAs returns the contract at addr as T.
func CodeAs[T any](t *Txn, addr common.Address) (T, error) {
	var zero T
	c, ok := t.CodeAt(addr)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNoCode, addr.Hex())
	}
	v, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %s", ErrUnexpectedCode, addr.Hex(), c.Kind())
	}
	return v, nil
}
