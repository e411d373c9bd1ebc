// Package l2 implements the secondary-domain execution runtime the gateway runs on:
// an immutable-radix backed state with snapshots, gas-metered call frames, contract
// deployment and event logs.
package l2

import (
	"encoding/binary"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	iradix "github.com/hashicorp/go-immutable-radix"
)

var (
	ErrTxnClosed        = errors.New("transaction already closed")
	ErrInvalidSnapshot  = errors.New("invalid snapshot id")
	ErrNoCode           = errors.New("no contract code at address")
	ErrUnexpectedCode   = errors.New("unexpected contract code at address")
	ErrExecutionFailure = errors.New("execution reverted")
)

const (
	prefixCode    = "c/"
	prefixNonce   = "n/"
	prefixStorage = "s/"
)

func codeKey(addr common.Address) []byte {
	return append([]byte(prefixCode), addr.Bytes()...)
}

func nonceKey(addr common.Address) []byte {
	return append([]byte(prefixNonce), addr.Bytes()...)
}

func storageKey(addr common.Address, slot string) []byte {
	k := make([]byte, 0, len(prefixStorage)+common.AddressLength+1+len(slot))
	k = append(k, prefixStorage...)
	k = append(k, addr.Bytes()...)
	k = append(k, '/')
	return append(k, slot...)
}

// Runtime owns the committed state root. Only one transaction may be open at a time;
// Begin blocks until the previous transaction is committed or rolled back.
type Runtime struct {
	mu   sync.Mutex
	root *iradix.Tree
}

// NewRuntime creates an empty runtime.
func NewRuntime() *Runtime {
	return &Runtime{root: iradix.New()}
}

// Begin opens a transaction over the current committed root.
func (r *Runtime) Begin() *Txn {
	r.mu.Lock()
	return &Txn{
		rt:  r,
		txn: r.root.Txn(),
	}
}

// View runs fn against a read-only copy of the committed state. Writes made by fn
// are discarded.
func (r *Runtime) View(fn func(*Txn) error) error {
	r.mu.Lock()
	root := r.root
	r.mu.Unlock()

	return fn(&Txn{txn: root.Txn(), readOnly: true})
}

type snapshot struct {
	tree *iradix.Tree
	logs int
}

// Txn is a mutable view of the state. All writes and logs are kept in the transaction
// until Commit.
type Txn struct {
	rt        *Runtime
	txn       *iradix.Txn
	snapshots []snapshot
	logs      []*Log
	closed    bool
	readOnly  bool
}

// Snapshot records the current state and log position and returns its id.
func (t *Txn) Snapshot() int {
	id := len(t.snapshots)
	t.snapshots = append(t.snapshots, snapshot{
		tree: t.txn.CommitOnly(),
		logs: len(t.logs),
	})
	return id
}

// RevertToSnapshot discards every write and log made after the snapshot was taken.
func (t *Txn) RevertToSnapshot(id int) error {
	if id < 0 || id >= len(t.snapshots) {
		return ErrInvalidSnapshot
	}
	s := t.snapshots[id]
	t.txn = s.tree.Txn()
	t.logs = t.logs[:s.logs]
	t.snapshots = t.snapshots[:id]
	return nil
}

// Commit publishes the transaction's writes as the new committed root.
func (t *Txn) Commit() ([]*Log, error) {
	if t.closed || t.readOnly {
		return nil, ErrTxnClosed
	}
	t.rt.root = t.txn.CommitOnly()
	t.close()
	return t.logs, nil
}

// Rollback discards the transaction.
func (t *Txn) Rollback() {
	if t.closed || t.readOnly {
		return
	}
	t.close()
}

func (t *Txn) close() {
	t.closed = true
	t.rt.mu.Unlock()
}

// Logs returns the logs emitted so far in this transaction.
func (t *Txn) Logs() []*Log {
	return t.logs
}

func (t *Txn) get(k []byte) (any, bool) {
	return t.txn.Get(k)
}

func (t *Txn) set(k []byte, v any) {
	t.txn.Insert(k, v)
}

// CodeAt returns the contract installed at addr.
func (t *Txn) CodeAt(addr common.Address) (Contract, bool) {
	v, ok := t.get(codeKey(addr))
	if !ok {
		return nil, false
	}
	return v.(Contract), true
}

// HasCode reports whether a contract is installed at addr.
func (t *Txn) HasCode(addr common.Address) bool {
	_, ok := t.get(codeKey(addr))
	return ok
}

// Nonce returns the deployment nonce of addr.
func (t *Txn) Nonce(addr common.Address) uint64 {
	v, ok := t.get(nonceKey(addr))
	if !ok {
		return 0
	}
	return binary.BigEndian.Uint64(v.([]byte))
}

func (t *Txn) setNonce(addr common.Address, n uint64) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	t.set(nonceKey(addr), b)
}

// GetState reads a storage slot of addr.
func (t *Txn) GetState(addr common.Address, slot string) (any, bool) {
	return t.get(storageKey(addr, slot))
}

// BigAt reads a numeric slot, returning a fresh zero when unset.
func (t *Txn) BigAt(addr common.Address, slot string) *big.Int {
	v, ok := t.GetState(addr, slot)
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(v.(*big.Int))
}

// AddressAt reads an address slot.
func (t *Txn) AddressAt(addr common.Address, slot string) common.Address {
	v, ok := t.GetState(addr, slot)
	if !ok {
		return common.Address{}
	}
	return v.(common.Address)
}

// StringAt reads a string slot.
func (t *Txn) StringAt(addr common.Address, slot string) string {
	v, ok := t.GetState(addr, slot)
	if !ok {
		return ""
	}
	return v.(string)
}

// BoolAt reads a boolean slot.
func (t *Txn) BoolAt(addr common.Address, slot string) bool {
	v, ok := t.GetState(addr, slot)
	if !ok {
		return false
	}
	return v.(bool)
}

// WalkStorage visits every slot of addr whose name starts with prefix.
func (t *Txn) WalkStorage(addr common.Address, prefix string, fn func(slot string, v any) bool) {
	p := storageKey(addr, prefix)
	base := len(storageKey(addr, ""))
	t.txn.Root().WalkPrefix(p, func(k []byte, v interface{}) bool {
		return fn(string(k[base:]), v)
	})
}
