// Package outbox is the secondary-domain message-passing system contract. Contracts call
// it to queue a message for the primary domain; every message gets a strictly
// increasing id.
package outbox

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/token-gateway/pkg/l2"
)

// Address is where the outbox is installed.
var Address = common.HexToAddress("0x0000000000000000000000000000000000000064")

var ErrEmptyDestination = errors.New("empty message destination")

const (
	slotNextID    = "nextId"
	prefixMessage = "msg/"
)

// Message is a queued secondary-to-primary message.
type Message struct {
	ID          *big.Int
	Sender      common.Address
	Destination common.Address
	Data        []byte
}

// MessageSentEvent is emitted by the outbox for every queued message.
type MessageSentEvent struct {
	ID          *big.Int
	Sender      common.Address
	Destination common.Address
	Data        []byte
}

func (MessageSentEvent) EventName() string { return "L2ToL1Tx" }

// Outbox is the system contract.
type Outbox struct{}

func New() *Outbox { return &Outbox{} }

func (*Outbox) Kind() string { return "outbox" }

// SendTxToL1 queues data for destination on behalf of the calling contract and returns
// the message id.
func (o *Outbox) SendTxToL1(env *l2.Env, destination common.Address, data []byte) (*big.Int, error) {
	if destination == (common.Address{}) {
		return nil, ErrEmptyDestination
	}
	id := env.Txn().BigAt(env.Self(), slotNextID)
	msg := &Message{
		ID:          new(big.Int).Set(id),
		Sender:      env.Caller(),
		Destination: destination,
		Data:        common.CopyBytes(data),
	}
	if err := env.SetState(messageSlot(id), msg); err != nil {
		return nil, err
	}
	if err := env.SetState(slotNextID, new(big.Int).Add(id, common.Big1)); err != nil {
		return nil, err
	}
	err := env.Emit(MessageSentEvent{
		ID:          msg.ID,
		Sender:      msg.Sender,
		Destination: destination,
		Data:        msg.Data,
	})
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(id), nil
}

// Send is how contracts reach the outbox: it runs SendTxToL1 as a sub-call from env.
func Send(env *l2.Env, destination common.Address, data []byte) (*big.Int, error) {
	var id *big.Int
	res := env.Call(Address, env.GasLeft(), func(ob *l2.Env) error {
		o, err := l2.CodeAs[*Outbox](ob.Txn(), Address)
		if err != nil {
			return err
		}
		id, err = o.SendTxToL1(ob, destination, data)
		return err
	})
	if res.Failed() {
		return nil, fmt.Errorf("send message to l1: %w", res.Err)
	}
	return id, nil
}

func messageSlot(id *big.Int) string {
	return prefixMessage + fmt.Sprintf("%064x", id)
}

// Messages returns the queued messages in id order.
func Messages(txn *l2.Txn) []*Message {
	var out []*Message
	txn.WalkStorage(Address, prefixMessage, func(_ string, v any) bool {
		out = append(out, v.(*Message))
		return false
	})
	return out
}

// MessageCount returns the number of messages queued so far.
func MessageCount(txn *l2.Txn) *big.Int {
	return txn.BigAt(Address, slotNextID)
}
