// Package gatewaystore persists the gateway call journal together with the
// withdrawal messages and events each call produced.
package gatewaystore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCallNotFound is returned when a journal lookup finds no matching call.
var ErrCallNotFound = errors.New("call not found")

// Call is one accepted gateway operation. Seq orders replay.
type Call struct {
	Seq       int64
	ID        uuid.UUID
	Op        string
	Caller    string
	Args      json.RawMessage
	GasUsed   uint64
	CreatedAt time.Time
	Messages  []*Message
	Events    []*Event
}

// Message is a withdrawal queued for the L1 counterpart
type Message struct {
	MsgID       string
	CallSeq     int64
	Sender      string
	Destination string
	ExitNum     string
	L1Token     string
	Recipient   string
	Amount      string
	Data        []byte
	CreatedAt   time.Time
}

// Event is a log emitted while executing a call
type Event struct {
	CallSeq  int64
	LogIndex int
	Address  string
	Name     string
	Payload  json.RawMessage
}

// Store defines the journal persistence operations
type Store interface {
	// AppendCall stores the call with its messages and events atomically and
	// assigns the sequence number.
	AppendCall(ctx context.Context, call *Call) error
	GetCall(ctx context.Context, id uuid.UUID) (*Call, error)
	// ListCalls returns calls with a sequence above afterSeq in replay order.
	// A non-positive limit returns all remaining calls.
	ListCalls(ctx context.Context, afterSeq int64, limit int) ([]*Call, error)
	ListMessages(ctx context.Context, opts ...QueryOption) ([]*Message, error)
}

// QueryOptions defines options for querying messages
type QueryOptions struct {
	Limit     int
	L1Token   *string
	Recipient *string
}

// QueryOption is a functional option for querying messages
type QueryOption func(*QueryOptions)

// WithLimit caps the number of returned messages
func WithLimit(limit int) QueryOption {
	return func(opts *QueryOptions) {
		opts.Limit = limit
	}
}

// WithL1Token sets the L1 token filter
func WithL1Token(l1Token string) QueryOption {
	return func(opts *QueryOptions) {
		opts.L1Token = &l1Token
	}
}

// WithRecipient sets the L1 recipient filter
func WithRecipient(recipient string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Recipient = &recipient
	}
}

func applyOptions(opts []QueryOption) *QueryOptions {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
