package gatewaystore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu       sync.RWMutex
	calls    []*Call
	messages []*Message
}

// NewMemoryStore creates a journal store that lives in process memory.
// Used when the database is disabled and in tests.
func NewMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (s *memoryStore) AppendCall(_ context.Context, call *Call) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	call.Seq = int64(len(s.calls)) + 1
	call.CreatedAt = time.Now().UTC()
	for _, m := range call.Messages {
		m.CallSeq = call.Seq
		m.CreatedAt = call.CreatedAt
	}
	for _, e := range call.Events {
		e.CallSeq = call.Seq
	}

	s.calls = append(s.calls, copyCall(call))
	for _, m := range call.Messages {
		cp := *m
		s.messages = append(s.messages, &cp)
	}
	return nil
}

func (s *memoryStore) GetCall(_ context.Context, id uuid.UUID) (*Call, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.calls {
		if c.ID == id {
			return copyCall(c), nil
		}
	}
	return nil, ErrCallNotFound
}

func (s *memoryStore) ListCalls(_ context.Context, afterSeq int64, limit int) ([]*Call, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Seq n lives at index n-1
	start := int(max(afterSeq, 0))
	if start >= len(s.calls) {
		return nil, nil
	}
	end := len(s.calls)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	out := make([]*Call, 0, end-start)
	for _, c := range s.calls[start:end] {
		out = append(out, copyCall(c))
	}
	return out, nil
}

func (s *memoryStore) ListMessages(_ context.Context, opts ...QueryOption) ([]*Message, error) {
	options := applyOptions(opts)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Message
	for _, m := range s.messages {
		if options.L1Token != nil && m.L1Token != *options.L1Token {
			continue
		}
		if options.Recipient != nil && m.Recipient != *options.Recipient {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lessNumeric(out[i].MsgID, out[j].MsgID)
	})
	if options.Limit > 0 && len(out) > options.Limit {
		out = out[:options.Limit]
	}
	return out, nil
}

func copyCall(c *Call) *Call {
	cp := *c
	cp.Messages = make([]*Message, len(c.Messages))
	for i, m := range c.Messages {
		mc := *m
		cp.Messages[i] = &mc
	}
	cp.Events = make([]*Event, len(c.Events))
	for i, e := range c.Events {
		ec := *e
		cp.Events[i] = &ec
	}
	return &cp
}

// lessNumeric orders non-negative decimal strings without parsing them
func lessNumeric(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
