package gatewaystore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/chainsafe/token-gateway/pkg/pgutil"
	mghelper "github.com/chainsafe/token-gateway/pkg/pgutil/migrations"
)

const (
	l1TokenA  = "0x00000000000000000000000000000000000000a1"
	l1TokenB  = "0x00000000000000000000000000000000000000b1"
	recipient = "0x000000000000000000000000000000000000000d"
	gwAddr    = "0x0000000000000000000000000000000000001000"
)

type storeFactory func(t *testing.T) Store

func newPGStore(t *testing.T) Store {
	t.Helper()

	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(context.Background(), db, &CallDao{}, &MessageDao{}, &EventDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return NewStore(db)
}

func newMemStore(*testing.T) Store {
	return NewMemoryStore()
}

func factories() map[string]storeFactory {
	return map[string]storeFactory{
		"memory":   newMemStore,
		"postgres": newPGStore,
	}
}

func newWithdrawalCall(op string, msgIDs ...string) *Call {
	call := &Call{
		ID:      uuid.New(),
		Op:      op,
		Caller:  recipient,
		Args:    json.RawMessage(`{"amount":"5"}`),
		GasUsed: 84000,
	}
	for _, id := range msgIDs {
		call.Messages = append(call.Messages, &Message{
			MsgID:       id,
			Sender:      gwAddr,
			Destination: "0x00000000000000000000000000000000000011a1",
			ExitNum:     id,
			L1Token:     l1TokenA,
			Recipient:   recipient,
			Amount:      "5",
			Data:        []byte{0xde, 0xad},
		})
	}
	call.Events = []*Event{{
		LogIndex: 0,
		Address:  gwAddr,
		Name:     "WithdrawalInitiated",
		Payload:  json.RawMessage(`{"amount":"5"}`),
	}}
	return call
}

func TestStore_AppendAndReplayOrder(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := factory(t)

			first := newWithdrawalCall("withdraw", "0")
			second := newWithdrawalCall("deposit")
			if err := s.AppendCall(ctx, first); err != nil {
				t.Fatalf("AppendCall() failed: %v", err)
			}
			if err := s.AppendCall(ctx, second); err != nil {
				t.Fatalf("AppendCall() failed: %v", err)
			}
			if first.Seq >= second.Seq {
				t.Fatalf("expected increasing seq, got %d then %d", first.Seq, second.Seq)
			}
			if first.Messages[0].CallSeq != first.Seq {
				t.Fatalf("message not bound to call seq: %d", first.Messages[0].CallSeq)
			}

			calls, err := s.ListCalls(ctx, 0, 0)
			if err != nil {
				t.Fatalf("ListCalls() failed: %v", err)
			}
			if len(calls) != 2 {
				t.Fatalf("expected 2 calls, got %d", len(calls))
			}
			if calls[0].ID != first.ID || calls[1].ID != second.ID {
				t.Fatalf("calls out of order: %v, %v", calls[0].ID, calls[1].ID)
			}
			if len(calls[0].Messages) != 1 || len(calls[0].Events) != 1 {
				t.Fatalf("expected attached message and event, got %d/%d", len(calls[0].Messages), len(calls[0].Events))
			}
			if calls[0].GasUsed != 84000 {
				t.Fatalf("gas used mismatch: %d", calls[0].GasUsed)
			}

			rest, err := s.ListCalls(ctx, first.Seq, 10)
			if err != nil {
				t.Fatalf("ListCalls() failed: %v", err)
			}
			if len(rest) != 1 || rest[0].ID != second.ID {
				t.Fatalf("expected only the second call after seq %d", first.Seq)
			}

			got, err := s.GetCall(ctx, second.ID)
			if err != nil {
				t.Fatalf("GetCall() failed: %v", err)
			}
			if got.Op != "deposit" {
				t.Fatalf("expected op deposit, got %s", got.Op)
			}

			_, err = s.GetCall(ctx, uuid.New())
			if !errors.Is(err, ErrCallNotFound) {
				t.Fatalf("expected ErrCallNotFound, got %v", err)
			}
		})
	}
}

func TestStore_ListMessages(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := factory(t)

			call := newWithdrawalCall("withdraw", "10", "2")
			call.Messages[1].L1Token = l1TokenB
			if err := s.AppendCall(ctx, call); err != nil {
				t.Fatalf("AppendCall() failed: %v", err)
			}
			if err := s.AppendCall(ctx, newWithdrawalCall("withdraw", "3")); err != nil {
				t.Fatalf("AppendCall() failed: %v", err)
			}

			all, err := s.ListMessages(ctx)
			if err != nil {
				t.Fatalf("ListMessages() failed: %v", err)
			}
			var ids []string
			for _, m := range all {
				ids = append(ids, m.MsgID)
			}
			if len(ids) != 3 || ids[0] != "2" || ids[1] != "3" || ids[2] != "10" {
				t.Fatalf("expected numeric order [2 3 10], got %v", ids)
			}

			limited, err := s.ListMessages(ctx, WithLimit(1))
			if err != nil {
				t.Fatalf("ListMessages() failed: %v", err)
			}
			if len(limited) != 1 || limited[0].MsgID != "2" {
				t.Fatalf("expected first message only, got %d", len(limited))
			}

			byToken, err := s.ListMessages(ctx, WithL1Token(l1TokenB))
			if err != nil {
				t.Fatalf("ListMessages() failed: %v", err)
			}
			if len(byToken) != 1 || byToken[0].MsgID != "2" {
				t.Fatalf("expected message 2 for token B, got %d messages", len(byToken))
			}

			none, err := s.ListMessages(ctx, WithRecipient(gwAddr))
			if err != nil {
				t.Fatalf("ListMessages() failed: %v", err)
			}
			if len(none) != 0 {
				t.Fatalf("expected no messages for recipient, got %d", len(none))
			}
		})
	}
}

func TestPGStore_AppendIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := newPGStore(t)

	if err := s.AppendCall(ctx, newWithdrawalCall("withdraw", "7")); err != nil {
		t.Fatalf("AppendCall() failed: %v", err)
	}
	// duplicate message id fails the whole call
	if err := s.AppendCall(ctx, newWithdrawalCall("withdraw", "7")); err == nil {
		t.Fatalf("expected duplicate message id to fail")
	}

	calls, err := s.ListCalls(ctx, 0, 0)
	if err != nil {
		t.Fatalf("ListCalls() failed: %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("expected failed call to be rolled back, got %d calls", len(calls))
	}
}
