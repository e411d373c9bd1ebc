package gatewaystore

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CallDao maps to the 'gateway_calls' table.
type CallDao struct {
	bun.BaseModel `bun:"table:gateway_calls,alias:c"`
	Seq           int64           `bun:"seq,pk,autoincrement"`
	ID            uuid.UUID       `bun:"id,unique,notnull,type:uuid"`
	Op            string          `bun:"op,notnull,type:varchar(64)"`
	Caller        string          `bun:"caller,notnull,type:varchar(42)"`
	Args          json.RawMessage `bun:"args,type:jsonb"`
	GasUsed       int64           `bun:"gas_used,notnull"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// MessageDao maps to the 'gateway_l1_messages' table.
type MessageDao struct {
	bun.BaseModel `bun:"table:gateway_l1_messages,alias:m"`
	MsgID         string    `bun:"msg_id,pk,type:numeric(78,0)"`
	CallSeq       int64     `bun:"call_seq,notnull"`
	Sender        string    `bun:"sender,notnull,type:varchar(42)"`
	Destination   string    `bun:"destination,notnull,type:varchar(42)"`
	ExitNum       string    `bun:"exit_num,notnull,type:numeric(78,0)"`
	L1Token       string    `bun:"l1_token,notnull,type:varchar(42)"`
	Recipient     string    `bun:"recipient,notnull,type:varchar(42)"`
	Amount        string    `bun:"amount,notnull,type:numeric(78,0)"`
	Data          []byte    `bun:"data,type:bytea"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// EventDao maps to the 'gateway_events' table.
type EventDao struct {
	bun.BaseModel `bun:"table:gateway_events,alias:e"`
	ID            int64           `bun:"id,pk,autoincrement"`
	CallSeq       int64           `bun:"call_seq,notnull"`
	LogIndex      int             `bun:"log_index,notnull"`
	Address       string          `bun:"address,notnull,type:varchar(42)"`
	Name          string          `bun:"name,notnull,type:varchar(64)"`
	Payload       json.RawMessage `bun:"payload,type:jsonb"`
}

func toCallDao(c *Call) *CallDao {
	return &CallDao{
		ID:      c.ID,
		Op:      c.Op,
		Caller:  c.Caller,
		Args:    c.Args,
		GasUsed: int64(c.GasUsed),
	}
}

func toCall(dao *CallDao) *Call {
	return &Call{
		Seq:       dao.Seq,
		ID:        dao.ID,
		Op:        dao.Op,
		Caller:    dao.Caller,
		Args:      dao.Args,
		GasUsed:   uint64(dao.GasUsed),
		CreatedAt: dao.CreatedAt,
	}
}

func toMessageDao(seq int64, m *Message) *MessageDao {
	return &MessageDao{
		MsgID:       m.MsgID,
		CallSeq:     seq,
		Sender:      m.Sender,
		Destination: m.Destination,
		ExitNum:     m.ExitNum,
		L1Token:     m.L1Token,
		Recipient:   m.Recipient,
		Amount:      m.Amount,
		Data:        m.Data,
	}
}

func toMessage(dao *MessageDao) *Message {
	return &Message{
		MsgID:       dao.MsgID,
		CallSeq:     dao.CallSeq,
		Sender:      dao.Sender,
		Destination: dao.Destination,
		ExitNum:     dao.ExitNum,
		L1Token:     dao.L1Token,
		Recipient:   dao.Recipient,
		Amount:      dao.Amount,
		Data:        dao.Data,
		CreatedAt:   dao.CreatedAt,
	}
}

func toEventDao(seq int64, e *Event) *EventDao {
	return &EventDao{
		CallSeq:  seq,
		LogIndex: e.LogIndex,
		Address:  e.Address,
		Name:     e.Name,
		Payload:  e.Payload,
	}
}

func toEvent(dao *EventDao) *Event {
	return &Event{
		CallSeq:  dao.CallSeq,
		LogIndex: dao.LogIndex,
		Address:  dao.Address,
		Name:     dao.Name,
		Payload:  dao.Payload,
	}
}
