package gatewaystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the journal store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) AppendCall(ctx context.Context, call *Call) error {
	dao := toCallDao(call)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().
			Model(dao).
			Returning("seq, created_at").
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert call: %w", err)
		}

		if len(call.Messages) > 0 {
			msgs := make([]*MessageDao, len(call.Messages))
			for i, m := range call.Messages {
				msgs[i] = toMessageDao(dao.Seq, m)
			}
			if _, err := tx.NewInsert().Model(&msgs).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert messages: %w", err)
			}
		}

		if len(call.Events) > 0 {
			events := make([]*EventDao, len(call.Events))
			for i, e := range call.Events {
				events[i] = toEventDao(dao.Seq, e)
			}
			if _, err := tx.NewInsert().Model(&events).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert events: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append call: %w", err)
	}

	call.Seq = dao.Seq
	call.CreatedAt = dao.CreatedAt
	for _, m := range call.Messages {
		m.CallSeq = dao.Seq
	}
	for _, e := range call.Events {
		e.CallSeq = dao.Seq
	}
	return nil
}

func (s *pgStore) GetCall(ctx context.Context, id uuid.UUID) (*Call, error) {
	dao := new(CallDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to get call: %w", err)
	}

	calls := []*Call{toCall(dao)}
	if err := s.attach(ctx, calls); err != nil {
		return nil, err
	}
	return calls[0], nil
}

func (s *pgStore) ListCalls(ctx context.Context, afterSeq int64, limit int) ([]*Call, error) {
	var daos []CallDao
	q := s.db.NewSelect().
		Model(&daos).
		Where("seq > ?", afterSeq).
		Order("seq ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}

	calls := make([]*Call, len(daos))
	for i := range daos {
		calls[i] = toCall(&daos[i])
	}
	if err := s.attach(ctx, calls); err != nil {
		return nil, err
	}
	return calls, nil
}

func (s *pgStore) ListMessages(ctx context.Context, opts ...QueryOption) ([]*Message, error) {
	options := applyOptions(opts)

	var daos []MessageDao
	q := s.db.NewSelect().
		Model(&daos).
		Order("msg_id ASC")
	if options.L1Token != nil {
		q = q.Where("l1_token = ?", *options.L1Token)
	}
	if options.Recipient != nil {
		q = q.Where("recipient = ?", *options.Recipient)
	}
	if options.Limit > 0 {
		q = q.Limit(options.Limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	msgs := make([]*Message, len(daos))
	for i := range daos {
		msgs[i] = toMessage(&daos[i])
	}
	return msgs, nil
}

// attach loads the messages and events belonging to calls
func (s *pgStore) attach(ctx context.Context, calls []*Call) error {
	if len(calls) == 0 {
		return nil
	}
	bySeq := make(map[int64]*Call, len(calls))
	seqs := make([]int64, len(calls))
	for i, c := range calls {
		bySeq[c.Seq] = c
		seqs[i] = c.Seq
	}

	var msgs []MessageDao
	if err := s.db.NewSelect().
		Model(&msgs).
		Where("call_seq IN (?)", bun.In(seqs)).
		Order("msg_id ASC").
		Scan(ctx); err != nil {
		return fmt.Errorf("failed to load call messages: %w", err)
	}
	for i := range msgs {
		c := bySeq[msgs[i].CallSeq]
		c.Messages = append(c.Messages, toMessage(&msgs[i]))
	}

	var events []EventDao
	if err := s.db.NewSelect().
		Model(&events).
		Where("call_seq IN (?)", bun.In(seqs)).
		Order("call_seq ASC", "log_index ASC").
		Scan(ctx); err != nil {
		return fmt.Errorf("failed to load call events: %w", err)
	}
	for i := range events {
		c := bySeq[events[i].CallSeq]
		c.Events = append(c.Events, toEvent(&events[i]))
	}
	return nil
}
