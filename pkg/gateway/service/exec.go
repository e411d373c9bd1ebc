package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/token-gateway/internal/metrics"
	apperrors "github.com/chainsafe/token-gateway/pkg/app/errors"
	"github.com/chainsafe/token-gateway/pkg/gateway"
	"github.com/chainsafe/token-gateway/pkg/gatewaystore"
	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/outbox"
	"github.com/chainsafe/token-gateway/pkg/token"
)

// replayBatch is the number of journal entries loaded per page on start
const replayBatch = 500

var (
	// ErrReplayDiverged is returned when a journaled call no longer reproduces.
	ErrReplayDiverged = errors.New("journal replay diverged")
	// ErrNonceUsed is returned when a holder signs a nonce it already spent.
	ErrNonceUsed = errors.New("request nonce already used")
)

// nonceGas covers the single slot write that spends a nonce
const nonceGas = l2.GasStorageSet

// operation applies decoded args to txn on behalf of caller. It returns the
// call result and the gas used.
type operation func(txn *l2.Txn, caller common.Address, args json.RawMessage) (any, uint64, error)

type withdrawal struct {
	id      *big.Int
	exitNum *big.Int
}

// execute runs op in a fresh transaction, journals it and commits. Rejected
// calls leave neither state nor journal behind.
func (s *gatewayService) execute(ctx context.Context, op string, caller common.Address, args any) (any, *gatewaystore.Call, error) {
	start := time.Now()
	defer func() {
		metrics.CallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	raw, err := json.Marshal(args)
	if err != nil {
		return nil, nil, apperrors.BadRequestError(err, "invalid arguments")
	}

	txn := s.rt.Begin()
	defer txn.Rollback()

	value, gasUsed, err := s.ops[op](txn, caller, raw)
	if err != nil {
		svcErr := toServiceError(err)
		metrics.CallsRejected.WithLabelValues(op, apperrors.CategoryOf(svcErr).String()).Inc()
		return nil, nil, svcErr
	}

	call, err := journalEntry(op, caller, raw, gasUsed, txn.Logs())
	if err != nil {
		return nil, nil, apperrors.GeneralError(err)
	}
	if err := s.store.AppendCall(ctx, call); err != nil {
		return nil, nil, apperrors.DependencyError(fmt.Errorf("failed to journal %s: %w", op, err))
	}

	logs, err := txn.Commit()
	if err != nil {
		// the journal is ahead of the runtime; the next start replays it
		s.logger.Error("Commit failed after journaling",
			zap.String("op", op),
			zap.Int64("seq", call.Seq),
			zap.Error(err),
		)
		return nil, nil, apperrors.GeneralError(err)
	}

	metrics.GasUsed.WithLabelValues(op).Observe(float64(gasUsed))
	observe(op, logs)
	return value, call, nil
}

// replay re-executes the journal in sequence order
func (s *gatewayService) replay(ctx context.Context) (int, error) {
	var (
		after int64
		n     int
	)
	for {
		calls, err := s.store.ListCalls(ctx, after, replayBatch)
		if err != nil {
			return n, fmt.Errorf("failed to load journal: %w", err)
		}
		for _, c := range calls {
			if err := s.replayCall(c); err != nil {
				return n, fmt.Errorf("%w: seq %d (%s): %w", ErrReplayDiverged, c.Seq, c.Op, err)
			}
			after = c.Seq
			n++
		}
		if len(calls) < replayBatch {
			return n, nil
		}
	}
}

func (s *gatewayService) replayCall(c *gatewaystore.Call) error {
	apply, ok := s.ops[c.Op]
	if !ok {
		return fmt.Errorf("unknown operation %q", c.Op)
	}

	txn := s.rt.Begin()
	defer txn.Rollback()

	if _, _, err := apply(txn, common.HexToAddress(c.Caller), c.Args); err != nil {
		return err
	}

	sent := l2.FilterLogs[outbox.MessageSentEvent](txn.Logs())
	if len(sent) != len(c.Messages) {
		return fmt.Errorf("expected %d messages, got %d", len(c.Messages), len(sent))
	}
	for i, ev := range sent {
		if ev.ID.String() != c.Messages[i].MsgID {
			return fmt.Errorf("expected message %s, got %s", c.Messages[i].MsgID, ev.ID)
		}
	}

	_, err := txn.Commit()
	return err
}

func journalEntry(op string, caller common.Address, args json.RawMessage, gasUsed uint64, logs []*l2.Log) (*gatewaystore.Call, error) {
	call := &gatewaystore.Call{
		ID:      uuid.New(),
		Op:      op,
		Caller:  caller.Hex(),
		Args:    args,
		GasUsed: gasUsed,
	}

	for _, l := range logs {
		payload, err := json.Marshal(l.Event)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s event: %w", l.Event.EventName(), err)
		}
		call.Events = append(call.Events, &gatewaystore.Event{
			LogIndex: int(l.Index),
			Address:  l.Address.Hex(),
			Name:     l.Event.EventName(),
			Payload:  payload,
		})
	}

	for _, ev := range l2.FilterLogs[outbox.MessageSentEvent](logs) {
		w, err := outbox.DecodeWithdrawal(ev.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode message %s: %w", ev.ID, err)
		}
		call.Messages = append(call.Messages, &gatewaystore.Message{
			MsgID:       ev.ID.String(),
			Sender:      ev.Sender.Hex(),
			Destination: ev.Destination.Hex(),
			ExitNum:     w.ExitNum.String(),
			L1Token:     w.L1Token.Hex(),
			Recipient:   w.To.Hex(),
			Amount:      w.Amount.String(),
			Data:        ev.Data,
		})
	}
	return call, nil
}

// observe updates metrics from the logs of a committed call
func observe(op string, logs []*l2.Log) {
	for _, ev := range l2.FilterLogs[gateway.TokenCreatedEvent](logs) {
		metrics.TokensDeployed.WithLabelValues(ev.Kind).Inc()
	}
	source := "holder"
	if op == OpDeposit {
		source = "refund"
	}
	for _, ev := range l2.FilterLogs[gateway.WithdrawalInitiatedEvent](logs) {
		metrics.WithdrawalsTotal.WithLabelValues(source).Inc()
		metrics.ExitNum.Set(bigFloat(ev.ExitNum) + 1)
	}
	for range l2.FilterLogs[gateway.TokenMigratedEvent](logs) {
		metrics.MigrationsTotal.Inc()
	}
	for range l2.FilterLogs[gateway.CustomTokenRegisteredEvent](logs) {
		metrics.CustomRegistrationsTotal.Inc()
	}
}

func decodeArgs[T any](args json.RawMessage) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(args, v); err != nil {
		return nil, fmt.Errorf("failed to decode arguments: %w", err)
	}
	return v, nil
}

// spendNonce marks nonce as used by holder. The mark lives in the holder
// account, so a rejected call rolls it back and replay rebuilds it.
func spendNonce(txn *l2.Txn, holder common.Address, nonce string) error {
	if nonce == "" {
		return nil
	}
	slot := "nonce:" + nonce
	if _, used := txn.GetState(holder, slot); used {
		return fmt.Errorf("%w: %s", ErrNonceUsed, nonce)
	}
	return txn.NewEnv(holder, holder, nonceGas).SetState(slot, true)
}

func (s *gatewayService) controller(txn *l2.Txn) (*gateway.Gateway, error) {
	return l2.CodeAs[*gateway.Gateway](txn, s.cfg.Gateway)
}

func (s *gatewayService) applyDeposit(txn *l2.Txn, caller common.Address, args json.RawMessage) (any, uint64, error) {
	req, err := decodeArgs[DepositRequest](args)
	if err != nil {
		return nil, 0, err
	}
	amount, ok := baseUnits(req.Amount)
	if !ok {
		return nil, 0, gateway.ErrInvalidAmount
	}
	gw, err := s.controller(txn)
	if err != nil {
		return nil, 0, err
	}

	env := txn.NewEnv(caller, s.cfg.Gateway, s.cfg.GasLimit)
	res, err := gw.FinalizeInboundTransfer(env, gateway.Deposit{
		ID:           req.DepositID,
		L1Token:      req.L1Token,
		From:         req.From,
		To:           req.To,
		Amount:       amount,
		DeployData:   req.DeployData,
		CallHookData: req.CallHookData,
	})
	return res, env.GasUsed(), err
}

func (s *gatewayService) applyRegisterCustomToken(txn *l2.Txn, caller common.Address, args json.RawMessage) (any, uint64, error) {
	req, err := decodeArgs[RegisterCustomTokenRequest](args)
	if err != nil {
		return nil, 0, err
	}
	gw, err := s.controller(txn)
	if err != nil {
		return nil, 0, err
	}

	env := txn.NewEnv(caller, s.cfg.Gateway, s.cfg.GasLimit)
	err = gw.RegisterCustomToken(env, req.L1Token, req.CustomToken)
	return nil, env.GasUsed(), err
}

func (s *gatewayService) applyDeployCustomToken(txn *l2.Txn, caller common.Address, args json.RawMessage) (any, uint64, error) {
	req, err := decodeArgs[DeployCustomTokenRequest](args)
	if err != nil {
		return nil, 0, err
	}
	gw, err := s.controller(txn)
	if err != nil {
		return nil, 0, err
	}

	env := txn.NewEnv(caller, s.cfg.Gateway, s.cfg.GasLimit)
	addr, err := gw.DeployCustomToken(env, req.L1Token, req.metadata())
	return addr, env.GasUsed(), err
}

func (s *gatewayService) applyWithdraw(txn *l2.Txn, caller common.Address, args json.RawMessage) (any, uint64, error) {
	req, err := decodeArgs[WithdrawRequest](args)
	if err != nil {
		return nil, 0, err
	}
	if err := spendNonce(txn, caller, req.Nonce); err != nil {
		return nil, 0, err
	}
	amount, ok := baseUnits(req.Amount)
	if !ok {
		return nil, 0, token.ErrInvalidAmount
	}
	tok, err := l2.CodeAs[*token.Token](txn, req.L2Token)
	if err != nil {
		return nil, 0, err
	}

	env := txn.NewEnv(caller, req.L2Token, s.cfg.GasLimit)
	id, err := tok.WithdrawTo(env, req.Destination, amount)
	if err != nil {
		return nil, env.GasUsed(), err
	}

	w := &withdrawal{id: id}
	if evs := l2.FilterLogs[gateway.WithdrawalInitiatedEvent](txn.Logs()); len(evs) > 0 {
		w.exitNum = evs[len(evs)-1].ExitNum
	}
	return w, env.GasUsed(), nil
}

func (s *gatewayService) applyMigrate(txn *l2.Txn, caller common.Address, args json.RawMessage) (any, uint64, error) {
	req, err := decodeArgs[MigrateRequest](args)
	if err != nil {
		return nil, 0, err
	}
	if err := spendNonce(txn, caller, req.Nonce); err != nil {
		return nil, 0, err
	}
	amount, ok := baseUnits(req.Amount)
	if !ok {
		return nil, 0, token.ErrInvalidAmount
	}
	tok, err := l2.CodeAs[*token.Token](txn, req.L2Token)
	if err != nil {
		return nil, 0, err
	}

	env := txn.NewEnv(caller, req.L2Token, s.cfg.GasLimit)
	err = tok.Migrate(env, amount)
	return nil, env.GasUsed(), err
}

func (s *gatewayService) applyTransfer(txn *l2.Txn, caller common.Address, args json.RawMessage) (any, uint64, error) {
	req, err := decodeArgs[TransferRequest](args)
	if err != nil {
		return nil, 0, err
	}
	if err := spendNonce(txn, caller, req.Nonce); err != nil {
		return nil, 0, err
	}
	amount, ok := baseUnits(req.Amount)
	if !ok {
		return nil, 0, token.ErrInvalidAmount
	}
	tok, err := l2.CodeAs[*token.Token](txn, req.L2Token)
	if err != nil {
		return nil, 0, err
	}

	env := txn.NewEnv(caller, req.L2Token, s.cfg.GasLimit)
	err = tok.Transfer(env, req.To, amount)
	return nil, env.GasUsed(), err
}
