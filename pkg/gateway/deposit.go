package gateway

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/token"
)

const (
	// mintAndCallGasReserve is held back from the callback attempt. It covers the
	// credit-to-sender attempt and the refund that may follow it.
	mintAndCallGasReserve uint64 = 150_000
	// creditGasReserve is held back from the credit-to-sender attempt to pay for the
	// refund.
	creditGasReserve uint64 = 75_000
)

// Outcome is the branch a deposit settled on.
type Outcome string

const (
	// OutcomeMinted: the amount was minted to the destination.
	OutcomeMinted Outcome = "minted"
	// OutcomeCreditedToSender: the callback attempt failed and the amount was minted to
	// the sender instead.
	OutcomeCreditedToSender Outcome = "credited_to_sender"
	// OutcomeRefunded: nothing was minted; a withdrawal back to the sender was queued.
	OutcomeRefunded Outcome = "refunded"
)

// Refund reasons.
const (
	ReasonNoDeployData = "no_deploy_data"
	ReasonMintFailed   = "mint_failed"
	ReasonCreditFailed = "credit_failed"
)

// Deposit is a primary-domain deposit notification.
type Deposit struct {
	// ID identifies the notification; a second delivery of the same ID is rejected.
	ID      common.Hash
	L1Token common.Address
	From    common.Address
	To      common.Address
	Amount  *big.Int
	// DeployData is the metadata envelope, see EncodeDeployData.
	DeployData []byte
	// CallHookData is forwarded to the destination's TransferReceiver when non-empty.
	CallHookData []byte
}

// DepositResult reports how a deposit was settled.
type DepositResult struct {
	Outcome   Outcome
	L2Token   common.Address
	Recipient common.Address
	// Deployed is set when the deposit deployed the token.
	Deployed          bool
	CallHookTriggered bool
	// Set for OutcomeRefunded.
	RefundReason string
	WithdrawalID *big.Int
	ExitNum      *big.Int
}

// FinalizeInboundTransfer processes a deposit notification. Only the primary-domain
// counterpart may call it. Failures of the token or of the destination's callback are
// absorbed: the amount always ends up minted to the destination, minted to the sender,
// or queued for withdrawal back to the sender. Authentication failures, replays and
// broken address invariants reject the whole call.
func (g *Gateway) FinalizeInboundTransfer(env *l2.Env, d Deposit) (*DepositResult, error) {
	st, err := g.state(env)
	if err != nil {
		return nil, err
	}
	if err := authorize("finalizeInboundTransfer", env.Caller(), st.Counterpart); err != nil {
		return nil, err
	}
	if d.ID == (common.Hash{}) {
		return nil, ErrInvalidDepositID
	}
	if !token.ValidAmount(d.Amount) {
		return nil, ErrInvalidAmount
	}
	if DepositProcessed(env.Txn(), env.Self(), d.ID) {
		return nil, fmt.Errorf("%w: %s", ErrDepositAlreadyProcessed, d.ID.Hex())
	}
	if err := env.SetState(depositSlot(d.ID), true); err != nil {
		return nil, err
	}

	res := &DepositResult{}
	tokenAddr, deployed, ok, err := g.resolveToken(env, st, d)
	if err != nil {
		return nil, err
	}
	if !ok {
		return g.refund(env, st, d, res, ReasonNoDeployData)
	}
	res.L2Token = tokenAddr
	res.Deployed = deployed

	if len(d.CallHookData) == 0 {
		if r := mintOn(env, tokenAddr, d.To, d.Amount, env.GasLeft()); r.Failed() {
			return g.refund(env, st, d, res, ReasonMintFailed)
		}
		res.Outcome = OutcomeMinted
		res.Recipient = d.To
		return g.finalized(env, d, res)
	}

	res.CallHookTriggered = true
	hook := g.mintAndCall(env, tokenAddr, d)
	if err := env.Emit(TransferAndCallTriggeredEvent{
		Success:      !hook.Failed(),
		From:         d.From,
		To:           d.To,
		Amount:       d.Amount,
		CallHookData: d.CallHookData,
	}); err != nil {
		return nil, err
	}
	if !hook.Failed() {
		res.Outcome = OutcomeMinted
		res.Recipient = d.To
		return g.finalized(env, d, res)
	}

	if credit := mintOn(env, tokenAddr, d.From, d.Amount, gasAbove(env, creditGasReserve)); credit.Failed() {
		return g.refund(env, st, d, res, ReasonCreditFailed)
	}
	res.Outcome = OutcomeCreditedToSender
	res.Recipient = d.From
	return g.finalized(env, d, res)
}

// resolveToken picks the instance a deposit mints on, deploying it when needed. ok is
// false when the asset has neither a deployed instance, deploy data nor a custom
// registration.
func (g *Gateway) resolveToken(env *l2.Env, st *State, d Deposit) (addr common.Address, deployed, ok bool, err error) {
	txn := env.Txn()
	standard := st.CalculateStandardAddress(d.L1Token)
	if txn.HasCode(standard) {
		return standard, false, true, nil
	}

	if len(d.DeployData) > 0 {
		md, derr := DecodeDeployData(d.DeployData)
		if derr == nil {
			salt := StandardSalt(d.L1Token, st.Template)
			if err := g.deployStandard(env, st, d.L1Token, salt, standard, KindStandard, md); err != nil {
				return common.Address{}, false, false, err
			}
			return standard, true, true, nil
		}
	}

	if _, registered := CustomToken(txn, env.Self(), d.L1Token); registered {
		intermediate := st.CalculateIntermediateAddress(d.L1Token)
		if txn.HasCode(intermediate) {
			return intermediate, false, true, nil
		}
		salt := IntermediateSalt(d.L1Token, st.Template)
		if err := g.deployStandard(env, st, d.L1Token, salt, intermediate, KindIntermediate, token.DefaultMetadata()); err != nil {
			return common.Address{}, false, false, err
		}
		return intermediate, true, true, nil
	}
	return common.Address{}, false, false, nil
}

// mintAndCall is the isolated callback attempt: mint to the destination, then require
// the destination to acknowledge the transfer. Everything it does is reverted when it
// fails.
func (g *Gateway) mintAndCall(env *l2.Env, tokenAddr common.Address, d Deposit) l2.CallResult {
	self := env.Self()
	return env.Call(self, gasAbove(env, mintAndCallGasReserve), func(e *l2.Env) error {
		if r := mintOn(e, tokenAddr, d.To, d.Amount, e.GasLeft()); r.Failed() {
			return fmt.Errorf("mint: %w", r.Err)
		}
		r := e.Call(d.To, e.GasLeft(), func(cb *l2.Env) error {
			recv, err := l2.CodeAs[token.TransferReceiver](cb.Txn(), d.To)
			if err != nil {
				return err
			}
			ack, err := recv.OnTransferReceived(cb, self, d.From, new(big.Int).Set(d.Amount), d.CallHookData)
			if err != nil {
				return err
			}
			if ack != token.TransferReceivedSelector {
				return fmt.Errorf("%w: bad acknowledgement %x", errBadAcknowledgement, ack)
			}
			return nil
		})
		if r.Failed() {
			return fmt.Errorf("transfer callback: %w", r.Err)
		}
		return nil
	})
}

var errBadAcknowledgement = errors.New("transfer not acknowledged")

// gasAbove returns the gas left in env minus reserve, or zero.
func gasAbove(env *l2.Env, reserve uint64) uint64 {
	left := env.GasLeft()
	if left <= reserve {
		return 0
	}
	return left - reserve
}

func (g *Gateway) refund(env *l2.Env, st *State, d Deposit, res *DepositResult, reason string) (*DepositResult, error) {
	id, exitNum, err := g.outboundTransfer(env, st, d.L1Token, env.Self(), d.From, d.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to refund deposit %s: %w", d.ID.Hex(), err)
	}
	res.Outcome = OutcomeRefunded
	res.Recipient = d.From
	res.RefundReason = reason
	res.WithdrawalID = id
	res.ExitNum = exitNum
	err = env.Emit(DepositRefundedEvent{
		DepositID: d.ID,
		L1Token:   d.L1Token,
		From:      d.From,
		Amount:    d.Amount,
		ExitNum:   exitNum,
		Reason:    reason,
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Gateway) finalized(env *l2.Env, d Deposit, res *DepositResult) (*DepositResult, error) {
	err := env.Emit(DepositFinalizedEvent{
		DepositID:         d.ID,
		L1Token:           d.L1Token,
		L2Token:           res.L2Token,
		From:              d.From,
		To:                res.Recipient,
		Amount:            d.Amount,
		CallHookTriggered: res.CallHookTriggered,
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
