package gateway

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/outbox"
	"github.com/chainsafe/token-gateway/pkg/token"
)

// Withdraw queues a withdrawal of amount of l1Token to dest on the primary domain and
// returns the outbox message id. The caller must be an instance bound to l1Token: its
// standard, intermediate or registered custom representation. The instance burns the
// holder's balance before calling in.
func (g *Gateway) Withdraw(env *l2.Env, l1Token, dest common.Address, amount *big.Int) (*big.Int, error) {
	st, err := g.state(env)
	if err != nil {
		return nil, err
	}
	allowed := []common.Address{
		st.CalculateStandardAddress(l1Token),
		st.CalculateIntermediateAddress(l1Token),
	}
	if custom, ok := CustomToken(env.Txn(), env.Self(), l1Token); ok {
		allowed = append(allowed, custom)
	}
	if err := authorize("withdraw", env.Caller(), allowed...); err != nil {
		return nil, err
	}
	if !token.ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	id, _, err := g.outboundTransfer(env, st, l1Token, env.Caller(), dest, amount)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// outboundTransfer sends the withdrawal message for the next exit number and advances
// the counter. source is the instance (or the controller itself, for refunds) the
// withdrawal originates from.
func (g *Gateway) outboundTransfer(env *l2.Env, st *State, l1Token, source, dest common.Address, amount *big.Int) (msgID, exitNum *big.Int, err error) {
	exitNum = env.Txn().BigAt(env.Self(), slotExitNum)
	payload, err := outbox.EncodeWithdrawal(outbox.Withdrawal{
		ExitNum: exitNum,
		L1Token: l1Token,
		To:      dest,
		Amount:  amount,
	})
	if err != nil {
		return nil, nil, err
	}
	msgID, err = outbox.Send(env, st.Counterpart, payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send withdrawal %s: %w", exitNum, err)
	}
	if err := env.SetState(slotExitNum, new(big.Int).Add(exitNum, common.Big1)); err != nil {
		return nil, nil, err
	}
	err = env.Emit(WithdrawalInitiatedEvent{
		L1Token: l1Token,
		Source:  source,
		To:      dest,
		MsgID:   msgID,
		ExitNum: exitNum,
		Amount:  amount,
	})
	if err != nil {
		return nil, nil, err
	}
	return msgID, exitNum, nil
}
