package gateway

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/outbox"
	"github.com/chainsafe/token-gateway/pkg/token"
)

func TestDeposit_DeploysAtCalculatedAddress(t *testing.T) {
	rt := newRuntime(t)
	expected := bridgeState(t, rt).CalculateStandardAddress(t1)

	res, logs, err := deposit(t, rt, Deposit{
		ID:         nextDepositID(),
		L1Token:    t1,
		From:       sender,
		To:         dest,
		Amount:     big.NewInt(100),
		DeployData: metadata(t, "Test", "TST", 18),
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeMinted, res.Outcome)
	require.Equal(t, expected, res.L2Token)
	require.True(t, res.Deployed)
	require.Equal(t, int64(100), balance(t, rt, expected, dest))

	info := view(t, rt, func(txn *l2.Txn) *token.Info {
		info, err := token.Describe(txn, expected)
		require.NoError(t, err)
		return info
	})
	require.Equal(t, "Test", info.Name)
	require.Equal(t, "TST", info.Symbol)
	require.Equal(t, uint8(18), info.Decimals)
	require.Equal(t, t1, info.L1Address)
	require.Equal(t, gwAddr, info.Gateway)
	require.Equal(t, templateAddr, info.Template)

	created := l2.FilterLogs[TokenCreatedEvent](logs)
	require.Equal(t, []TokenCreatedEvent{{L1Token: t1, L2Token: expected, Kind: KindStandard}}, created)
	finalized := l2.FilterLogs[DepositFinalizedEvent](logs)
	require.Len(t, finalized, 1)
	require.Equal(t, dest, finalized[0].To)
	require.False(t, finalized[0].CallHookTriggered)
}

func TestDeposit_EmptyMetadataFieldsUseDefaults(t *testing.T) {
	rt := newRuntime(t)
	data, err := EncodeDeployData(nil, nil, nil)
	require.NoError(t, err)

	res, _, err := deposit(t, rt, Deposit{
		ID:         nextDepositID(),
		L1Token:    t1,
		From:       sender,
		To:         dest,
		Amount:     big.NewInt(1),
		DeployData: data,
	})
	require.NoError(t, err)

	info := view(t, rt, func(txn *l2.Txn) *token.Info {
		info, err := token.Describe(txn, res.L2Token)
		require.NoError(t, err)
		return info
	})
	require.Equal(t, "", info.Name)
	require.Equal(t, "", info.Symbol)
	require.Equal(t, token.DefaultDecimals, info.Decimals)
}

func TestDeposit_ExistingTokenIgnoresMetadata(t *testing.T) {
	rt := newRuntime(t)
	first, _, err := deposit(t, rt, Deposit{
		ID:         nextDepositID(),
		L1Token:    t1,
		From:       sender,
		To:         dest,
		Amount:     big.NewInt(1),
		DeployData: metadata(t, "Test", "TST", 18),
	})
	require.NoError(t, err)

	second, logs, err := deposit(t, rt, Deposit{
		ID:         nextDepositID(),
		L1Token:    t1,
		From:       sender,
		To:         dest,
		Amount:     big.NewInt(2),
		DeployData: metadata(t, "Other", "OTH", 6),
	})
	require.NoError(t, err)
	require.Equal(t, first.L2Token, second.L2Token)
	require.False(t, second.Deployed)
	require.Empty(t, l2.FilterLogs[TokenCreatedEvent](logs))
	require.Equal(t, int64(3), balance(t, rt, first.L2Token, dest))
}

func TestDeposit_NoMetadataNoCustomRefunds(t *testing.T) {
	rt := newRuntime(t)
	standard := bridgeState(t, rt).CalculateStandardAddress(t1)

	res, logs, err := deposit(t, rt, Deposit{
		ID:      nextDepositID(),
		L1Token: t1,
		From:    sender,
		To:      dest,
		Amount:  big.NewInt(100),
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeRefunded, res.Outcome)
	require.Equal(t, ReasonNoDeployData, res.RefundReason)
	require.Equal(t, sender, res.Recipient)
	require.Equal(t, int64(0), res.ExitNum.Int64())

	require.False(t, view(t, rt, func(txn *l2.Txn) bool { return txn.HasCode(standard) }))

	msgs := view(t, rt, outbox.Messages)
	require.Len(t, msgs, 1)
	require.Equal(t, counterpart, msgs[0].Destination)
	require.Equal(t, gwAddr, msgs[0].Sender)
	require.Equal(t, res.WithdrawalID, msgs[0].ID)

	w, err := outbox.DecodeWithdrawal(msgs[0].Data)
	require.NoError(t, err)
	require.Equal(t, t1, w.L1Token)
	require.Equal(t, sender, w.To)
	require.Equal(t, int64(100), w.Amount.Int64())
	require.Equal(t, int64(0), w.ExitNum.Int64())

	require.Len(t, l2.FilterLogs[DepositRefundedEvent](logs), 1)
	require.Empty(t, l2.FilterLogs[DepositFinalizedEvent](logs))
}

func TestDeposit_MalformedMetadataRefunds(t *testing.T) {
	rt := newRuntime(t)
	res, _, err := deposit(t, rt, Deposit{
		ID:         nextDepositID(),
		L1Token:    t1,
		From:       sender,
		To:         dest,
		Amount:     big.NewInt(5),
		DeployData: []byte{0xde, 0xad},
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeRefunded, res.Outcome)
}

func TestDeposit_RejectsWrongCaller(t *testing.T) {
	rt := newRuntime(t)
	_, err := run(t, rt, sender, gwAddr, testGas, func(env *l2.Env) error {
		_, err := New().FinalizeInboundTransfer(env, Deposit{
			ID:         nextDepositID(),
			L1Token:    t1,
			From:       sender,
			To:         dest,
			Amount:     big.NewInt(1),
			DeployData: metadata(t, "Test", "TST", 18),
		})
		return err
	})
	require.ErrorIs(t, err, ErrUnauthorized)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	require.Equal(t, sender, authErr.Caller)
	require.Equal(t, []common.Address{counterpart}, authErr.Expected)
}

func TestDeposit_RejectsReplay(t *testing.T) {
	rt := newRuntime(t)
	d := Deposit{
		ID:         nextDepositID(),
		L1Token:    t1,
		From:       sender,
		To:         dest,
		Amount:     big.NewInt(10),
		DeployData: metadata(t, "Test", "TST", 18),
	}
	first, _, err := deposit(t, rt, d)
	require.NoError(t, err)

	_, _, err = deposit(t, rt, d)
	require.ErrorIs(t, err, ErrDepositAlreadyProcessed)
	require.Equal(t, int64(10), balance(t, rt, first.L2Token, dest))
}

func TestDeposit_RejectsInvalidInput(t *testing.T) {
	rt := newRuntime(t)
	_, _, err := deposit(t, rt, Deposit{L1Token: t1, From: sender, To: dest, Amount: big.NewInt(1)})
	require.ErrorIs(t, err, ErrInvalidDepositID)

	_, _, err = deposit(t, rt, Deposit{ID: nextDepositID(), L1Token: t1, From: sender, To: dest, Amount: big.NewInt(-1)})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDeposit_RejectsAmountAboveUint256(t *testing.T) {
	rt := newRuntime(t)
	tooLarge := new(big.Int).Lsh(big.NewInt(1), 256)
	tooLarge.Add(tooLarge, big.NewInt(5))

	id := nextDepositID()
	_, _, err := deposit(t, rt, Deposit{ID: id, L1Token: t1, From: sender, To: dest, Amount: tooLarge})
	require.ErrorIs(t, err, ErrInvalidAmount)

	require.False(t, view(t, rt, func(txn *l2.Txn) bool { return DepositProcessed(txn, gwAddr, id) }))
	require.Zero(t, bridgeState(t, rt).ExitNum.Sign())
}

func TestDeposit_Callback(t *testing.T) {
	tests := []struct {
		name      string
		recv      *receiver
		outcome   Outcome
		recipient common.Address
	}{
		{
			name:      "acknowledged",
			recv:      &receiver{ack: token.TransferReceivedSelector},
			outcome:   OutcomeMinted,
			recipient: dest,
		},
		{
			name:      "wrong acknowledgement",
			recv:      &receiver{ack: [4]byte{0xde, 0xad, 0xbe, 0xef}},
			outcome:   OutcomeCreditedToSender,
			recipient: sender,
		},
		{
			name:      "hook error",
			recv:      &receiver{err: errHookRejected},
			outcome:   OutcomeCreditedToSender,
			recipient: sender,
		},
		{
			name:      "hook panics",
			recv:      &receiver{panic: true},
			outcome:   OutcomeCreditedToSender,
			recipient: sender,
		},
		{
			name:      "hook exhausts gas",
			recv:      &receiver{burn: true},
			outcome:   OutcomeCreditedToSender,
			recipient: sender,
		},
		{
			name:      "destination without code",
			outcome:   OutcomeCreditedToSender,
			recipient: sender,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rt := newRuntime(t)
			if tc.recv != nil {
				installReceiver(t, rt, dest, tc.recv)
			}

			res, logs, err := deposit(t, rt, Deposit{
				ID:           nextDepositID(),
				L1Token:      t1,
				From:         sender,
				To:           dest,
				Amount:       big.NewInt(100),
				DeployData:     metadata(t, "Test", "TST", 18),
				CallHookData: []byte("hello"),
			})
			require.NoError(t, err)
			require.Equal(t, tc.outcome, res.Outcome)
			require.Equal(t, tc.recipient, res.Recipient)
			require.True(t, res.CallHookTriggered)

			other := sender
			if tc.recipient == sender {
				other = dest
			}
			require.Equal(t, int64(100), balance(t, rt, res.L2Token, tc.recipient))
			require.Equal(t, int64(0), balance(t, rt, res.L2Token, other))

			triggered := l2.FilterLogs[TransferAndCallTriggeredEvent](logs)
			require.Len(t, triggered, 1)
			require.Equal(t, tc.outcome == OutcomeMinted, triggered[0].Success)

			finalized := l2.FilterLogs[DepositFinalizedEvent](logs)
			require.Len(t, finalized, 1)
			require.Equal(t, tc.recipient, finalized[0].To)
			require.True(t, finalized[0].CallHookTriggered)

			if tc.recv != nil {
				require.Equal(t, 1, tc.recv.calls)
				touched := view(t, rt, func(txn *l2.Txn) bool { return txn.BoolAt(dest, "touched") })
				require.Equal(t, tc.outcome == OutcomeMinted, touched)
			}
		})
	}
}

func TestDeposit_CallbackAndCreditFailRefunds(t *testing.T) {
	rt := newRuntime(t)
	first, _, err := deposit(t, rt, Deposit{
		ID:         nextDepositID(),
		L1Token:    t1,
		From:       dest2,
		To:         dest2,
		Amount:     big.NewInt(1),
		DeployData: metadata(t, "Test", "TST", 18),
	})
	require.NoError(t, err)
	installReceiver(t, rt, dest, &receiver{ack: token.TransferReceivedSelector})

	// Enough for the replay guard and the refund, too little for either mint attempt.
	gas := l2.GasStorageSet + 95_000
	var res *DepositResult
	_, err = run(t, rt, counterpart, gwAddr, gas, func(env *l2.Env) error {
		var err error
		res, err = New().FinalizeInboundTransfer(env, Deposit{
			ID:           nextDepositID(),
			L1Token:      t1,
			From:         sender,
			To:           dest,
			Amount:       big.NewInt(7),
			CallHookData: []byte{1},
		})
		return err
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeRefunded, res.Outcome)
	require.Equal(t, ReasonCreditFailed, res.RefundReason)
	require.Equal(t, int64(0), balance(t, rt, first.L2Token, dest))
	require.Equal(t, int64(0), balance(t, rt, first.L2Token, sender))
	require.Equal(t, int64(1), bridgeState(t, rt).ExitNum.Int64())
}

func TestDeposit_CustomRegisteredUsesIntermediate(t *testing.T) {
	rt := newRuntime(t)
	custom := deployCustom(t, rt, t1)
	register(t, rt, t1, custom)
	st := bridgeState(t, rt)

	res, logs, err := deposit(t, rt, Deposit{
		ID:      nextDepositID(),
		L1Token: t1,
		From:    sender,
		To:      dest,
		Amount:  big.NewInt(50),
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeMinted, res.Outcome)
	require.Equal(t, st.CalculateIntermediateAddress(t1), res.L2Token)
	require.NotEqual(t, st.CalculateStandardAddress(t1), res.L2Token)
	require.Equal(t, int64(50), balance(t, rt, res.L2Token, dest))

	created := l2.FilterLogs[TokenCreatedEvent](logs)
	require.Equal(t, []TokenCreatedEvent{{L1Token: t1, L2Token: res.L2Token, Kind: KindIntermediate}}, created)

	info := view(t, rt, func(txn *l2.Txn) *token.Info {
		info, err := token.Describe(txn, res.L2Token)
		require.NoError(t, err)
		return info
	})
	require.Equal(t, token.DefaultMetadata(), token.Metadata{Name: info.Name, Symbol: info.Symbol, Decimals: info.Decimals})

	again, _, err := deposit(t, rt, Deposit{
		ID:      nextDepositID(),
		L1Token: t1,
		From:    sender,
		To:      dest,
		Amount:  big.NewInt(5),
	})
	require.NoError(t, err)
	require.Equal(t, res.L2Token, again.L2Token)
	require.False(t, again.Deployed)
}
