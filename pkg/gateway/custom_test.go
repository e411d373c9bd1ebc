package gateway

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/token"
)

func deployCustom(t testingT, rt *l2.Runtime, l1Token common.Address) common.Address {
	t.Helper()
	var addr common.Address
	_, err := run(t, rt, operator, gwAddr, testGas, func(env *l2.Env) error {
		var err error
		addr, err = New().DeployCustomToken(env, l1Token, token.Metadata{Name: "Custom", Symbol: "CST", Decimals: 8})
		return err
	})
	require.NoError(t, err)
	return addr
}

func register(t testingT, rt *l2.Runtime, l1Token, custom common.Address) {
	t.Helper()
	_, err := run(t, rt, counterpart, gwAddr, testGas, func(env *l2.Env) error {
		return New().RegisterCustomToken(env, l1Token, custom)
	})
	require.NoError(t, err)
}

func TestDeployCustomToken(t *testing.T) {
	rt := newRuntime(t)
	first := deployCustom(t, rt, t1)
	second := deployCustom(t, rt, common.HexToAddress("0xf2"))
	require.NotEqual(t, first, second)
	require.Equal(t, crypto.CreateAddress(gwAddr, 0), first)

	info := view(t, rt, func(txn *l2.Txn) *token.Info {
		info, err := token.Describe(txn, first)
		require.NoError(t, err)
		return info
	})
	require.Equal(t, "custom-template", info.Kind)
	require.Equal(t, customTemplate, info.Template)
	require.Equal(t, gwAddr, info.Gateway)
	require.Equal(t, "CST", info.Symbol)
	require.Equal(t, uint8(8), info.Decimals)

	_, err := run(t, rt, sender, gwAddr, testGas, func(env *l2.Env) error {
		_, err := New().DeployCustomToken(env, t1, token.DefaultMetadata())
		return err
	})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegisterCustomToken(t *testing.T) {
	rt := newRuntime(t)
	custom := deployCustom(t, rt, t1)

	logs, err := run(t, rt, counterpart, gwAddr, testGas, func(env *l2.Env) error {
		return New().RegisterCustomToken(env, t1, custom)
	})
	require.NoError(t, err)
	require.Equal(t, []CustomTokenRegisteredEvent{{L1Token: t1, L2Token: custom}},
		l2.FilterLogs[CustomTokenRegisteredEvent](logs))

	t.Run("same address is a no-op", func(t *testing.T) {
		logs, err := run(t, rt, counterpart, gwAddr, testGas, func(env *l2.Env) error {
			return New().RegisterCustomToken(env, t1, custom)
		})
		require.NoError(t, err)
		require.Empty(t, logs)
	})

	t.Run("different address is rejected", func(t *testing.T) {
		_, err := run(t, rt, counterpart, gwAddr, testGas, func(env *l2.Env) error {
			return New().RegisterCustomToken(env, t1, common.HexToAddress("0xbeef"))
		})
		require.ErrorIs(t, err, ErrCustomTokenAlreadyRegistered)

		got := view(t, rt, func(txn *l2.Txn) common.Address {
			addr, _ := CustomToken(txn, gwAddr, t1)
			return addr
		})
		require.Equal(t, custom, got)
	})

	t.Run("wrong caller", func(t *testing.T) {
		_, err := run(t, rt, operator, gwAddr, testGas, func(env *l2.Env) error {
			return New().RegisterCustomToken(env, common.HexToAddress("0xf3"), custom)
		})
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestMigrate(t *testing.T) {
	rt := newRuntime(t)
	custom := deployCustom(t, rt, t1)
	register(t, rt, t1, custom)

	res, _, err := deposit(t, rt, Deposit{
		ID:      nextDepositID(),
		L1Token: t1,
		From:    sender,
		To:      dest,
		Amount:  big.NewInt(50),
	})
	require.NoError(t, err)
	intermediate := res.L2Token

	logs, err := run(t, rt, dest, intermediate, testGas, func(env *l2.Env) error {
		tok, err := l2.CodeAs[*token.Token](env.Txn(), intermediate)
		if err != nil {
			return err
		}
		return tok.Migrate(env, big.NewInt(30))
	})
	require.NoError(t, err)
	require.Equal(t, int64(20), balance(t, rt, intermediate, dest))
	require.Equal(t, int64(30), balance(t, rt, custom, dest))

	migrated := l2.FilterLogs[TokenMigratedEvent](logs)
	require.Equal(t, []TokenMigratedEvent{{L1Token: t1, L2Token: custom, Account: dest, Amount: big.NewInt(30)}}, migrated)
}

func TestMigrate_Preconditions(t *testing.T) {
	rt := newRuntime(t)
	st := bridgeState(t, rt)
	l1 := common.HexToAddress("0xf4")

	migrate := func(caller common.Address) error {
		_, err := run(t, rt, caller, gwAddr, testGas, func(env *l2.Env) error {
			return New().Migrate(env, l1, dest, big.NewInt(1))
		})
		return err
	}

	require.ErrorIs(t, migrate(st.CalculateIntermediateAddress(l1)), ErrNoCustomToken)
	require.ErrorIs(t, migrate(st.CalculateStandardAddress(l1)), ErrUnauthorized)

	undeployed := common.HexToAddress("0xc0ffee")
	register(t, rt, l1, undeployed)
	require.ErrorIs(t, migrate(st.CalculateIntermediateAddress(l1)), ErrCustomTokenNotDeployed)
}

func TestMigrate_FromStandardInstanceRejected(t *testing.T) {
	rt := newRuntime(t)
	res, _, err := deposit(t, rt, Deposit{
		ID:         nextDepositID(),
		L1Token:    t1,
		From:       sender,
		To:         dest,
		Amount:     big.NewInt(10),
		DeployData: metadata(t, "Test", "TST", 18),
	})
	require.NoError(t, err)
	register(t, rt, t1, deployCustom(t, rt, t1))

	_, err = run(t, rt, dest, res.L2Token, testGas, func(env *l2.Env) error {
		tok, err := l2.CodeAs[*token.Token](env.Txn(), res.L2Token)
		if err != nil {
			return err
		}
		return tok.Migrate(env, big.NewInt(10))
	})
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, int64(10), balance(t, rt, res.L2Token, dest))
}
