package gateway

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/token"
)

// RegisterCustomToken maps l1Token to an already deployed custom representation. Only
// the primary-domain counterpart may call it. Entries are permanent: registering the
// same address again is a no-op, registering a different one is rejected.
func (g *Gateway) RegisterCustomToken(env *l2.Env, l1Token, custom common.Address) error {
	st, err := g.state(env)
	if err != nil {
		return err
	}
	if err := authorize("registerCustomToken", env.Caller(), st.Counterpart); err != nil {
		return err
	}
	if custom == (common.Address{}) {
		return fmt.Errorf("%w: empty custom token address", ErrInvalidConfig)
	}
	if existing, ok := CustomToken(env.Txn(), env.Self(), l1Token); ok {
		if existing == custom {
			return nil
		}
		return fmt.Errorf("%w: %s is mapped to %s", ErrCustomTokenAlreadyRegistered, l1Token.Hex(), existing.Hex())
	}
	if err := env.SetState(customSlot(l1Token), custom); err != nil {
		return err
	}
	return env.Emit(CustomTokenRegisteredEvent{L1Token: l1Token, L2Token: custom})
}

// Migrate mints amount to account on the custom representation of l1Token. Only the
// intermediate representation may call it, after burning the same amount from account.
func (g *Gateway) Migrate(env *l2.Env, l1Token, account common.Address, amount *big.Int) error {
	st, err := g.state(env)
	if err != nil {
		return err
	}
	if err := authorize("migrate", env.Caller(), st.CalculateIntermediateAddress(l1Token)); err != nil {
		return err
	}
	custom, ok := CustomToken(env.Txn(), env.Self(), l1Token)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoCustomToken, l1Token.Hex())
	}
	if !env.Txn().HasCode(custom) {
		return fmt.Errorf("%w: %s", ErrCustomTokenNotDeployed, custom.Hex())
	}
	if r := mintOn(env, custom, account, amount, env.GasLeft()); r.Failed() {
		return fmt.Errorf("failed to mint on custom token %s: %w", custom.Hex(), r.Err)
	}
	return env.Emit(TokenMigratedEvent{
		L1Token: l1Token,
		L2Token: custom,
		Account: account,
		Amount:  amount,
	})
}

// DeployCustomToken deploys an instance of the custom template bound to l1Token and to
// this controller. Only the operator may call it. The returned address still has to be
// registered from the primary domain.
func (g *Gateway) DeployCustomToken(env *l2.Env, l1Token common.Address, md token.Metadata) (common.Address, error) {
	st, err := g.state(env)
	if err != nil {
		return common.Address{}, err
	}
	if err := authorize("deployCustomToken", env.Caller(), st.Operator); err != nil {
		return common.Address{}, err
	}
	tpl, err := l2.CodeAs[token.Template](env.Txn(), st.CustomTemplate)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrNoTemplate, err)
	}
	addr, err := env.Create(token.NewProxy(st.CustomTemplate, tpl))
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to deploy custom token: %w", err)
	}
	if err := initialize(env, addr, l1Token, md); err != nil {
		return common.Address{}, err
	}
	if err := env.Emit(TokenCreatedEvent{L1Token: l1Token, L2Token: addr, Kind: KindCustom}); err != nil {
		return common.Address{}, err
	}
	return addr, nil
}
