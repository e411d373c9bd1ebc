package gateway

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/token"
)

// deployStandard deploys a standard instance of l1Token at the address derived from
// salt and initialises it. expected is the address the calculator predicted for salt;
// any other outcome is a broken invariant and aborts the enclosing operation.
func (g *Gateway) deployStandard(env *l2.Env, st *State, l1Token common.Address, salt common.Hash, expected common.Address, kind string, md token.Metadata) error {
	tpl, err := l2.CodeAs[token.Template](env.Txn(), st.Template)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoTemplate, err)
	}
	addr, err := env.Create2(salt, st.ProxyCodeHash, token.NewProxy(st.Template, tpl))
	if err != nil {
		return fmt.Errorf("failed to deploy %s token: %w", kind, err)
	}
	if addr != expected {
		return fmt.Errorf("%w: deployed %s, calculated %s", ErrAddressMismatch, addr.Hex(), expected.Hex())
	}
	if err := initialize(env, addr, l1Token, md); err != nil {
		return err
	}
	return env.Emit(TokenCreatedEvent{L1Token: l1Token, L2Token: addr, Kind: kind})
}

func initialize(env *l2.Env, addr, l1Token common.Address, md token.Metadata) error {
	res := env.Call(addr, env.GasLeft(), func(e *l2.Env) error {
		tok, err := l2.CodeAs[*token.Token](e.Txn(), addr)
		if err != nil {
			return err
		}
		return tok.Initialize(e, l1Token, md)
	})
	if res.Failed() {
		return fmt.Errorf("failed to initialize token %s: %w", addr.Hex(), res.Err)
	}
	return nil
}
