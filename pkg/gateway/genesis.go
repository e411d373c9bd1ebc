package gateway

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/outbox"
	"github.com/chainsafe/token-gateway/pkg/token"
)

// genesisGas bounds the initialisation of the controller.
const genesisGas = 1_000_000

// Genesis places the system contracts of a fresh runtime.
type Genesis struct {
	Gateway        common.Address
	Counterpart    common.Address
	Template       common.Address
	CustomTemplate common.Address
	Operator       common.Address
}

// Bootstrap installs the outbox, the token templates and the controller, then
// initialises the controller. It commits on success.
func Bootstrap(rt *l2.Runtime, gen Genesis) error {
	txn := rt.Begin()
	defer txn.Rollback()

	installs := []struct {
		addr common.Address
		code l2.Contract
	}{
		{outbox.Address, outbox.New()},
		{gen.Template, token.NewStandardTemplate()},
		{gen.Gateway, New()},
	}
	if gen.CustomTemplate != (common.Address{}) {
		installs = append(installs, struct {
			addr common.Address
			code l2.Contract
		}{gen.CustomTemplate, token.NewCustomTemplate()})
	}
	for _, in := range installs {
		if err := txn.Install(in.addr, in.code); err != nil {
			return fmt.Errorf("failed to install %s: %w", in.code.Kind(), err)
		}
	}

	env := txn.NewEnv(common.Address{}, gen.Gateway, genesisGas)
	err := New().Initialize(env, Config{
		Counterpart:    gen.Counterpart,
		Template:       gen.Template,
		CustomTemplate: gen.CustomTemplate,
		Operator:       gen.Operator,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize gateway: %w", err)
	}
	if _, err := txn.Commit(); err != nil {
		return err
	}
	return nil
}
