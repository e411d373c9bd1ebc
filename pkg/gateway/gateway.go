// Package gateway implements the bridge controller that runs on the secondary domain.
//
// The controller mints the canonical representation of a primary-domain asset when the
// trusted primary-domain counterpart reports a deposit, and queues withdrawal messages
// back to the primary domain when holders burn their balance. Standard representations
// live at addresses derived from the asset address, so a deposit can target a token that
// does not exist yet; the first deposit carrying metadata deploys it.
//
// All state lives in the l2 runtime under the controller's address. Every entry point
// takes the *l2.Env of the call frame it runs in, so the caller is authenticated against
// Env.Caller and writes are reverted together with the frame.
package gateway

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/token"
)

const (
	slotInitialized    = "initialized"
	slotCounterpart    = "counterpart"
	slotTemplate       = "template"
	slotCustomTemplate = "customTemplate"
	slotOperator       = "operator"
	slotProxyCodeHash  = "proxyCodeHash"
	slotExitNum        = "exitNum"
	prefixCustom       = "custom/"
	prefixDeposit      = "deposit/"
)

func customSlot(l1Token common.Address) string { return prefixCustom + l1Token.Hex() }

func depositSlot(id common.Hash) string { return prefixDeposit + id.Hex() }

// Config is the one-time BridgeState initialisation.
type Config struct {
	// Counterpart is the primary-domain gateway every inbound call must come from.
	Counterpart common.Address
	// Template is the shared implementation of standard instances.
	Template common.Address
	// CustomTemplate backs instances deployed with DeployCustomToken. Optional.
	CustomTemplate common.Address
	// Operator may deploy custom tokens. Optional.
	Operator common.Address
}

// Gateway is the controller contract. It carries no Go state; everything is kept in the
// storage of the address it is installed at.
type Gateway struct{}

func New() *Gateway { return &Gateway{} }

func (*Gateway) Kind() string { return "token-gateway" }

// Initialize sets the BridgeState. It can run only once.
func (g *Gateway) Initialize(env *l2.Env, cfg Config) error {
	txn := env.Txn()
	if txn.BoolAt(env.Self(), slotInitialized) {
		return ErrAlreadyInitialized
	}
	if cfg.Counterpart == (common.Address{}) {
		return fmt.Errorf("%w: empty counterpart", ErrInvalidConfig)
	}
	if _, err := l2.CodeAs[token.Template](txn, cfg.Template); err != nil {
		return fmt.Errorf("%w: %w", ErrNoTemplate, err)
	}
	if cfg.CustomTemplate != (common.Address{}) {
		if _, err := l2.CodeAs[token.Template](txn, cfg.CustomTemplate); err != nil {
			return fmt.Errorf("%w: %w", ErrNoTemplate, err)
		}
	}

	writes := []struct {
		slot string
		v    any
	}{
		{slotInitialized, true},
		{slotCounterpart, cfg.Counterpart},
		{slotTemplate, cfg.Template},
		{slotCustomTemplate, cfg.CustomTemplate},
		{slotOperator, cfg.Operator},
		{slotProxyCodeHash, token.ProxyCodeHash()},
		{slotExitNum, new(big.Int)},
	}
	for _, w := range writes {
		if err := env.SetState(w.slot, w.v); err != nil {
			return err
		}
	}
	return nil
}

// State is a read-only view of the BridgeState.
type State struct {
	Address        common.Address
	Counterpart    common.Address
	Template       common.Address
	CustomTemplate common.Address
	Operator       common.Address
	ProxyCodeHash  common.Hash
	ExitNum        *big.Int
}

// Load reads the BridgeState of the controller installed at gw.
func Load(txn *l2.Txn, gw common.Address) (*State, error) {
	if !txn.BoolAt(gw, slotInitialized) {
		return nil, ErrNotInitialized
	}
	var codeHash common.Hash
	if v, ok := txn.GetState(gw, slotProxyCodeHash); ok {
		codeHash = v.(common.Hash)
	}
	return &State{
		Address:        gw,
		Counterpart:    txn.AddressAt(gw, slotCounterpart),
		Template:       txn.AddressAt(gw, slotTemplate),
		CustomTemplate: txn.AddressAt(gw, slotCustomTemplate),
		Operator:       txn.AddressAt(gw, slotOperator),
		ProxyCodeHash:  codeHash,
		ExitNum:        txn.BigAt(gw, slotExitNum),
	}, nil
}

func (g *Gateway) state(env *l2.Env) (*State, error) {
	return Load(env.Txn(), env.Self())
}

// CustomToken returns the custom token registered for l1Token.
func CustomToken(txn *l2.Txn, gw, l1Token common.Address) (common.Address, bool) {
	addr := txn.AddressAt(gw, customSlot(l1Token))
	return addr, addr != (common.Address{})
}

// DepositProcessed reports whether the deposit id has been consumed.
func DepositProcessed(txn *l2.Txn, gw common.Address, id common.Hash) bool {
	return txn.BoolAt(gw, depositSlot(id))
}

func mintOn(env *l2.Env, tokenAddr, to common.Address, amount *big.Int, gas uint64) l2.CallResult {
	return env.Call(tokenAddr, gas, func(e *l2.Env) error {
		tok, err := l2.CodeAs[*token.Token](e.Txn(), tokenAddr)
		if err != nil {
			return err
		}
		return tok.Mint(e, to, amount)
	})
}
