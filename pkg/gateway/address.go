package gateway

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/token-gateway/pkg/l2"
)

// intermediateNamespace separates intermediate salts from standard ones.
var intermediateNamespace = crypto.Keccak256Hash([]byte("token-gateway.intermediate"))

// StandardSalt is keccak256(l1Token || template).
func StandardSalt(l1Token, template common.Address) common.Hash {
	return crypto.Keccak256Hash(l1Token.Bytes(), template.Bytes())
}

// IntermediateSalt is keccak256(namespace || l1Token || template).
func IntermediateSalt(l1Token, template common.Address) common.Hash {
	return crypto.Keccak256Hash(intermediateNamespace.Bytes(), l1Token.Bytes(), template.Bytes())
}

// StandardAddress returns where the controller at gw deploys the standard
// representation of l1Token. It does not depend on whether the token exists.
func StandardAddress(gw, template common.Address, proxyCodeHash common.Hash, l1Token common.Address) common.Address {
	return crypto.CreateAddress2(gw, StandardSalt(l1Token, template), proxyCodeHash.Bytes())
}

// IntermediateAddress returns where the controller at gw deploys the placeholder
// representation of an asset that has a custom token registered.
func IntermediateAddress(gw, template common.Address, proxyCodeHash common.Hash, l1Token common.Address) common.Address {
	return crypto.CreateAddress2(gw, IntermediateSalt(l1Token, template), proxyCodeHash.Bytes())
}

// CalculateStandardAddress is the public address query of the controller.
func (s *State) CalculateStandardAddress(l1Token common.Address) common.Address {
	return StandardAddress(s.Address, s.Template, s.ProxyCodeHash, l1Token)
}

// CalculateIntermediateAddress is the intermediate-representation counterpart of
// CalculateStandardAddress.
func (s *State) CalculateIntermediateAddress(l1Token common.Address) common.Address {
	return IntermediateAddress(s.Address, s.Template, s.ProxyCodeHash, l1Token)
}

// Addresses describes every secondary-domain location of an asset.
type Addresses struct {
	L1Token              common.Address
	Standard             common.Address
	StandardDeployed     bool
	Intermediate         common.Address
	IntermediateDeployed bool
	Custom               common.Address
	CustomDeployed       bool
}

// Lookup resolves the addresses of l1Token on the controller installed at gw.
func Lookup(txn *l2.Txn, gw, l1Token common.Address) (*Addresses, error) {
	st, err := Load(txn, gw)
	if err != nil {
		return nil, err
	}
	a := &Addresses{
		L1Token:      l1Token,
		Standard:     st.CalculateStandardAddress(l1Token),
		Intermediate: st.CalculateIntermediateAddress(l1Token),
	}
	a.StandardDeployed = txn.HasCode(a.Standard)
	a.IntermediateDeployed = txn.HasCode(a.Intermediate)
	if custom, ok := CustomToken(txn, gw, l1Token); ok {
		a.Custom = custom
		a.CustomDeployed = txn.HasCode(custom)
	}
	return a, nil
}
