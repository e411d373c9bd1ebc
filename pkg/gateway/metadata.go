package gateway

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/chainsafe/token-gateway/pkg/token"
)

var ErrMalformedDeployData = errors.New("malformed deploy data")

var (
	abiBytes  = mustType("bytes")
	abiString = mustType("string")
	abiUint8  = mustType("uint8")

	deployDataArgs = abi.Arguments{
		{Name: "name", Type: abiBytes},
		{Name: "symbol", Type: abiBytes},
		{Name: "decimals", Type: abiBytes},
	}
	stringArgs = abi.Arguments{{Type: abiString}}
	uint8Args  = abi.Arguments{{Type: abiUint8}}
)

func mustType(name string) abi.Type {
	typ, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(fmt.Sprintf("abi type %s: %v", name, err))
	}
	return typ
}

// EncodeDeployData builds the deploy metadata envelope from the raw return data of the
// primary-domain name(), symbol() and decimals() queries. Any field may be empty.
func EncodeDeployData(name, symbol, decimals []byte) ([]byte, error) {
	data, err := deployDataArgs.Pack(nonNil(name), nonNil(symbol), nonNil(decimals))
	if err != nil {
		return nil, fmt.Errorf("failed to pack deploy data: %w", err)
	}
	return data, nil
}

// EncodeMetadata is EncodeDeployData for an asset that reports all three fields.
func EncodeMetadata(md token.Metadata) ([]byte, error) {
	name, err := stringArgs.Pack(md.Name)
	if err != nil {
		return nil, err
	}
	symbol, err := stringArgs.Pack(md.Symbol)
	if err != nil {
		return nil, err
	}
	decimals, err := uint8Args.Pack(md.Decimals)
	if err != nil {
		return nil, err
	}
	return EncodeDeployData(name, symbol, decimals)
}

// DecodeDeployData parses the envelope produced by EncodeDeployData. Fields that are
// empty or cannot be interpreted fall back to ("", "", 18).
func DecodeDeployData(data []byte) (token.Metadata, error) {
	md := token.DefaultMetadata()
	if len(data) == 0 {
		return md, nil
	}
	vals, err := deployDataArgs.Unpack(data)
	if err != nil {
		return md, fmt.Errorf("%w: %w", ErrMalformedDeployData, err)
	}
	md.Name = parseString(vals[0].([]byte))
	md.Symbol = parseString(vals[1].([]byte))
	md.Decimals = parseDecimals(vals[2].([]byte))
	return md, nil
}

// parseString accepts an ABI encoded string or a bytes32 value, the latter used by
// older tokens.
func parseString(raw []byte) string {
	switch {
	case len(raw) >= 64:
		vals, err := stringArgs.Unpack(raw)
		if err != nil {
			return ""
		}
		return vals[0].(string)
	case len(raw) == 32:
		return string(bytes.TrimRight(raw, "\x00"))
	default:
		return ""
	}
}

func parseDecimals(raw []byte) uint8 {
	if len(raw) != 32 {
		return token.DefaultDecimals
	}
	v := new(big.Int).SetBytes(raw)
	if !v.IsUint64() || v.Uint64() > 255 {
		return token.DefaultDecimals
	}
	return uint8(v.Uint64())
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
