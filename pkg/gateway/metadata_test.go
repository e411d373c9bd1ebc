package gateway

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/token-gateway/pkg/token"
)

func word(b []byte) []byte { return common.RightPadBytes(b, 32) }

func TestDecodeDeployData(t *testing.T) {
	abiName, err := stringArgs.Pack("Wrapped Ether")
	require.NoError(t, err)
	abiDecimals, err := uint8Args.Pack(uint8(6))
	require.NoError(t, err)

	tests := []struct {
		name                    string
		nameRaw, symRaw, decRaw []byte
		want                    token.Metadata
	}{
		{
			name:    "abi strings",
			nameRaw: abiName,
			symRaw:  word([]byte("WETH")),
			decRaw:  abiDecimals,
			want:    token.Metadata{Name: "Wrapped Ether", Symbol: "WETH", Decimals: 6},
		},
		{
			name: "all empty",
			want: token.DefaultMetadata(),
		},
		{
			name:    "bytes32 name",
			nameRaw: word([]byte("Maker")),
			symRaw:  word([]byte("MKR")),
			want:    token.Metadata{Name: "Maker", Symbol: "MKR", Decimals: 18},
		},
		{
			name:   "decimals out of range",
			decRaw: common.LeftPadBytes(big.NewInt(256).Bytes(), 32),
			want:   token.DefaultMetadata(),
		},
		{
			name:    "unparseable fields",
			nameRaw: []byte{1, 2, 3},
			decRaw:  []byte{9},
			want:    token.DefaultMetadata(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeDeployData(tc.nameRaw, tc.symRaw, tc.decRaw)
			require.NoError(t, err)
			got, err := DecodeDeployData(data)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeDeployData_Malformed(t *testing.T) {
	md, err := DecodeDeployData([]byte{0x01})
	require.ErrorIs(t, err, ErrMalformedDeployData)
	require.Equal(t, token.DefaultMetadata(), md)

	md, err = DecodeDeployData(nil)
	require.NoError(t, err)
	require.Equal(t, token.DefaultMetadata(), md)
}
