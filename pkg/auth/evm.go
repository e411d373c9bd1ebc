package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// requestMessagePrefix namespaces signed holder requests
const requestMessagePrefix = "token-gateway"

const maxNonceLen = 64

var (
	ErrMessageMismatch = errors.New("signed message does not match request")
	ErrMessageExpired  = errors.New("signed message expired")
)

// VerifyEIP191Signature verifies an EIP-191 personal_sign signature
// Returns the recovered Ethereum address if valid
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}

	if len(sigBytes) != 65 {
		return common.Address{}, fmt.Errorf("invalid signature length: expected 65, got %d", len(sigBytes))
	}

	// v can be 0, 1, 27, or 28 - normalize to 0 or 1
	if sigBytes[64] >= 27 {
		sigBytes[64] -= 27
	}

	pubKey, err := crypto.SigToPub(hashEIP191(message), sigBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// SignEIP191 produces a personal_sign signature over message. Used by clients
// and tests.
func SignEIP191(message string, key []byte) (string, error) {
	priv, err := crypto.ToECDSA(key)
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}
	sig, err := crypto.Sign(hashEIP191(message), priv)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig), nil
}

func hashEIP191(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// RequestMessage builds the message a holder signs for a request. It binds the
// method, the path, the body digest, a single-use nonce and the signing time.
func RequestMessage(method, path string, body []byte, nonce string, at time.Time) string {
	return fmt.Sprintf("%s:%s %s:%s:%s:%d",
		requestMessagePrefix,
		method,
		path,
		crypto.Keccak256Hash(body).Hex(),
		nonce,
		at.Unix(),
	)
}

// NewNonce returns a fresh request nonce.
func NewNonce() string {
	return uuid.NewString()
}

// SignedRequest is a verified holder request
type SignedRequest struct {
	Signer common.Address
	Nonce  string
}

// VerifyRequestMessage checks that message was built for this request and is
// not older than ttl, then recovers the signer. Whether the nonce was already
// used is left to the caller.
func VerifyRequestMessage(method, path string, body []byte, message, signature string, ttl time.Duration, now time.Time) (*SignedRequest, error) {
	rest, rawTS, ok := cutLast(message, ":")
	if !ok {
		return nil, ErrMessageMismatch
	}
	ts, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp", ErrMessageMismatch)
	}
	_, nonce, ok := cutLast(rest, ":")
	if !ok || nonce == "" || len(nonce) > maxNonceLen {
		return nil, fmt.Errorf("%w: bad nonce", ErrMessageMismatch)
	}
	signedAt := time.Unix(ts, 0)
	if message != RequestMessage(method, path, body, nonce, signedAt) {
		return nil, ErrMessageMismatch
	}
	if age := now.Sub(signedAt); age > ttl || age < -ttl {
		return nil, ErrMessageExpired
	}
	signer, err := VerifyEIP191Signature(message, signature)
	if err != nil {
		return nil, err
	}
	return &SignedRequest{Signer: signer, Nonce: nonce}, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+len(sep):], true
}

// ValidateEVMAddress checks if a string is a valid EVM address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}
