package auth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyCaller is the context key for the authenticated caller address
	ContextKeyCaller contextKey = "caller"
	// ContextKeyNonce is the context key for the nonce of a signed request
	ContextKeyNonce contextKey = "nonce"
)

// WithCaller adds the authenticated caller address to the context
func WithCaller(ctx context.Context, caller common.Address) context.Context {
	return context.WithValue(ctx, ContextKeyCaller, caller)
}

// CallerFromContext retrieves the authenticated caller address from the context
func CallerFromContext(ctx context.Context) (common.Address, bool) {
	addr, ok := ctx.Value(ContextKeyCaller).(common.Address)
	return addr, ok
}

// WithNonce adds the nonce of a signed request to the context
func WithNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, ContextKeyNonce, nonce)
}

// NonceFromContext retrieves the nonce of a signed request from the context
func NonceFromContext(ctx context.Context) (string, bool) {
	nonce, ok := ctx.Value(ContextKeyNonce).(string)
	return nonce, ok
}
