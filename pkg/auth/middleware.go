package auth

import (
	"bytes"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	apperrors "github.com/chainsafe/token-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/token-gateway/pkg/app/http"
)

// Headers carrying a signed holder request
const (
	HeaderSignature = "X-Signature"
	HeaderMessage   = "X-Message"
)

const maxSignedBody = 1 << 20

// RequireRole authenticates a bearer token carrying one of roles and stores
// the caller in the request context.
func RequireRole(v *JWTValidator, roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "bearer token required"))
				return
			}
			claims, err := v.ValidateToken(raw)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}
			if !slices.Contains(roles, claims.Role) {
				apphttp.DefaultErrorHandler(w, apperrors.ForbiddenError(nil, "role not permitted"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), claims.Caller())))
		})
	}
}

// RequireSignature authenticates an EIP-191 signed request and stores the
// signer as the caller and the signed nonce alongside it. The body is restored
// for the next handler.
func RequireSignature(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature := r.Header.Get(HeaderSignature)
			message := r.Header.Get(HeaderMessage)
			if signature == "" || message == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "signature and message required"))
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxSignedBody))
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.BadRequestError(err, "failed to read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			signed, err := VerifyRequestMessage(r.Method, r.URL.Path, body, message, signature, ttl, time.Now())
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid signature"))
				return
			}

			ctx := WithCaller(r.Context(), signed.Signer)
			ctx = WithNonce(ctx, signed.Nonce)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
