package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// Role is the privilege carried by a bearer token
type Role string

const (
	// RoleCounterpart is held by the relayer delivering L1 gateway calls
	RoleCounterpart Role = "counterpart"
	// RoleOperator may deploy custom tokens
	RoleOperator Role = "operator"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the gateway bearer token claims. The subject is the caller address.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Caller returns the subject as an address
func (c *Claims) Caller() common.Address {
	return common.HexToAddress(c.Subject)
}

// JWTValidator issues and validates HS256 bearer tokens
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a new JWT validator
func NewJWTValidator(secret, issuer string) *JWTValidator {
	return &JWTValidator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// IssueToken signs a token for caller with the given role
func (v *JWTValidator) IssueToken(caller common.Address, role Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   caller.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates a JWT token and returns the claims
func (v *JWTValidator) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if !ValidateEVMAddress(claims.Subject) {
		return nil, fmt.Errorf("%w: subject is not an address", ErrInvalidToken)
	}
	return claims, nil
}
