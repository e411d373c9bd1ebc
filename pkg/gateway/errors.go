package gateway

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnauthorized                 = errors.New("unauthorized caller")
	ErrAlreadyInitialized           = errors.New("gateway already initialized")
	ErrNotInitialized               = errors.New("gateway not initialized")
	ErrInvalidConfig                = errors.New("invalid gateway configuration")
	ErrAddressMismatch              = errors.New("deployed token address does not match the calculated address")
	ErrNoCustomToken                = errors.New("no custom token registered")
	ErrCustomTokenNotDeployed       = errors.New("custom token not deployed")
	ErrCustomTokenAlreadyRegistered = errors.New("custom token already registered")
	ErrDepositAlreadyProcessed      = errors.New("deposit already processed")
	ErrInvalidDepositID             = errors.New("invalid deposit id")
	ErrInvalidAmount                = errors.New("invalid amount")
	ErrNoTemplate                   = errors.New("token template not deployed")
)

// AuthError is returned when an authenticated entry point is invoked by the wrong
// caller. It matches ErrUnauthorized.
type AuthError struct {
	Op       string
	Caller   common.Address
	Expected []common.Address
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: caller %s is not authorized (expected one of %v)", e.Op, e.Caller.Hex(), e.Expected)
}

func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }

func authorize(op string, caller common.Address, allowed ...common.Address) error {
	for _, a := range allowed {
		if a != (common.Address{}) && caller == a {
			return nil
		}
	}
	return &AuthError{Op: op, Caller: caller, Expected: allowed}
}
