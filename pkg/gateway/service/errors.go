package service

import (
	"errors"

	apperrors "github.com/chainsafe/token-gateway/pkg/app/errors"
	"github.com/chainsafe/token-gateway/pkg/gateway"
	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/outbox"
	"github.com/chainsafe/token-gateway/pkg/token"
)

type errorMapping struct {
	target  error
	wrap    func(err error, message string) error
	message string
}

// errorMappings is checked in order; the first match wins
var errorMappings = []errorMapping{
	{ErrNonceUsed, apperrors.UnAuthorizedError, "request nonce already used"},
	{gateway.ErrUnauthorized, apperrors.ForbiddenError, "caller not authorized"},
	{token.ErrOnlyGateway, apperrors.ForbiddenError, "caller not authorized"},
	{gateway.ErrDepositAlreadyProcessed, apperrors.ConflictError, "deposit already processed"},
	{gateway.ErrCustomTokenAlreadyRegistered, apperrors.ConflictError, "custom token already registered"},
	{l2.ErrContractAddressCollision, apperrors.ConflictError, "contract already deployed"},
	{gateway.ErrNoCustomToken, apperrors.ResourceNotFoundError, "no custom token registered"},
	{gateway.ErrCustomTokenNotDeployed, apperrors.ResourceNotFoundError, "custom token not deployed"},
	{gateway.ErrNotInitialized, apperrors.ResourceNotFoundError, "gateway not initialized"},
	{token.ErrNotInitialized, apperrors.ResourceNotFoundError, "token not found"},
	{l2.ErrNoCode, apperrors.ResourceNotFoundError, "token not found"},
	{l2.ErrUnexpectedCode, apperrors.ResourceNotFoundError, "token not found"},
	{token.ErrInsufficientBalance, apperrors.BadRequestError, "insufficient balance"},
	{gateway.ErrInvalidDepositID, apperrors.BadRequestError, "invalid deposit id"},
	{gateway.ErrInvalidAmount, apperrors.BadRequestError, "invalid amount"},
	{token.ErrInvalidAmount, apperrors.BadRequestError, "invalid amount"},
	{token.ErrZeroAddress, apperrors.BadRequestError, "zero address"},
	{outbox.ErrEmptyDestination, apperrors.BadRequestError, "empty destination"},
	{l2.ErrOutOfGas, apperrors.BadRequestError, "out of gas"},
}

// toServiceError classifies a runtime error for the API
func toServiceError(err error) error {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.wrap(err, m.message)
		}
	}
	return apperrors.GeneralError(err)
}
