package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/token-gateway/pkg/app/errors"
)

const serviceName = "GatewayService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the gateway Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// begin logs the method entry and returns a function logging its exit
func (ls *logService) begin(method string, fields ...zap.Field) func(err error, result ...zap.Field) {
	start := time.Now()
	base := append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)

	ls.logger.Debug(method+" started", base...)

	return func(err error, result ...zap.Field) {
		out := append(base, zap.Duration("duration", time.Since(start)))
		if err != nil {
			out = append(out, zap.Error(err))
			// client mistakes are not service failures
			if apperrors.IsInternalError(err) {
				ls.logger.Error(method+" failed", out...)
			} else {
				ls.logger.Warn(method+" rejected", out...)
			}
			return
		}
		ls.logger.Info(method+" completed", append(out, result...)...)
	}
}

// FinalizeDeposit wraps the service method with logging
func (ls *logService) FinalizeDeposit(
	ctx context.Context,
	caller common.Address,
	req *DepositRequest,
) (resp *DepositResponse, err error) {
	done := ls.begin("FinalizeDeposit",
		zap.String("caller", caller.Hex()),
		zap.String("deposit_id", req.DepositID.Hex()),
		zap.String("l1_token", req.L1Token.Hex()),
		zap.String("from", req.From.Hex()),
		zap.String("to", req.To.Hex()),
		zap.String("amount", req.Amount.String()),
		zap.Bool("has_deploy_data", len(req.DeployData) > 0),
		zap.Bool("has_call_hook", len(req.CallHookData) > 0),
	)
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil,
			zap.String("outcome", resp.Outcome),
			zap.String("l2_token", resp.L2Token.Hex()),
			zap.String("recipient", resp.Recipient.Hex()),
			zap.Bool("deployed", resp.Deployed),
			zap.String("refund_reason", resp.RefundReason),
			zap.String("exit_num", resp.ExitNum),
			zap.Uint64("gas_used", resp.GasUsed),
		)
	}()

	return ls.svc.FinalizeDeposit(ctx, caller, req)
}

// RegisterCustomToken wraps the service method with logging
func (ls *logService) RegisterCustomToken(
	ctx context.Context,
	caller common.Address,
	req *RegisterCustomTokenRequest,
) (resp *CallResponse, err error) {
	done := ls.begin("RegisterCustomToken",
		zap.String("caller", caller.Hex()),
		zap.String("l1_token", req.L1Token.Hex()),
		zap.String("custom_token", req.CustomToken.Hex()),
	)
	defer func() { done(err) }()

	return ls.svc.RegisterCustomToken(ctx, caller, req)
}

// DeployCustomToken wraps the service method with logging
func (ls *logService) DeployCustomToken(
	ctx context.Context,
	caller common.Address,
	req *DeployCustomTokenRequest,
) (resp *DeployCustomTokenResponse, err error) {
	done := ls.begin("DeployCustomToken",
		zap.String("caller", caller.Hex()),
		zap.String("l1_token", req.L1Token.Hex()),
		zap.String("symbol", req.Symbol),
	)
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil, zap.String("custom_token", resp.CustomToken.Hex()))
	}()

	return ls.svc.DeployCustomToken(ctx, caller, req)
}

// Withdraw wraps the service method with logging
func (ls *logService) Withdraw(
	ctx context.Context,
	holder common.Address,
	req *WithdrawRequest,
) (resp *WithdrawResponse, err error) {
	done := ls.begin("Withdraw",
		zap.String("holder", holder.Hex()),
		zap.String("l2_token", req.L2Token.Hex()),
		zap.String("destination", req.Destination.Hex()),
		zap.String("amount", req.Amount.String()),
		zap.String("nonce", req.Nonce),
	)
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil,
			zap.String("msg_id", resp.WithdrawalID),
			zap.String("exit_num", resp.ExitNum),
		)
	}()

	return ls.svc.Withdraw(ctx, holder, req)
}

// Migrate wraps the service method with logging
func (ls *logService) Migrate(
	ctx context.Context,
	holder common.Address,
	req *MigrateRequest,
) (resp *CallResponse, err error) {
	done := ls.begin("Migrate",
		zap.String("holder", holder.Hex()),
		zap.String("l2_token", req.L2Token.Hex()),
		zap.String("amount", req.Amount.String()),
		zap.String("nonce", req.Nonce),
	)
	defer func() { done(err) }()

	return ls.svc.Migrate(ctx, holder, req)
}

// Transfer wraps the service method with logging
func (ls *logService) Transfer(
	ctx context.Context,
	holder common.Address,
	req *TransferRequest,
) (resp *CallResponse, err error) {
	done := ls.begin("Transfer",
		zap.String("holder", holder.Hex()),
		zap.String("l2_token", req.L2Token.Hex()),
		zap.String("to", req.To.Hex()),
		zap.String("amount", req.Amount.String()),
		zap.String("nonce", req.Nonce),
	)
	defer func() { done(err) }()

	return ls.svc.Transfer(ctx, holder, req)
}

// Read-only methods are not logged

func (ls *logService) Addresses(ctx context.Context, l1Token common.Address) (*AddressesResponse, error) {
	return ls.svc.Addresses(ctx, l1Token)
}

func (ls *logService) TokenInfo(ctx context.Context, l2Token common.Address) (*TokenResponse, error) {
	return ls.svc.TokenInfo(ctx, l2Token)
}

func (ls *logService) Balance(ctx context.Context, l2Token, holder common.Address) (*BalanceResponse, error) {
	return ls.svc.Balance(ctx, l2Token, holder)
}

func (ls *logService) Messages(ctx context.Context, query *MessagesQuery) ([]*MessageResponse, error) {
	return ls.svc.Messages(ctx, query)
}

func (ls *logService) Call(ctx context.Context, id uuid.UUID) (*CallRecordResponse, error) {
	return ls.svc.Call(ctx, id)
}
