// Package service exposes the token gateway to the outside world. Every
// accepted state-changing call is executed against the L2 runtime, appended to
// the journal and only then committed, so a restart can rebuild the runtime by
// replaying the journal.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/token-gateway/internal/metrics"
	apperrors "github.com/chainsafe/token-gateway/pkg/app/errors"
	"github.com/chainsafe/token-gateway/pkg/gateway"
	"github.com/chainsafe/token-gateway/pkg/gatewaystore"
	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/outbox"
	"github.com/chainsafe/token-gateway/pkg/token"
)

// Journal operation names
const (
	OpDeposit             = "deposit"
	OpRegisterCustomToken = "register_custom_token"
	OpDeployCustomToken   = "deploy_custom_token"
	OpWithdraw            = "withdraw"
	OpMigrate             = "migrate"
	OpTransfer            = "transfer"
)

// Store is the narrow journal interface used by the gateway service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	AppendCall(ctx context.Context, call *gatewaystore.Call) error
	GetCall(ctx context.Context, id uuid.UUID) (*gatewaystore.Call, error)
	ListCalls(ctx context.Context, afterSeq int64, limit int) ([]*gatewaystore.Call, error)
	ListMessages(ctx context.Context, opts ...gatewaystore.QueryOption) ([]*gatewaystore.Message, error)
}

// Service defines the gateway operations reachable over the API
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	FinalizeDeposit(ctx context.Context, caller common.Address, req *DepositRequest) (*DepositResponse, error)
	RegisterCustomToken(ctx context.Context, caller common.Address, req *RegisterCustomTokenRequest) (*CallResponse, error)
	DeployCustomToken(ctx context.Context, caller common.Address, req *DeployCustomTokenRequest) (*DeployCustomTokenResponse, error)
	Withdraw(ctx context.Context, holder common.Address, req *WithdrawRequest) (*WithdrawResponse, error)
	Migrate(ctx context.Context, holder common.Address, req *MigrateRequest) (*CallResponse, error)
	Transfer(ctx context.Context, holder common.Address, req *TransferRequest) (*CallResponse, error)
	Addresses(ctx context.Context, l1Token common.Address) (*AddressesResponse, error)
	TokenInfo(ctx context.Context, l2Token common.Address) (*TokenResponse, error)
	Balance(ctx context.Context, l2Token, holder common.Address) (*BalanceResponse, error)
	Messages(ctx context.Context, query *MessagesQuery) ([]*MessageResponse, error)
	Call(ctx context.Context, id uuid.UUID) (*CallRecordResponse, error)
}

// Config holds the runtime parameters of the service
type Config struct {
	// Gateway is where the controller is installed
	Gateway common.Address
	// GasLimit is the budget of every top-level call
	GasLimit uint64
}

type gatewayService struct {
	rt     *l2.Runtime
	store  Store
	cfg    Config
	logger *zap.Logger
	ops    map[string]operation
}

// NewService creates the gateway service on a bootstrapped runtime and
// replays the journal into it.
func NewService(ctx context.Context, rt *l2.Runtime, store Store, cfg Config, logger *zap.Logger) (Service, error) {
	s := &gatewayService{
		rt:     rt,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
	s.ops = map[string]operation{
		OpDeposit:             s.applyDeposit,
		OpRegisterCustomToken: s.applyRegisterCustomToken,
		OpDeployCustomToken:   s.applyDeployCustomToken,
		OpWithdraw:            s.applyWithdraw,
		OpMigrate:             s.applyMigrate,
		OpTransfer:            s.applyTransfer,
	}

	n, err := s.replay(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.syncExitNum(); err != nil {
		return nil, err
	}
	logger.Info("Journal replayed", zap.Int("calls", n))
	return s, nil
}

// FinalizeDeposit settles a deposit notification from the L1 counterpart
func (s *gatewayService) FinalizeDeposit(ctx context.Context, caller common.Address, req *DepositRequest) (*DepositResponse, error) {
	out, call, err := s.execute(ctx, OpDeposit, caller, req)
	if err != nil {
		return nil, err
	}
	res := out.(*gateway.DepositResult)
	metrics.DepositsTotal.WithLabelValues(string(res.Outcome)).Inc()

	resp := &DepositResponse{
		CallID:            call.ID,
		Outcome:           string(res.Outcome),
		L2Token:           res.L2Token,
		Recipient:         res.Recipient,
		Deployed:          res.Deployed,
		CallHookTriggered: res.CallHookTriggered,
		RefundReason:      res.RefundReason,
		GasUsed:           call.GasUsed,
	}
	if res.WithdrawalID != nil {
		resp.WithdrawalID = res.WithdrawalID.String()
		resp.ExitNum = res.ExitNum.String()
	}
	return resp, nil
}

// RegisterCustomToken binds a custom token on behalf of the L1 counterpart
func (s *gatewayService) RegisterCustomToken(
	ctx context.Context,
	caller common.Address,
	req *RegisterCustomTokenRequest,
) (*CallResponse, error) {
	_, call, err := s.execute(ctx, OpRegisterCustomToken, caller, req)
	if err != nil {
		return nil, err
	}
	return &CallResponse{CallID: call.ID}, nil
}

// DeployCustomToken deploys a custom token instance for the operator
func (s *gatewayService) DeployCustomToken(
	ctx context.Context,
	caller common.Address,
	req *DeployCustomTokenRequest,
) (*DeployCustomTokenResponse, error) {
	out, call, err := s.execute(ctx, OpDeployCustomToken, caller, req)
	if err != nil {
		return nil, err
	}
	return &DeployCustomTokenResponse{
		CallID:      call.ID,
		CustomToken: out.(common.Address),
	}, nil
}

// Withdraw burns holder balance and queues the release for L1
func (s *gatewayService) Withdraw(ctx context.Context, holder common.Address, req *WithdrawRequest) (*WithdrawResponse, error) {
	out, call, err := s.execute(ctx, OpWithdraw, holder, req)
	if err != nil {
		return nil, err
	}
	w := out.(*withdrawal)
	return &WithdrawResponse{
		CallID:       call.ID,
		WithdrawalID: w.id.String(),
		ExitNum:      w.exitNum.String(),
	}, nil
}

// Migrate moves holder balance from the intermediate representation to the custom token
func (s *gatewayService) Migrate(ctx context.Context, holder common.Address, req *MigrateRequest) (*CallResponse, error) {
	_, call, err := s.execute(ctx, OpMigrate, holder, req)
	if err != nil {
		return nil, err
	}
	return &CallResponse{CallID: call.ID}, nil
}

// Transfer moves holder balance between L2 accounts
func (s *gatewayService) Transfer(ctx context.Context, holder common.Address, req *TransferRequest) (*CallResponse, error) {
	_, call, err := s.execute(ctx, OpTransfer, holder, req)
	if err != nil {
		return nil, err
	}
	return &CallResponse{CallID: call.ID}, nil
}

// Addresses lists every L2 representation of l1Token
func (s *gatewayService) Addresses(_ context.Context, l1Token common.Address) (*AddressesResponse, error) {
	var resp *AddressesResponse
	err := s.rt.View(func(txn *l2.Txn) error {
		a, err := gateway.Lookup(txn, s.cfg.Gateway, l1Token)
		if err != nil {
			return err
		}
		resp = toAddressesResponse(a)
		return nil
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	return resp, nil
}

// TokenInfo describes the instance at l2Token
func (s *gatewayService) TokenInfo(_ context.Context, l2Token common.Address) (*TokenResponse, error) {
	var resp *TokenResponse
	err := s.rt.View(func(txn *l2.Txn) error {
		info, err := token.Describe(txn, l2Token)
		if err != nil {
			return err
		}
		resp = toTokenResponse(info, len(token.Holders(txn, l2Token)))
		return nil
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	return resp, nil
}

// Balance returns the holder balance on l2Token
func (s *gatewayService) Balance(_ context.Context, l2Token, holder common.Address) (*BalanceResponse, error) {
	var resp *BalanceResponse
	err := s.rt.View(func(txn *l2.Txn) error {
		info, err := token.Describe(txn, l2Token)
		if err != nil {
			return err
		}
		bal := token.BalanceOf(txn, l2Token, holder)
		resp = &BalanceResponse{
			Token:     l2Token,
			Holder:    holder,
			Balance:   bal.String(),
			Formatted: formatUnits(bal, info.Decimals),
		}
		return nil
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	return resp, nil
}

// Messages lists the withdrawals queued for the L1 counterpart
func (s *gatewayService) Messages(ctx context.Context, query *MessagesQuery) ([]*MessageResponse, error) {
	var opts []gatewaystore.QueryOption
	if query != nil {
		if query.Limit > 0 {
			opts = append(opts, gatewaystore.WithLimit(query.Limit))
		}
		if query.L1Token != nil {
			opts = append(opts, gatewaystore.WithL1Token(query.L1Token.Hex()))
		}
		if query.Recipient != nil {
			opts = append(opts, gatewaystore.WithRecipient(query.Recipient.Hex()))
		}
	}

	msgs, err := s.store.ListMessages(ctx, opts...)
	if err != nil {
		return nil, apperrors.DependencyError(fmt.Errorf("failed to list messages: %w", err))
	}

	resp := make([]*MessageResponse, len(msgs))
	for i, m := range msgs {
		resp[i] = toMessageResponse(m)
	}
	return resp, nil
}

// Call looks up a journaled call by id
func (s *gatewayService) Call(ctx context.Context, id uuid.UUID) (*CallRecordResponse, error) {
	c, err := s.store.GetCall(ctx, id)
	if err != nil {
		if errors.Is(err, gatewaystore.ErrCallNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "call not found")
		}
		return nil, apperrors.DependencyError(fmt.Errorf("failed to get call: %w", err))
	}
	return toCallRecordResponse(c), nil
}

// syncExitNum publishes the committed exit counter. Every exit number
// belongs to exactly one queued message.
func (s *gatewayService) syncExitNum() error {
	return s.rt.View(func(txn *l2.Txn) error {
		st, err := gateway.Load(txn, s.cfg.Gateway)
		if err != nil {
			if errors.Is(err, gateway.ErrNotInitialized) {
				return fmt.Errorf("runtime is not bootstrapped: %w", err)
			}
			return err
		}
		if queued := outbox.MessageCount(txn); queued.Cmp(st.ExitNum) != 0 {
			return fmt.Errorf("outbox holds %s messages for exit counter %s", queued, st.ExitNum)
		}
		metrics.ExitNum.Set(bigFloat(st.ExitNum))
		return nil
	})
}

func bigFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
