package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/token-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/token-gateway/pkg/app/http"
	"github.com/chainsafe/token-gateway/pkg/auth"
)

// maxMessagesLimit caps a single page of L1 messages
const maxMessagesLimit = 1000

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the gateway endpoints on the given chi router.
// Counterpart and operator calls need a bearer token carrying the matching
// role, holder calls need an EIP-191 signed request no older than sigTTL.
func RegisterRoutes(r chi.Router, service Service, jwtv *auth.JWTValidator, sigTTL time.Duration, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(jwtv, auth.RoleCounterpart))
		r.Post("/l1/deposits", apphttp.HandleError(h.finalizeDeposit))
		r.Post("/l1/custom-tokens", apphttp.HandleError(h.registerCustomToken))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(jwtv, auth.RoleOperator))
		r.Post("/operator/custom-tokens", apphttp.HandleError(h.deployCustomToken))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSignature(sigTTL))
		r.Post("/tokens/{l2Token}/withdrawals", apphttp.HandleError(h.withdraw))
		r.Post("/tokens/{l2Token}/migrations", apphttp.HandleError(h.migrate))
		r.Post("/tokens/{l2Token}/transfers", apphttp.HandleError(h.transfer))
	})

	r.Get("/addresses/{l1Token}", apphttp.HandleError(h.addresses))
	r.Get("/tokens/{l2Token}", apphttp.HandleError(h.tokenInfo))
	r.Get("/tokens/{l2Token}/balances/{holder}", apphttp.HandleError(h.balance))
	r.Get("/l1/messages", apphttp.HandleError(h.messages))
	r.Get("/calls/{callID}", apphttp.HandleError(h.call))
}

func (h *HTTP) finalizeDeposit(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req DepositRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.FinalizeDeposit(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) registerCustomToken(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req RegisterCustomTokenRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.RegisterCustomToken(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) deployCustomToken(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req DeployCustomTokenRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.DeployCustomToken(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) withdraw(w http.ResponseWriter, r *http.Request) error {
	holder, nonce, err := signerFrom(r)
	if err != nil {
		return err
	}
	l2Token, err := addressParam(r, "l2Token")
	if err != nil {
		return err
	}
	var req WithdrawRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	req.L2Token = l2Token
	req.Nonce = nonce

	resp, err := h.service.Withdraw(r.Context(), holder, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) migrate(w http.ResponseWriter, r *http.Request) error {
	holder, nonce, err := signerFrom(r)
	if err != nil {
		return err
	}
	l2Token, err := addressParam(r, "l2Token")
	if err != nil {
		return err
	}
	var req MigrateRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	req.L2Token = l2Token
	req.Nonce = nonce

	resp, err := h.service.Migrate(r.Context(), holder, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) transfer(w http.ResponseWriter, r *http.Request) error {
	holder, nonce, err := signerFrom(r)
	if err != nil {
		return err
	}
	l2Token, err := addressParam(r, "l2Token")
	if err != nil {
		return err
	}
	var req TransferRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	req.L2Token = l2Token
	req.Nonce = nonce

	resp, err := h.service.Transfer(r.Context(), holder, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) addresses(w http.ResponseWriter, r *http.Request) error {
	l1Token, err := addressParam(r, "l1Token")
	if err != nil {
		return err
	}

	resp, err := h.service.Addresses(r.Context(), l1Token)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) tokenInfo(w http.ResponseWriter, r *http.Request) error {
	l2Token, err := addressParam(r, "l2Token")
	if err != nil {
		return err
	}

	resp, err := h.service.TokenInfo(r.Context(), l2Token)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) balance(w http.ResponseWriter, r *http.Request) error {
	l2Token, err := addressParam(r, "l2Token")
	if err != nil {
		return err
	}
	holder, err := addressParam(r, "holder")
	if err != nil {
		return err
	}

	resp, err := h.service.Balance(r.Context(), l2Token, holder)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) messages(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	query := &MessagesQuery{}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 || limit > maxMessagesLimit {
			return apperrors.BadRequestError(err, "invalid limit")
		}
		query.Limit = limit
	}
	if v := q.Get("l1_token"); v != "" {
		addr, err := parseAddress(v, "invalid l1_token")
		if err != nil {
			return err
		}
		query.L1Token = &addr
	}
	if v := q.Get("recipient"); v != "" {
		addr, err := parseAddress(v, "invalid recipient")
		if err != nil {
			return err
		}
		query.Recipient = &addr
	}

	resp, err := h.service.Messages(r.Context(), query)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) call(w http.ResponseWriter, r *http.Request) error {
	id, err := uuid.Parse(chi.URLParam(r, "callID"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid call id")
	}

	resp, err := h.service.Call(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func callerFrom(r *http.Request) (common.Address, error) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		return common.Address{}, apperrors.UnAuthorizedError(nil, "caller not authenticated")
	}
	return caller, nil
}

// signerFrom returns the holder and the nonce of a signed request
func signerFrom(r *http.Request) (common.Address, string, error) {
	holder, err := callerFrom(r)
	if err != nil {
		return common.Address{}, "", err
	}
	nonce, ok := auth.NonceFromContext(r.Context())
	if !ok || nonce == "" {
		return common.Address{}, "", apperrors.UnAuthorizedError(nil, "request nonce required")
	}
	return holder, nonce, nil
}

func addressParam(r *http.Request, name string) (common.Address, error) {
	return parseAddress(chi.URLParam(r, name), "invalid "+name)
}

func parseAddress(s, message string) (common.Address, error) {
	if !auth.ValidateEVMAddress(s) {
		return common.Address{}, apperrors.BadRequestError(nil, message)
	}
	return common.HexToAddress(s), nil
}
