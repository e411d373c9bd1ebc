package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/token-gateway/pkg/app/errors"
	"github.com/chainsafe/token-gateway/pkg/auth"
	"github.com/chainsafe/token-gateway/pkg/gateway/service"
	"github.com/chainsafe/token-gateway/pkg/gateway/service/mocks"
	"github.com/chainsafe/token-gateway/pkg/gatewaystore"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var holderKey = common.FromHex("0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")

var l2Token = common.HexToAddress("0x00000000000000000000000000000000000000c2")

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newTestServer(svc service.Service) (http.Handler, *auth.JWTValidator) {
	jwtv := auth.NewJWTValidator(testSecret, "token-gateway")
	r := chi.NewRouter()
	service.RegisterRoutes(r, svc, jwtv, time.Minute, zap.NewNop())
	return r, jwtv
}

func holderAddress(t *testing.T) common.Address {
	t.Helper()
	priv, err := crypto.ToECDSA(holderKey)
	require.NoError(t, err)
	return crypto.PubkeyToAddress(priv.PublicKey)
}

func bearer(t *testing.T, jwtv *auth.JWTValidator, caller common.Address, role auth.Role) string {
	t.Helper()
	tok, err := jwtv.IssueToken(caller, role, time.Minute)
	require.NoError(t, err)
	return "Bearer " + tok
}

// signature is the header pair of one signed holder request
type signature struct {
	message, sig string
}

func sign(t *testing.T, path string, body []byte) signature {
	t.Helper()
	msg := auth.RequestMessage(http.MethodPost, path, body, auth.NewNonce(), time.Now())
	sig, err := auth.SignEIP191(msg, holderKey)
	require.NoError(t, err)
	return signature{message: msg, sig: sig}
}

func (s signature) request(path string, body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(auth.HeaderMessage, s.message)
	req.Header.Set(auth.HeaderSignature, s.sig)
	return req
}

func signedRequest(t *testing.T, path string, body []byte) *http.Request {
	t.Helper()
	return sign(t, path, body).request(path, body)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestDepositHTTP_RequiresCounterpartRole(t *testing.T) {
	svc := mocks.NewService(t)
	handler, jwtv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/l1/deposits", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/l1/deposits", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", bearer(t, jwtv, operator, auth.RoleOperator))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestDepositHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler, jwtv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/l1/deposits", bytes.NewBufferString("{invalid"))
	req.Header.Set("Authorization", bearer(t, jwtv, counterpart, auth.RoleCounterpart))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "invalid JSON" {
		t.Fatalf("expected error %q, got %q", "invalid JSON", got.Error)
	}
}

func TestDepositHTTP_ResponseCheck(t *testing.T) {
	callID := uuid.New()
	svc := mocks.NewService(t)
	svc.EXPECT().
		FinalizeDeposit(mock.Anything, counterpart, mock.MatchedBy(func(req *service.DepositRequest) bool {
			return req.L1Token == l1Token && req.Amount.Equal(decimal.NewFromInt(7)) && len(req.DeployData) == 2
		})).
		Return(&service.DepositResponse{
			CallID:  callID,
			Outcome: "minted",
			L2Token: l2Token,
		}, nil)
	handler, jwtv := newTestServer(svc)

	body := `{"deposit_id":"` + depositID(1).Hex() + `","l1_token":"` + l1Token.Hex() + `","from":"` + alice.Hex() +
		`","to":"` + alice.Hex() + `","amount":"7","deploy_data":"0xbeef"}`
	req := httptest.NewRequest(http.MethodPost, "/l1/deposits", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearer(t, jwtv, counterpart, auth.RoleCounterpart))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got service.DepositResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, callID, got.CallID)
	require.Equal(t, "minted", got.Outcome)
	require.Equal(t, l2Token, got.L2Token)
}

func TestDepositHTTP_ServiceErrorMapsStatus(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		FinalizeDeposit(mock.Anything, counterpart, mock.Anything).
		Return(nil, apperrors.ConflictError(nil, "deposit already processed"))
	handler, jwtv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/l1/deposits", bytes.NewBufferString(`{"amount":"1"}`))
	req.Header.Set("Authorization", bearer(t, jwtv, counterpart, auth.RoleCounterpart))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
	got := decodeError(t, rec)
	require.Equal(t, "deposit already processed", got.Error)
	require.Equal(t, http.StatusConflict, got.Code)
}

func TestDeployCustomTokenHTTP_OperatorOnly(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		DeployCustomToken(mock.Anything, operator, mock.Anything).
		Return(&service.DeployCustomTokenResponse{CustomToken: l2Token}, nil)
	handler, jwtv := newTestServer(svc)

	body := `{"l1_token":"` + l1Token.Hex() + `","symbol":"CTH"}`
	req := httptest.NewRequest(http.MethodPost, "/operator/custom-tokens", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearer(t, jwtv, counterpart, auth.RoleCounterpart))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/operator/custom-tokens", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearer(t, jwtv, operator, auth.RoleOperator))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterCustomTokenHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		RegisterCustomToken(mock.Anything, counterpart, &service.RegisterCustomTokenRequest{L1Token: l1Token, CustomToken: l2Token}).
		Return(&service.CallResponse{CallID: uuid.New()}, nil)
	handler, jwtv := newTestServer(svc)

	body := `{"l1_token":"` + l1Token.Hex() + `","custom_token":"` + l2Token.Hex() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/l1/custom-tokens", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearer(t, jwtv, counterpart, auth.RoleCounterpart))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWithdrawHTTP_SignedHolder(t *testing.T) {
	holder := holderAddress(t)
	svc := mocks.NewService(t)
	svc.EXPECT().
		Withdraw(mock.Anything, holder, mock.MatchedBy(func(req *service.WithdrawRequest) bool {
			return req.L2Token == l2Token && req.Destination == bob && req.Amount.Equal(decimal.NewFromInt(5)) && req.Nonce != ""
		})).
		Return(&service.WithdrawResponse{WithdrawalID: "12", ExitNum: "3"}, nil)
	handler, _ := newTestServer(svc)

	// the path wins over a token named in the body
	body := []byte(`{"l2_token":"` + alice.Hex() + `","destination":"` + bob.Hex() + `","amount":"5"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, signedRequest(t, "/tokens/"+l2Token.Hex()+"/withdrawals", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got service.WithdrawResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "3", got.ExitNum)
}

func TestWithdrawHTTP_Unsigned(t *testing.T) {
	svc := mocks.NewService(t)
	handler, _ := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/tokens/"+l2Token.Hex()+"/withdrawals", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "signature and message required", decodeError(t, rec).Error)
}

func TestMigrateAndTransferHTTP(t *testing.T) {
	holder := holderAddress(t)
	svc := mocks.NewService(t)
	svc.EXPECT().
		Migrate(mock.Anything, holder, mock.MatchedBy(func(req *service.MigrateRequest) bool {
			return req.L2Token == l2Token
		})).
		Return(&service.CallResponse{}, nil)
	svc.EXPECT().
		Transfer(mock.Anything, holder, mock.MatchedBy(func(req *service.TransferRequest) bool {
			return req.L2Token == l2Token && req.To == bob
		})).
		Return(&service.CallResponse{}, nil)
	handler, _ := newTestServer(svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, signedRequest(t, "/tokens/"+l2Token.Hex()+"/migrations", []byte(`{"amount":"1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, signedRequest(t, "/tokens/"+l2Token.Hex()+"/transfers", []byte(`{"to":"`+bob.Hex()+`","amount":"1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTransferHTTP_ReplayedSignatureRejected(t *testing.T) {
	ctx := context.Background()
	holder := holderAddress(t)
	svc := newService(t, gatewaystore.NewMemoryStore())
	dep, err := svc.FinalizeDeposit(ctx, counterpart, &service.DepositRequest{
		DepositID:  depositID(1),
		L1Token:    l1Token,
		From:       holder,
		To:         holder,
		Amount:     decimal.NewFromInt(100),
		DeployData: deployData(t),
	})
	require.NoError(t, err)
	handler, _ := newTestServer(svc)

	path := "/tokens/" + dep.L2Token.Hex() + "/transfers"
	body := []byte(`{"to":"` + bob.Hex() + `","amount":"30"}`)
	signed := sign(t, path, body)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, signed.request(path, body))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	for range 2 {
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, signed.request(path, body))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "request nonce already used", decodeError(t, rec).Error)
	}

	bal, err := svc.Balance(ctx, dep.L2Token, bob)
	require.NoError(t, err)
	require.Equal(t, "30", bal.Balance)

	// the same body under a fresh nonce is a new request
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, signedRequest(t, path, body))
	require.Equal(t, http.StatusOK, rec.Code)

	bal, err = svc.Balance(ctx, dep.L2Token, bob)
	require.NoError(t, err)
	require.Equal(t, "60", bal.Balance)
}

func TestReadEndpointsHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Addresses(mock.Anything, l1Token).Return(&service.AddressesResponse{L1Token: l1Token, Standard: l2Token}, nil)
	svc.EXPECT().TokenInfo(mock.Anything, l2Token).Return(&service.TokenResponse{Address: l2Token, Symbol: "WTH"}, nil)
	svc.EXPECT().Balance(mock.Anything, l2Token, bob).Return(&service.BalanceResponse{Balance: "9"}, nil)
	handler, _ := newTestServer(svc)

	tests := []struct {
		path string
		want string
	}{
		{"/addresses/" + l1Token.Hex(), `"standard":"` + l2Token.Hex() + `"`},
		{"/tokens/" + l2Token.Hex(), `"symbol":"WTH"`},
		{"/tokens/" + l2Token.Hex() + "/balances/" + bob.Hex(), `"balance":"9"`},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestCallHTTP(t *testing.T) {
	id := uuid.New()
	svc := mocks.NewService(t)
	svc.EXPECT().Call(mock.Anything, id).Return(&service.CallRecordResponse{Seq: 7, CallID: id, Op: service.OpTransfer}, nil)
	handler, _ := newTestServer(svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calls/"+id.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got service.CallRecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(7), got.Seq)
	require.Equal(t, service.OpTransfer, got.Op)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calls/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid call id", decodeError(t, rec).Error)
}

func TestReadEndpointsHTTP_InvalidAddress(t *testing.T) {
	svc := mocks.NewService(t)
	handler, _ := newTestServer(svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/addresses/0x1234", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid l1Token", decodeError(t, rec).Error)
}

func TestMessagesHTTP_Query(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Messages(mock.Anything, &service.MessagesQuery{Limit: 10, Recipient: &bob}).
		Return([]*service.MessageResponse{{MsgID: "1", ExitNum: "0", Recipient: bob}}, nil)
	handler, _ := newTestServer(svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/l1/messages?limit=10&recipient="+bob.Hex(), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*service.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].MsgID)

	for _, q := range []string{"limit=0", "limit=abc", "limit=100000", "l1_token=nope"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/l1/messages?"+q, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}
