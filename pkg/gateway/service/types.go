package service

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chainsafe/token-gateway/pkg/gateway"
	"github.com/chainsafe/token-gateway/pkg/gatewaystore"
	"github.com/chainsafe/token-gateway/pkg/token"
)

// DepositRequest is a deposit notification delivered by the L1 counterpart.
// Amount is in base units.
type DepositRequest struct {
	DepositID    common.Hash     `json:"deposit_id"`
	L1Token      common.Address  `json:"l1_token"`
	From         common.Address  `json:"from"`
	To           common.Address  `json:"to"`
	Amount       decimal.Decimal `json:"amount"`
	DeployData   hexutil.Bytes   `json:"deploy_data,omitempty"`
	CallHookData hexutil.Bytes   `json:"call_hook_data,omitempty"`
}

// DepositResponse reports how a deposit settled
type DepositResponse struct {
	CallID            uuid.UUID      `json:"call_id"`
	Outcome           string         `json:"outcome"`
	L2Token           common.Address `json:"l2_token"`
	Recipient         common.Address `json:"recipient"`
	Deployed          bool           `json:"deployed"`
	CallHookTriggered bool           `json:"call_hook_triggered"`
	RefundReason      string         `json:"refund_reason,omitempty"`
	WithdrawalID      string         `json:"withdrawal_id,omitempty"`
	ExitNum           string         `json:"exit_num,omitempty"`
	GasUsed           uint64         `json:"gas_used"`
}

// RegisterCustomTokenRequest binds an L1 asset to a custom L2 token
type RegisterCustomTokenRequest struct {
	L1Token     common.Address `json:"l1_token"`
	CustomToken common.Address `json:"custom_token"`
}

// DeployCustomTokenRequest asks the gateway to deploy a custom token instance
type DeployCustomTokenRequest struct {
	L1Token  common.Address `json:"l1_token"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Decimals *uint8         `json:"decimals,omitempty"`
}

func (r *DeployCustomTokenRequest) metadata() token.Metadata {
	md := token.DefaultMetadata()
	if r.Name != "" {
		md.Name = r.Name
	}
	if r.Symbol != "" {
		md.Symbol = r.Symbol
	}
	if r.Decimals != nil {
		md.Decimals = *r.Decimals
	}
	return md
}

// DeployCustomTokenResponse carries the new instance address
type DeployCustomTokenResponse struct {
	CallID      uuid.UUID      `json:"call_id"`
	CustomToken common.Address `json:"custom_token"`
}

// WithdrawRequest burns holder balance on L2Token and queues the release on L1
type WithdrawRequest struct {
	L2Token     common.Address  `json:"l2_token"`
	Destination common.Address  `json:"destination"`
	Amount      decimal.Decimal `json:"amount"`
	// Nonce is the single-use nonce the holder signed, if any
	Nonce       string          `json:"nonce,omitempty"`
}

// WithdrawResponse identifies the queued L1 message
type WithdrawResponse struct {
	CallID       uuid.UUID `json:"call_id"`
	WithdrawalID string    `json:"withdrawal_id"`
	ExitNum      string    `json:"exit_num"`
}

// MigrateRequest moves holder balance from the intermediate token to the custom token
type MigrateRequest struct {
	L2Token common.Address  `json:"l2_token"`
	Amount  decimal.Decimal `json:"amount"`
	Nonce   string          `json:"nonce,omitempty"`
}

// TransferRequest moves holder balance on L2Token
type TransferRequest struct {
	L2Token common.Address  `json:"l2_token"`
	To      common.Address  `json:"to"`
	Amount  decimal.Decimal `json:"amount"`
	Nonce   string          `json:"nonce,omitempty"`
}

// CallResponse acknowledges a journaled call without a richer result
type CallResponse struct {
	CallID uuid.UUID `json:"call_id"`
}

// AddressesResponse lists every L2 representation of an L1 asset
type AddressesResponse struct {
	L1Token              common.Address  `json:"l1_token"`
	Standard             common.Address  `json:"standard"`
	StandardDeployed     bool            `json:"standard_deployed"`
	Intermediate         common.Address  `json:"intermediate"`
	IntermediateDeployed bool            `json:"intermediate_deployed"`
	Custom               *common.Address `json:"custom,omitempty"`
	CustomDeployed       bool            `json:"custom_deployed"`
}

func toAddressesResponse(a *gateway.Addresses) *AddressesResponse {
	resp := &AddressesResponse{
		L1Token:              a.L1Token,
		Standard:             a.Standard,
		StandardDeployed:     a.StandardDeployed,
		Intermediate:         a.Intermediate,
		IntermediateDeployed: a.IntermediateDeployed,
		CustomDeployed:       a.CustomDeployed,
	}
	if a.Custom != (common.Address{}) {
		custom := a.Custom
		resp.Custom = &custom
	}
	return resp
}

// TokenResponse describes a token instance
type TokenResponse struct {
	Address     common.Address `json:"address"`
	L1Token     common.Address `json:"l1_token"`
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	Decimals    uint8          `json:"decimals"`
	TotalSupply string         `json:"total_supply"`
	// TotalSupplyFormatted is scaled by Decimals
	TotalSupplyFormatted string `json:"total_supply_formatted"`
	// Holders counts accounts with a non-zero balance
	Holders int `json:"holders"`
}

func toTokenResponse(info *token.Info, holders int) *TokenResponse {
	return &TokenResponse{
		Address:              info.Address,
		L1Token:              info.L1Address,
		Kind:                 info.Kind,
		Name:                 info.Name,
		Symbol:               info.Symbol,
		Decimals:             info.Decimals,
		TotalSupply:          info.TotalSupply.String(),
		TotalSupplyFormatted: formatUnits(info.TotalSupply, info.Decimals),
		Holders:              holders,
	}
}

// BalanceResponse is a holder balance on one instance
type BalanceResponse struct {
	Token     common.Address `json:"token"`
	Holder    common.Address `json:"holder"`
	Balance   string         `json:"balance"`
	Formatted string         `json:"formatted"`
}

// CallRecordResponse is one journaled call with the messages and events it produced
type CallRecordResponse struct {
	Seq       int64              `json:"seq"`
	CallID    uuid.UUID          `json:"call_id"`
	Op        string             `json:"op"`
	Caller    common.Address     `json:"caller"`
	Args      json.RawMessage    `json:"args"`
	GasUsed   uint64             `json:"gas_used"`
	CreatedAt time.Time          `json:"created_at"`
	Messages  []*MessageResponse `json:"messages"`
	Events    []*EventResponse   `json:"events"`
}

// EventResponse is a log emitted by a journaled call
type EventResponse struct {
	LogIndex int             `json:"log_index"`
	Address  common.Address  `json:"address"`
	Name     string          `json:"name"`
	Payload  json.RawMessage `json:"payload"`
}

func toCallRecordResponse(c *gatewaystore.Call) *CallRecordResponse {
	resp := &CallRecordResponse{
		Seq:       c.Seq,
		CallID:    c.ID,
		Op:        c.Op,
		Caller:    common.HexToAddress(c.Caller),
		Args:      c.Args,
		GasUsed:   c.GasUsed,
		CreatedAt: c.CreatedAt,
		Messages:  make([]*MessageResponse, len(c.Messages)),
		Events:    make([]*EventResponse, len(c.Events)),
	}
	for i, m := range c.Messages {
		resp.Messages[i] = toMessageResponse(m)
	}
	for i, e := range c.Events {
		resp.Events[i] = &EventResponse{
			LogIndex: e.LogIndex,
			Address:  common.HexToAddress(e.Address),
			Name:     e.Name,
			Payload:  e.Payload,
		}
	}
	return resp
}

// MessagesQuery filters outbound L1 messages
type MessagesQuery struct {
	Limit     int
	L1Token   *common.Address
	Recipient *common.Address
}

// MessageResponse is a queued withdrawal for the L1 counterpart
type MessageResponse struct {
	MsgID       string         `json:"msg_id"`
	ExitNum     string         `json:"exit_num"`
	Sender      common.Address `json:"sender"`
	Destination common.Address `json:"destination"`
	L1Token     common.Address `json:"l1_token"`
	Recipient   common.Address `json:"recipient"`
	Amount      string         `json:"amount"`
	Data        hexutil.Bytes  `json:"data"`
}

func toMessageResponse(m *gatewaystore.Message) *MessageResponse {
	return &MessageResponse{
		MsgID:       m.MsgID,
		ExitNum:     m.ExitNum,
		Sender:      common.HexToAddress(m.Sender),
		Destination: common.HexToAddress(m.Destination),
		L1Token:     common.HexToAddress(m.L1Token),
		Recipient:   common.HexToAddress(m.Recipient),
		Amount:      m.Amount,
		Data:        m.Data,
	}
}

// formatUnits renders base units with the token's decimals
func formatUnits(v *big.Int, decimals uint8) string {
	return decimal.NewFromBigInt(v, -int32(decimals)).String()
}

// baseUnits converts a request amount to base units. Fractions, non-positive
// values and values wider than a uint256 are rejected.
func baseUnits(amount decimal.Decimal) (*big.Int, bool) {
	if !amount.IsInteger() || amount.Sign() <= 0 {
		return nil, false
	}
	units := amount.BigInt()
	if !token.ValidAmount(units) {
		return nil, false
	}
	return units, true
}
