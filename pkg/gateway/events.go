package gateway

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Token kinds recorded in TokenCreatedEvent.
const (
	KindStandard     = "standard"
	KindIntermediate = "intermediate"
	KindCustom       = "custom"
)

type TokenCreatedEvent struct {
	L1Token common.Address
	L2Token common.Address
	Kind    string
}

func (TokenCreatedEvent) EventName() string { return "TokenCreated" }

// DepositFinalizedEvent records a successful mint. To is the effective recipient, which
// is the sender when the callback attempt failed.
type DepositFinalizedEvent struct {
	DepositID         common.Hash
	L1Token           common.Address
	L2Token           common.Address
	From              common.Address
	To                common.Address
	Amount            *big.Int
	CallHookTriggered bool
}

func (DepositFinalizedEvent) EventName() string { return "DepositFinalized" }

type TransferAndCallTriggeredEvent struct {
	Success      bool
	From         common.Address
	To           common.Address
	Amount       *big.Int
	CallHookData []byte
}

func (TransferAndCallTriggeredEvent) EventName() string { return "TransferAndCallTriggered" }

type DepositRefundedEvent struct {
	DepositID common.Hash
	L1Token   common.Address
	From      common.Address
	Amount    *big.Int
	ExitNum   *big.Int
	Reason    string
}

func (DepositRefundedEvent) EventName() string { return "DepositRefunded" }

type WithdrawalInitiatedEvent struct {
	L1Token common.Address
	Source  common.Address
	To      common.Address
	MsgID   *big.Int
	ExitNum *big.Int
	Amount  *big.Int
}

func (WithdrawalInitiatedEvent) EventName() string { return "WithdrawalInitiated" }

type CustomTokenRegisteredEvent struct {
	L1Token common.Address
	L2Token common.Address
}

func (CustomTokenRegisteredEvent) EventName() string { return "CustomTokenRegistered" }

type TokenMigratedEvent struct {
	L1Token common.Address
	L2Token common.Address
	Account common.Address
	Amount  *big.Int
}

func (TokenMigratedEvent) EventName() string { return "TokenMigrated" }
