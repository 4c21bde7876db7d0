package constants

// SATIM REST endpoints, relative to the configured api base url.
const (
	EndpointRegister = "/register.do"
	EndpointConfirm  = "/confirmOrder.do"
	EndpointRefund   = "/refund.do"
)

// OrderStatus values as returned in the OrderStatus field.
const (
	OrderStatusRegistered    = "0"
	OrderStatusPreAuthorized = "1"
	OrderStatusDeposited     = "2"
	OrderStatusReversed      = "3"
	OrderStatusRefunded      = "4"
	OrderStatusACSInitiated  = "5"
	OrderStatusDeclined      = "6"
)

// ErrorCode values. "2" on confirm means the order was confirmed before, not a failure.
const (
	ErrorCodeSuccess          = "0"
	ErrorCodeAlreadyConfirmed = "2"
	ErrorCodeNotConfirmed     = "3"
)

const (
	ActionCodeApproved           = "0"
	ActionCodeInsufficientFunds  = "116"
	ActionCodeTemporarilyBlocked = "203"
)

// RespCode values carried in params.respCode.
const (
	RespCodeApproved          = "00"
	RespCodeRestrictedCard    = "37"
	RespCodeInsufficientFunds = "51"
)

// CardOutcome is a full (errorCode, actionCode, respCode) tuple. Codes are
// reused across unrelated outcomes so only the whole tuple identifies one.
type CardOutcome struct {
	ErrorCode  string
	ActionCode string
	RespCode   string
}

// Only the temporarily blocked tuple is pinned by observed gateway replies.
// Valid and balance insufficient follow the BPC/SATIM code table
// (actionCode 0 / respCode 00, actionCode 116 / respCode 51).
var (
	CardOutcomeValid               = CardOutcome{ErrorCodeSuccess, ActionCodeApproved, RespCodeApproved}
	CardOutcomeTemporarilyBlocked  = CardOutcome{ErrorCodeNotConfirmed, ActionCodeTemporarilyBlocked, RespCodeRestrictedCard}
	CardOutcomeBalanceInsufficient = CardOutcome{ErrorCodeNotConfirmed, ActionCodeInsufficientFunds, RespCodeInsufficientFunds}
)
