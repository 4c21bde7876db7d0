package satim

import (
	"satim-gateway/domain/constants"
)

// Params is the normalized params bag of confirm and refund responses.
// All three keys always exist; absent upstream keys are nil.
type Params struct {
	RespCode     *string `json:"respCode"`
	RespCodeDesc *string `json:"respCode_desc"`
	Udf1         *string `json:"udf1"`
}

func decodeParams(p payload) Params {
	return Params{
		RespCode:     p.str("respCode"),
		RespCodeDesc: p.str("respCode_desc"),
		Udf1:         p.str("udf1"),
	}
}

// Map returns the bag keyed by upstream names, always with exactly three keys.
func (p Params) Map() map[string]*string {
	return map[string]*string{
		"respCode":      p.RespCode,
		"respCode_desc": p.RespCodeDesc,
		"udf1":          p.Udf1,
	}
}

// StatusFields carries the classification fields shared by confirm and
// refund responses. All predicates are pure functions of these fields.
type StatusFields struct {
	OrderStatus           *string `json:"orderStatus"`
	ActionCode            *string `json:"actionCode"`
	ActionCodeDescription *string `json:"actionCodeDescription"`
	ErrorCode             *string `json:"errorCode"`
	ErrorMessage          *string `json:"errorMessage"`
	Params                Params  `json:"params"`
}

func decodeStatusFields(p payload) StatusFields {
	return StatusFields{
		OrderStatus:           p.str("OrderStatus", "orderStatus"),
		ActionCode:            p.str("actionCode", "ActionCode"),
		ActionCodeDescription: p.str("actionCodeDescription", "ActionCodeDescription"),
		ErrorCode:             p.str("ErrorCode", "errorCode"),
		ErrorMessage:          p.str("ErrorMessage", "errorMessage"),
		Params:                decodeParams(p.object("params")),
	}
}

func is(field *string, value string) bool {
	return field != nil && *field == value
}

func nonEmpty(field *string) *string {
	if field == nil || *field == "" {
		return nil
	}
	return field
}

func (s StatusFields) RegisteredPayment() bool {
	return s.ErrorMessage == nil && is(s.ErrorCode, constants.ErrorCodeSuccess)
}

func (s StatusFields) AlreadyConfirmed() bool {
	return is(s.Params.RespCode, constants.RespCodeApproved) &&
		is(s.ErrorCode, constants.ErrorCodeAlreadyConfirmed) &&
		is(s.OrderStatus, constants.OrderStatusDeposited) &&
		is(s.ActionCode, constants.ActionCodeApproved)
}

func (s StatusFields) AcceptedPayment() bool {
	return is(s.Params.RespCode, constants.RespCodeApproved) &&
		is(s.ErrorCode, constants.ErrorCodeSuccess) &&
		is(s.OrderStatus, constants.OrderStatusDeposited)
}

func (s StatusFields) RejectedPayment() bool {
	return is(s.Params.RespCode, constants.RespCodeApproved) &&
		is(s.ErrorCode, constants.ErrorCodeSuccess) &&
		is(s.OrderStatus, constants.OrderStatusReversed)
}

func (s StatusFields) Refunded() bool {
	return is(s.OrderStatus, constants.OrderStatusRefunded)
}

func (s StatusFields) PaymentRegistered() bool { return s.RegisteredPayment() }
func (s StatusFields) PaymentAccepted() bool   { return s.AcceptedPayment() }
func (s StatusFields) PaymentRejected() bool   { return s.RejectedPayment() }
func (s StatusFields) PaymentRefunded() bool   { return s.Refunded() }

// PaymentCancelled reports an authorization reversed on the SATIM side. It only
// reads orderStatus; use RejectedPayment to also require errorCode "0" and
// respCode "00".
func (s StatusFields) PaymentCancelled() bool {
	return is(s.OrderStatus, constants.OrderStatusReversed)
}

func (s StatusFields) PaymentDeclined() bool {
	return is(s.OrderStatus, constants.OrderStatusDeclined)
}

// Successful means the money is captured, whether by this call or an earlier one.
func (s StatusFields) Successful() bool {
	return s.AcceptedPayment() || s.AlreadyConfirmed()
}

// Fail is only true for unsuccessful responses carrying a non-zero error code.
func (s StatusFields) Fail() bool {
	return !s.Successful() && nonEmpty(s.ErrorCode) != nil && *s.ErrorCode != constants.ErrorCodeSuccess
}

func (s StatusFields) matches(outcome constants.CardOutcome) bool {
	return is(s.ErrorCode, outcome.ErrorCode) &&
		is(s.ActionCode, outcome.ActionCode) &&
		is(s.Params.RespCode, outcome.RespCode)
}

func (s StatusFields) CardValid() bool {
	return s.matches(constants.CardOutcomeValid)
}

func (s StatusFields) CardTemporarilyBlocked() bool {
	return s.matches(constants.CardOutcomeTemporarilyBlocked)
}

func (s StatusFields) CardBalanceInsufficient() bool {
	return s.matches(constants.CardOutcomeBalanceInsufficient)
}

// ResolvedErrorMessage prefers the card network description over the raw message.
func (s StatusFields) ResolvedErrorMessage() *string {
	if desc := nonEmpty(s.Params.RespCodeDesc); desc != nil {
		return desc
	}
	return nonEmpty(s.ErrorMessage)
}

func (s StatusFields) SuccessMessage() *string {
	if desc := nonEmpty(s.Params.RespCodeDesc); desc != nil {
		return desc
	}
	return nonEmpty(s.ActionCodeDescription)
}

// ResolvedErrorCode prefers params.respCode over the top level error code.
func (s StatusFields) ResolvedErrorCode() *string {
	if code := nonEmpty(s.Params.RespCode); code != nil {
		return code
	}
	return nonEmpty(s.ErrorCode)
}

// Outcome names the first matching state, for logs and reporting.
func (s StatusFields) Outcome() string {
	switch {
	case s.AcceptedPayment():
		return "accepted"
	case s.AlreadyConfirmed():
		return "already_confirmed"
	case s.RejectedPayment():
		return "rejected"
	case s.Refunded():
		return "refunded"
	case s.CardTemporarilyBlocked():
		return "card_temporarily_blocked"
	case s.CardBalanceInsufficient():
		return "card_balance_insufficient"
	case s.Fail():
		return "failed"
	default:
		return "unknown"
	}
}
