package domain

import "errors"

// Code is a machine-readable error code. Callers branch on codes rather
// than on messages.
type Code string

const (
	CodeDuplicateCampaign  Code = "DUPLICATE_CAMPAIGN"
	CodeInvalidGoal        Code = "INVALID_GOAL"
	CodeInvalidAmount      Code = "INVALID_AMOUNT"
	CodeAmountOverflow     Code = "AMOUNT_OVERFLOW"
	CodeCampaignInactive   Code = "CAMPAIGN_INACTIVE"
	CodeGoalNotReached     Code = "GOAL_NOT_REACHED"
	CodeUnauthorizedAccess Code = "UNAUTHORIZED_ACCESS"
	CodeTransferFailed     Code = "TRANSFER_FAILED"
	CodeRecordNotFound     Code = "RECORD_NOT_FOUND"
	CodeInvalidTitle       Code = "INVALID_TITLE"
	CodeInvalidCampaignID  Code = "INVALID_CAMPAIGN_ID"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeLedgerMismatch     Code = "LEDGER_MISMATCH"
	CodeInvalidRequest     Code = "INVALID_REQUEST"
)

// Error is the domain error type. Two errors match under errors.Is when
// their codes are equal, so wrapped instances still compare equal to the
// package sentinels below.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

var (
	ErrDuplicateCampaign  = New(CodeDuplicateCampaign, "campaign already exists")
	ErrInvalidGoal        = New(CodeInvalidGoal, "goal must be greater than zero")
	ErrInvalidAmount      = New(CodeInvalidAmount, "amount must be greater than zero")
	ErrAmountOverflow     = New(CodeAmountOverflow, "amount overflows the raised total")
	ErrCampaignInactive   = New(CodeCampaignInactive, "the campaign is already inactive")
	ErrGoalNotReached     = New(CodeGoalNotReached, "the fundraising goal has not been reached yet")
	ErrUnauthorizedAccess = New(CodeUnauthorizedAccess, "unauthorized access")
	ErrTransferFailed     = New(CodeTransferFailed, "transfer failed")
	ErrRecordNotFound     = New(CodeRecordNotFound, "campaign not found")
	ErrInvalidTitle       = New(CodeInvalidTitle, "invalid campaign title")
	ErrInvalidCampaignID  = New(CodeInvalidCampaignID, "invalid campaign id")
	ErrUnauthenticated    = New(CodeUnauthenticated, "caller is not authenticated")
	ErrLedgerMismatch     = New(CodeLedgerMismatch, "held balance does not match amount raised")
	ErrInvalidRequest     = New(CodeInvalidRequest, "malformed request")
)

// ErrInsufficientFunds is reported by ledgers when the source account
// cannot cover a transfer. The use case wraps it in ErrTransferFailed.
var ErrInsufficientFunds = errors.New("insufficient funds")

// CodeOf returns the code carried by err, or "" when err is not a
// domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Retryable reports whether repeating the same call could succeed later.
// Only transfer failures qualify: the contributor may top up the account.
func Retryable(err error) bool {
	return errors.Is(err, ErrTransferFailed)
}
