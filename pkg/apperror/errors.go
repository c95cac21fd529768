package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Wallet Business Logic (WAL) ----

const (
	CodeInsufficientBalance = "WAL_001"
	CodeInvalidAmount       = "WAL_002"
	CodeInvalidCurrency     = "WAL_003"
	CodeTransferInProgress  = "WAL_004"
	CodeValidation          = "WAL_005"
)

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidCurrency(currency string) *AppError {
	return New(CodeInvalidCurrency, fmt.Sprintf("Invalid currency code %q", currency), http.StatusBadRequest)
}

func ErrTransferInProgress() *AppError {
	return New(CodeTransferInProgress, "Transfer with this reference is already in progress", http.StatusConflict)
}

// Validation returns a WAL_005 input validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Remote Ledger (LED) ----

const (
	CodeLedgerUnavailable = "LED_001"
	CodeLedgerRejected    = "LED_002"
	CodeLedgerMalformed   = "LED_003"
)

func ErrLedgerUnavailable(err error) *AppError {
	return Wrap(CodeLedgerUnavailable, "Ledger service unavailable", http.StatusBadGateway, err)
}

func ErrLedgerRejected(status int) *AppError {
	return New(CodeLedgerRejected, fmt.Sprintf("Ledger service rejected request with status %d", status), http.StatusBadGateway)
}

func ErrLedgerMalformed(err error) *AppError {
	return Wrap(CodeLedgerMalformed, "Malformed ledger response", http.StatusBadGateway, err)
}

// ---- Keys (KEY) ----

func ErrKeyFailure(err error) *AppError {
	return Wrap("KEY_001", "Key operation failed", http.StatusInternalServerError, err)
}

func ErrInvalidPassphrase() *AppError {
	return New("KEY_002", "Invalid passphrase or corrupted key", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidOperatorKey() *AppError {
	return New("AUTH_001", "Invalid operator key", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
