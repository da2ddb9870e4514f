package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)

	// Details carries client-visible side values such as a shortfall.
	Details map[string]string `json:"details,omitempty"`
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

// Is matches another *AppError by code, so errors.Is(err, ErrOutOfStock(""))
// works regardless of the message text.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail attaches a client-visible key/value and returns the same error.
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
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

// Vending codes. Kept as constants because the machine outcome kinds map onto them.
const (
	CodeUnknownDrink        = "VND_001"
	CodeOutOfStock          = "VND_002"
	CodeInvalidAmount       = "VND_003"
	CodeNoSelection         = "VND_004"
	CodeInsufficientBalance = "VND_005"
	CodeDispenseFailure     = "VND_006"
	CodeNothingToReturn     = "VND_007"
	CodeInvalidQuantity     = "VND_008"
	CodeNotFound            = "VND_009"
)

// ---- Vending Machine (VND) ----

func ErrUnknownDrink(message string) *AppError {
	return New(CodeUnknownDrink, message, http.StatusNotFound)
}

func ErrOutOfStock(message string) *AppError {
	return New(CodeOutOfStock, message, http.StatusConflict)
}

func ErrInvalidAmount(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}

func ErrNoSelection(message string) *AppError {
	return New(CodeNoSelection, message, http.StatusConflict)
}

func ErrInsufficientBalance(message string) *AppError {
	return New(CodeInsufficientBalance, message, http.StatusPaymentRequired)
}

func ErrDispenseFailure(message string) *AppError {
	return New(CodeDispenseFailure, message, http.StatusInternalServerError)
}

func ErrNothingToReturn(message string) *AppError {
	return New(CodeNothingToReturn, message, http.StatusConflict)
}

func ErrInvalidQuantity(message string) *AppError {
	return New(CodeInvalidQuantity, message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
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

// ErrBodyTooLarge rejects a request whose body exceeds the server limit.
func ErrBodyTooLarge() *AppError {
	return New("REQ_002", "Request body too large", http.StatusRequestEntityTooLarge)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
