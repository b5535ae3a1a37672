package dto

import "time"

// Error codes carried in Envelope.Error.Code.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeUserExists    = "USER_EXISTS"
	CodeConflict      = "CONFLICT"
	CodeOutOfStock    = "OUT_OF_STOCK"
	CodePriceMismatch = "PRICE_MISMATCH"
	CodeRateLimited   = "RATE_LIMITED"
	CodeInternal      = "INTERNAL_ERROR"
)

// Envelope is the shape of every API response.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func Success(message string, data interface{}) Envelope {
	return Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	}
}

func ErrorResponse(code, message string, details interface{}) Envelope {
	return Envelope{
		Success:   false,
		Message:   message,
		Error:     &ErrorBody{Code: code, Details: details},
		Timestamp: now(),
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
