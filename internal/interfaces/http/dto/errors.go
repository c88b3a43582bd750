package dto

import (
	"net/http"

	"github.com/finstatements/backend/internal/domain/shared"
)

// Error codes of the RPC layer. The first group mirrors the domain categories.
const (
	ErrCodeValidation   = shared.CodeValidation
	ErrCodeBadRequest   = shared.CodeBadRequest
	ErrCodeConflict     = shared.CodeConflict
	ErrCodeUnauthorized = shared.CodeUnauthorized
	ErrCodeForbidden    = shared.CodeForbidden
	ErrCodeNotFound     = shared.CodeNotFound
	ErrCodeInternal     = shared.CodeInternal

	ErrCodeParse             = "PARSE_ERROR"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_SUPPORTED"
	ErrCodeProcedureNotFound = "PROCEDURE_NOT_FOUND"
	ErrCodePayloadTooLarge   = "PAYLOAD_TOO_LARGE"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeInternal:     http.StatusInternalServerError,

	ErrCodeParse:             http.StatusBadRequest,
	ErrCodeMethodNotAllowed:  http.StatusMethodNotAllowed,
	ErrCodeProcedureNotFound: http.StatusNotFound,
	ErrCodePayloadTooLarge:   http.StatusRequestEntityTooLarge,
	ErrCodeTooManyRequests:   http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status for an error code, 500 when unknown
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
