package dto

import "net/http"

// Error codes surfaced by the API. Domain error codes pass through
// unchanged so clients can match on them.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when creating a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "INVALID_STATE"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	// ErrCodeOutOfStock is used when the voucher pool for a product is empty
	ErrCodeOutOfStock = "OUT_OF_STOCK"
	// ErrCodeIllegalStatusTransition is used when an order status change is off the graph
	ErrCodeIllegalStatusTransition = "ILLEGAL_STATUS_TRANSITION"
	// ErrCodeDuplicateVoucherCode is used when a voucher code is already taken for a product
	ErrCodeDuplicateVoucherCode = "DUPLICATE_VOUCHER_CODE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidState: http.StatusUnprocessableEntity,

	// Contention over a shared pool or a taken code -> 409 Conflict
	ErrCodeOutOfStock:           http.StatusConflict,
	ErrCodeDuplicateVoucherCode: http.StatusConflict,

	// The request is well-formed but the ledger forbids it -> 422
	ErrCodeIllegalStatusTransition: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 422: they come from domain validation, not from
// server faults.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
