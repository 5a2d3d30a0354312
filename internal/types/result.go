package types

import (
	"github.com/moznion/go-optional"
)

type ErrorKind string

const (
	ErrorKindUnsupportedSymbol ErrorKind = "UNSUPPORTED_SYMBOL"
	ErrorKindTransport         ErrorKind = "TRANSPORT"
	ErrorKindRejected          ErrorKind = "REJECTED"
	ErrorKindParseFailure      ErrorKind = "PARSE_FAILURE"
	ErrorKindMalformedPayload  ErrorKind = "MALFORMED_PAYLOAD"
)

// OrderResult is the terminal value returned to every caller of the trading
// pipeline. It is never mutated after construction.
type OrderResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// OrderID is the brokerage-assigned identifier. Present only on success.
	OrderID optional.Option[string] `json:"order_id"`
	// ErrorKind classifies the failure. Present only on failure.
	ErrorKind optional.Option[ErrorKind] `json:"error_kind"`
	// RawDetails carries the brokerage's own fault text for REJECTED results.
	RawDetails optional.Option[string] `json:"raw_details"`
}

// NewSuccessResult builds a successful OrderResult.
func NewSuccessResult(orderID, message string) OrderResult {
	return OrderResult{
		Success:    true,
		Message:    message,
		OrderID:    optional.Some(orderID),
		ErrorKind:  optional.None[ErrorKind](),
		RawDetails: optional.None[string](),
	}
}

// NewFailureResult builds a failed OrderResult without raw details.
func NewFailureResult(kind ErrorKind, message string) OrderResult {
	return OrderResult{
		Success:    false,
		Message:    message,
		OrderID:    optional.None[string](),
		ErrorKind:  optional.Some(kind),
		RawDetails: optional.None[string](),
	}
}

// NewFailureResultWithDetails builds a failed OrderResult carrying the
// brokerage's own fault text.
func NewFailureResultWithDetails(kind ErrorKind, message, rawDetails string) OrderResult {
	return OrderResult{
		Success:    false,
		Message:    message,
		OrderID:    optional.None[string](),
		ErrorKind:  optional.Some(kind),
		RawDetails: optional.Some(rawDetails),
	}
}
