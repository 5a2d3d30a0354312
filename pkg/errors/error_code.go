package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidIntent        ErrorCode = 102

	// Resolution errors (200-299)
	ErrCodeUnsupportedSymbol ErrorCode = 200

	// Transport errors (300-399)
	ErrCodeTransport        ErrorCode = 300
	ErrCodeConnectionFailed ErrorCode = 301

	// Brokerage errors (400-499)
	ErrCodeOrderRejected ErrorCode = 400
	ErrCodeParseFailure  ErrorCode = 401
	ErrCodeQuoteFailed   ErrorCode = 402

	// Ingestion errors (500-599)
	ErrCodeMalformedPayload ErrorCode = 500
	ErrCodeSystemNotReady   ErrorCode = 501
)
