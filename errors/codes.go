package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors: the call itself was malformed.
const (
	// ErrCodeInvalidInput indicates an argument has an unsupported value or shape.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingArgument indicates a required argument was not provided.
	ErrCodeMissingArgument ErrorCode = "MISSING_ARGUMENT"
	// ErrCodeUnsupportedType indicates an argument of a type the library
	// does not accept.
	ErrCodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
)

// Payload errors: the call was well-formed but the payload fails
// schema-level validation.
const (
	// ErrCodeInvalidPayload indicates the payload failed required-field
	// validation.
	ErrCodeInvalidPayload ErrorCode = "INVALID_PAYLOAD"
	// ErrCodeMissingField indicates a required payload field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a payload field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates the client configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
