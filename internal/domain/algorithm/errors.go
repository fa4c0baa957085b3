package algorithm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind is the machine-checkable classification of a failed operation.
type ErrorKind string

// Error kinds surfaced by the dispatcher and the crypto engines.
const (
	KindUnsupportedAlgorithm ErrorKind = "unsupported_algorithm"
	KindUnsupportedOperation ErrorKind = "unsupported_operation"
	KindInvalidKeyFormat     ErrorKind = "invalid_key_format"
	KindMessageTooLarge      ErrorKind = "message_too_large"
	KindDecryptionFailed     ErrorKind = "decryption_failed"
	KindKeyExchangeFailed    ErrorKind = "key_exchange_failed"
)

// OperationError carries the error kind alongside a human-readable message
// naming the offending algorithm/operation pair. All operation errors are
// local to a single request and recoverable by retrying with corrected
// inputs.
type OperationError struct {
	Kind      ErrorKind
	Algorithm ID
	Operation Capability
	// Allowed lists the legal capability set when Kind is
	// KindUnsupportedOperation, so callers can self-correct.
	Allowed []Capability
	Message string
	cause   error
}

func (e *OperationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.cause
}

// KindOf extracts the error kind from an error chain, or "" if the error is
// not an OperationError.
func KindOf(err error) ErrorKind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return ""
}

// NewUnsupportedAlgorithm reports an unknown algorithm identifier.
func NewUnsupportedAlgorithm(name string) *OperationError {
	return &OperationError{
		Kind:    KindUnsupportedAlgorithm,
		Message: fmt.Sprintf("unsupported algorithm %q", name),
	}
}

// NewUnsupportedOperation reports a capability-gate rejection. The message
// names the algorithm, the rejected operation and the legal set.
func NewUnsupportedOperation(id ID, op Capability) *OperationError {
	allowed := Capabilities(id)
	names := make([]string, len(allowed))
	for i, c := range allowed {
		names[i] = string(c)
	}
	return &OperationError{
		Kind:      KindUnsupportedOperation,
		Algorithm: id,
		Operation: op,
		Allowed:   allowed,
		Message: fmt.Sprintf("algorithm %s does not support %s; supported operations: %s",
			id, op, strings.Join(names, ", ")),
	}
}

// NewInvalidKeyFormat reports key material that fails structural validation
// before reaching a primitive.
func NewInvalidKeyFormat(id ID, detail string, cause error) *OperationError {
	return &OperationError{
		Kind:      KindInvalidKeyFormat,
		Algorithm: id,
		Message:   fmt.Sprintf("invalid %s key: %s", id, detail),
		cause:     cause,
	}
}

// NewMessageTooLarge reports a plaintext exceeding the RSA/OAEP capacity for
// the selected modulus size.
func NewMessageTooLarge(id ID, size, limit int) *OperationError {
	return &OperationError{
		Kind:      KindMessageTooLarge,
		Algorithm: id,
		Operation: CapEncrypt,
		Message: fmt.Sprintf("message of %d bytes exceeds the %d byte OAEP capacity of %s",
			size, limit, id),
	}
}

// NewDecryptionFailed reports a failed decrypt without leaking which
// sub-check failed.
func NewDecryptionFailed(id ID) *OperationError {
	return &OperationError{
		Kind:      KindDecryptionFailed,
		Algorithm: id,
		Operation: CapDecrypt,
		Message:   fmt.Sprintf("%s decryption failed", id),
	}
}

// NewKeyExchangeFailed reports mismatched curves/families or a malformed
// peer key.
func NewKeyExchangeFailed(id ID, detail string, cause error) *OperationError {
	return &OperationError{
		Kind:      KindKeyExchangeFailed,
		Algorithm: id,
		Operation: CapKeyExchange,
		Message:   fmt.Sprintf("%s key exchange failed: %s", id, detail),
		cause:     cause,
	}
}
