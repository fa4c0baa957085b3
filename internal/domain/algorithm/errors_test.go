//go:build unit
// +build unit

package algorithm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Run("OperationError", func(t *testing.T) {
		err := NewDecryptionFailed(RSA2048)
		assert.Equal(t, KindDecryptionFailed, KindOf(err))
	})

	t.Run("WrappedOperationError", func(t *testing.T) {
		err := fmt.Errorf("request failed: %w", NewMessageTooLarge(RSA2048, 500, 190))
		assert.Equal(t, KindMessageTooLarge, KindOf(err))
	})

	t.Run("PlainError", func(t *testing.T) {
		assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, ErrorKind(""), KindOf(nil))
	})
}

func TestNewUnsupportedOperation(t *testing.T) {
	err := NewUnsupportedOperation(Ed25519, CapEncrypt)
	assert.Equal(t, KindUnsupportedOperation, err.Kind)
	assert.Equal(t, Ed25519, err.Algorithm)
	assert.Equal(t, CapEncrypt, err.Operation)
	assert.Equal(t, []Capability{CapSign, CapVerify}, err.Allowed)
	assert.Contains(t, err.Error(), "Ed25519")
	assert.Contains(t, err.Error(), "encrypt")
	assert.Contains(t, err.Error(), "sign, verify")
}

func TestNewUnsupportedAlgorithm(t *testing.T) {
	err := NewUnsupportedAlgorithm("RSA-1024")
	assert.Equal(t, KindUnsupportedAlgorithm, err.Kind)
	assert.Contains(t, err.Error(), "RSA-1024")
}

func TestNewInvalidKeyFormat(t *testing.T) {
	cause := errors.New("bad PEM block")
	err := NewInvalidKeyFormat(P256, "not a P-256 private key", cause)
	assert.Equal(t, KindInvalidKeyFormat, err.Kind)
	assert.Contains(t, err.Error(), "P-256")
	require.ErrorIs(t, err, cause)
}

func TestNewMessageTooLarge(t *testing.T) {
	err := NewMessageTooLarge(RSA2048, 191, 190)
	assert.Equal(t, KindMessageTooLarge, err.Kind)
	assert.Equal(t, CapEncrypt, err.Operation)
	assert.Contains(t, err.Error(), "191")
	assert.Contains(t, err.Error(), "190")
}

func TestNewKeyExchangeFailed(t *testing.T) {
	err := NewKeyExchangeFailed(X25519, "peer key is not an X25519 key", nil)
	assert.Equal(t, KindKeyExchangeFailed, err.Kind)
	assert.Equal(t, CapKeyExchange, err.Operation)
	assert.Contains(t, err.Error(), "X25519")
}
