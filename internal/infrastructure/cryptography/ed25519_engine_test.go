//go:build unit
// +build unit

package cryptography

import (
	"crypto/ed25519"
	"testing"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/primitives"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEd25519Engine(t *testing.T) primitives.Ed25519Engine {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	engine, err := NewEd25519Engine(logger)
	require.NoError(t, err)
	return engine
}

func TestEd25519Engine(t *testing.T) {
	engine := setupEd25519Engine(t)

	t.Run("GenerateKeys", func(t *testing.T) {
		priv, pub, err := engine.GenerateKeys()
		require.NoError(t, err)
		assert.Len(t, priv, ed25519.PrivateKeySize)
		assert.Len(t, pub, ed25519.PublicKeySize)
	})

	t.Run("SignVerify", func(t *testing.T) {
		priv, pub, err := engine.GenerateKeys()
		require.NoError(t, err)

		msg := []byte("This is a test message.")
		sig, err := engine.Sign(msg, priv)
		require.NoError(t, err)
		assert.Len(t, sig, ed25519.SignatureSize)

		valid, err := engine.Verify(msg, sig, pub)
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = engine.Verify([]byte("Modified message."), sig, pub)
		require.NoError(t, err)
		assert.False(t, valid)

		tampered := append([]byte(nil), sig...)
		tampered[10] ^= 0xFF
		valid, err = engine.Verify(msg, tampered, pub)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("TruncatedSignature", func(t *testing.T) {
		priv, pub, err := engine.GenerateKeys()
		require.NoError(t, err)

		msg := []byte("Test message")
		sig, err := engine.Sign(msg, priv)
		require.NoError(t, err)

		valid, err := engine.Verify(msg, sig[:16], pub)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("PEMRoundTrip", func(t *testing.T) {
		priv, pub, err := engine.GenerateKeys()
		require.NoError(t, err)

		privPEM, err := engine.EncodePrivateKey(priv)
		require.NoError(t, err)
		assert.Contains(t, string(privPEM), "PRIVATE KEY")

		pubPEM, err := engine.EncodePublicKey(pub)
		require.NoError(t, err)
		assert.Contains(t, string(pubPEM), "PUBLIC KEY")

		decodedPriv, err := engine.DecodePrivateKey(privPEM)
		require.NoError(t, err)
		assert.Equal(t, priv, decodedPriv)

		decodedPub, err := engine.DecodePublicKey(pubPEM)
		require.NoError(t, err)
		assert.Equal(t, pub, decodedPub)
	})

	t.Run("DecodeRejectsOtherKeyTypes", func(t *testing.T) {
		logger := testutil.SetupTestLogger(t)
		x25519Engine, err := NewX25519Engine(logger)
		require.NoError(t, err)

		xPriv, xPub, err := x25519Engine.GenerateKeys()
		require.NoError(t, err)
		xPrivPEM, err := x25519Engine.EncodePrivateKey(xPriv)
		require.NoError(t, err)
		xPubPEM, err := x25519Engine.EncodePublicKey(xPub)
		require.NoError(t, err)

		_, err = engine.DecodePrivateKey(xPrivPEM)
		assert.Error(t, err)

		_, err = engine.DecodePublicKey(xPubPEM)
		assert.Error(t, err)
	})

	t.Run("DecodeInvalidPEM", func(t *testing.T) {
		_, err := engine.DecodePrivateKey([]byte("garbage"))
		assert.Error(t, err)
	})
}
