//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository captures records in memory for assertions.
type fakeRepository struct {
	created []*operations.Record
}

func (f *fakeRepository) Create(_ context.Context, record *operations.Record) error {
	f.created = append(f.created, record)
	return nil
}

func (f *fakeRepository) List(_ context.Context, _ *operations.RecordQuery) ([]*operations.Record, error) {
	return f.created, nil
}

type serviceFixture struct {
	keyGen    operations.KeyGenService
	cipher    operations.CipherService
	signature operations.SignatureService
	exchange  operations.ExchangeService
	repo      *fakeRepository
}

func setupServices(t *testing.T) *serviceFixture {
	t.Helper()
	log := testutil.SetupTestLogger(t)

	engines, err := NewEngines(log)
	require.NoError(t, err)

	repo := &fakeRepository{}

	keyGen, err := NewKeyGenService(engines, repo, log)
	require.NoError(t, err)
	cipher, err := NewCipherService(engines, repo, log)
	require.NoError(t, err)
	signature, err := NewSignatureService(engines, repo, log)
	require.NoError(t, err)
	exchange, err := NewExchangeService(engines, repo, log)
	require.NoError(t, err)

	return &serviceFixture{
		keyGen:    keyGen,
		cipher:    cipher,
		signature: signature,
		exchange:  exchange,
		repo:      repo,
	}
}

func TestKeyGenService(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	t.Run("GenerateAllAlgorithms", func(t *testing.T) {
		for _, id := range algorithm.All() {
			result, err := fixture.keyGen.Generate(ctx, string(id))
			require.NoError(t, err, "generate failed for %s", id)
			assert.Equal(t, id, result.Algorithm)
			assert.Contains(t, string(result.PrivateKeyPEM), "PRIVATE KEY")
			assert.Contains(t, string(result.PublicKeyPEM), "PUBLIC KEY")
			assert.Equal(t, algorithm.MetadataOf(id).KeySizeBits, result.KeySizeBits)
			assert.Equal(t, algorithm.Capabilities(id), result.Capabilities)
		}
	})

	t.Run("CurveOnlyForCurveAlgorithms", func(t *testing.T) {
		result, err := fixture.keyGen.Generate(ctx, "P-384")
		require.NoError(t, err)
		assert.Equal(t, "P-384", result.Curve)

		result, err = fixture.keyGen.Generate(ctx, "Ed25519")
		require.NoError(t, err)
		assert.Empty(t, result.Curve)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		_, err := fixture.keyGen.Generate(ctx, "DSA-1024")
		require.Error(t, err)
		assert.Equal(t, algorithm.KindUnsupportedAlgorithm, algorithm.KindOf(err))
	})

	t.Run("OutcomesRecorded", func(t *testing.T) {
		repo := &fakeRepository{}
		log := testutil.SetupTestLogger(t)
		engines, err := NewEngines(log)
		require.NoError(t, err)
		keyGen, err := NewKeyGenService(engines, repo, log)
		require.NoError(t, err)

		_, err = keyGen.Generate(ctx, "Ed25519")
		require.NoError(t, err)
		_, err = keyGen.Generate(ctx, "DSA-1024")
		require.Error(t, err)

		require.Len(t, repo.created, 2)
		assert.Equal(t, operations.OpGenerate, repo.created[0].Operation)
		assert.True(t, repo.created[0].Success)
		assert.Empty(t, repo.created[0].ErrorKind)
		assert.False(t, repo.created[1].Success)
		assert.Equal(t, string(algorithm.KindUnsupportedAlgorithm), repo.created[1].ErrorKind)
	})

	t.Run("NilRepositoryDisablesRecording", func(t *testing.T) {
		log := testutil.SetupTestLogger(t)
		engines, err := NewEngines(log)
		require.NoError(t, err)
		keyGen, err := NewKeyGenService(engines, nil, log)
		require.NoError(t, err)

		_, err = keyGen.Generate(ctx, "X25519")
		assert.NoError(t, err)
	})
}

func TestCipherService(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	t.Run("EncryptDecryptRoundTrip", func(t *testing.T) {
		keys, err := fixture.keyGen.Generate(ctx, "RSA-2048")
		require.NoError(t, err)

		message := []byte("attack at dawn")
		encrypted, err := fixture.cipher.Encrypt(ctx, "RSA-2048", message, keys.PublicKeyPEM)
		require.NoError(t, err)
		assert.Equal(t, "OAEP", encrypted.Padding)
		assert.Equal(t, "SHA-256", encrypted.Hash)
		assert.NotEqual(t, message, encrypted.Ciphertext)

		decrypted, err := fixture.cipher.Decrypt(ctx, "RSA-2048", encrypted.Ciphertext, keys.PrivateKeyPEM)
		require.NoError(t, err)
		assert.Equal(t, message, decrypted.Plaintext)
	})

	t.Run("EncryptRejectedForSignOnlyAlgorithms", func(t *testing.T) {
		for _, name := range []string{"Ed25519", "X25519", "P-256", "secp256k1"} {
			_, err := fixture.cipher.Encrypt(ctx, name, []byte("msg"), []byte("irrelevant"))
			require.Error(t, err, "encrypt should be rejected for %s", name)
			assert.Equal(t, algorithm.KindUnsupportedOperation, algorithm.KindOf(err))
		}
	})

	t.Run("UnsupportedOperationListsAllowedSet", func(t *testing.T) {
		_, err := fixture.cipher.Encrypt(ctx, "Ed25519", []byte("msg"), []byte("irrelevant"))
		require.Error(t, err)

		var opErr *algorithm.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, []algorithm.Capability{algorithm.CapSign, algorithm.CapVerify}, opErr.Allowed)
	})

	t.Run("EncryptWithMalformedKey", func(t *testing.T) {
		_, err := fixture.cipher.Encrypt(ctx, "RSA-2048", []byte("msg"), []byte("not a key"))
		require.Error(t, err)
		assert.Equal(t, algorithm.KindInvalidKeyFormat, algorithm.KindOf(err))
	})

	t.Run("EncryptOversizedMessage", func(t *testing.T) {
		keys, err := fixture.keyGen.Generate(ctx, "RSA-2048")
		require.NoError(t, err)

		oversized := make([]byte, 191)
		_, err = fixture.cipher.Encrypt(ctx, "RSA-2048", oversized, keys.PublicKeyPEM)
		require.Error(t, err)
		assert.Equal(t, algorithm.KindMessageTooLarge, algorithm.KindOf(err))
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		keys, err := fixture.keyGen.Generate(ctx, "RSA-2048")
		require.NoError(t, err)
		otherKeys, err := fixture.keyGen.Generate(ctx, "RSA-2048")
		require.NoError(t, err)

		encrypted, err := fixture.cipher.Encrypt(ctx, "RSA-2048", []byte("secret"), keys.PublicKeyPEM)
		require.NoError(t, err)

		_, err = fixture.cipher.Decrypt(ctx, "RSA-2048", encrypted.Ciphertext, otherKeys.PrivateKeyPEM)
		require.Error(t, err)
		assert.Equal(t, algorithm.KindDecryptionFailed, algorithm.KindOf(err))
	})
}

func TestSignatureService(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	signers := []struct {
		name string
		hash string
	}{
		{"RSA-2048", "SHA-256"},
		{"P-256", "SHA-256"},
		{"P-384", "SHA-384"},
		{"P-521", "SHA-512"},
		{"secp256k1", "SHA-256"},
		{"Ed25519", "intrinsic"},
	}

	for _, tc := range signers {
		t.Run(tc.name, func(t *testing.T) {
			keys, err := fixture.keyGen.Generate(ctx, tc.name)
			require.NoError(t, err)

			message := []byte("The quick brown fox jumps over the lazy dog")
			signed, err := fixture.signature.Sign(ctx, tc.name, message, keys.PrivateKeyPEM)
			require.NoError(t, err)
			assert.Equal(t, tc.hash, signed.Hash)
			assert.NotEmpty(t, signed.Signature)

			verified, err := fixture.signature.Verify(ctx, tc.name, message, signed.Signature, keys.PublicKeyPEM)
			require.NoError(t, err)
			assert.True(t, verified.Verified)

			verified, err = fixture.signature.Verify(ctx, tc.name, []byte("tampered"), signed.Signature, keys.PublicKeyPEM)
			require.NoError(t, err)
			assert.False(t, verified.Verified)
		})
	}

	t.Run("SignRejectedForX25519", func(t *testing.T) {
		_, err := fixture.signature.Sign(ctx, "X25519", []byte("msg"), []byte("irrelevant"))
		require.Error(t, err)
		assert.Equal(t, algorithm.KindUnsupportedOperation, algorithm.KindOf(err))
	})

	t.Run("SignWithMalformedKey", func(t *testing.T) {
		_, err := fixture.signature.Sign(ctx, "P-256", []byte("msg"), []byte("not a key"))
		require.Error(t, err)
		assert.Equal(t, algorithm.KindInvalidKeyFormat, algorithm.KindOf(err))
	})

	t.Run("VerifyWithWrongCurveKey", func(t *testing.T) {
		p256Keys, err := fixture.keyGen.Generate(ctx, "P-256")
		require.NoError(t, err)

		signed, err := fixture.signature.Sign(ctx, "P-256", []byte("msg"), p256Keys.PrivateKeyPEM)
		require.NoError(t, err)

		// P-256 public key presented as P-384 fails structural validation.
		_, err = fixture.signature.Verify(ctx, "P-384", []byte("msg"), signed.Signature, p256Keys.PublicKeyPEM)
		require.Error(t, err)
		assert.Equal(t, algorithm.KindInvalidKeyFormat, algorithm.KindOf(err))
	})
}

func TestExchangeService(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	exchangers := []struct {
		name   string
		family string
	}{
		{"P-256", "P-256"},
		{"P-384", "P-384"},
		{"P-521", "P-521"},
		{"secp256k1", "secp256k1"},
		{"X25519", "X25519"},
	}

	for _, tc := range exchangers {
		t.Run(tc.name, func(t *testing.T) {
			alice, err := fixture.keyGen.Generate(ctx, tc.name)
			require.NoError(t, err)
			bob, err := fixture.keyGen.Generate(ctx, tc.name)
			require.NoError(t, err)

			aliceResult, err := fixture.exchange.DeriveSharedSecret(ctx, tc.name, alice.PrivateKeyPEM, bob.PublicKeyPEM)
			require.NoError(t, err)
			bobResult, err := fixture.exchange.DeriveSharedSecret(ctx, tc.name, bob.PrivateKeyPEM, alice.PublicKeyPEM)
			require.NoError(t, err)

			assert.Equal(t, tc.family, aliceResult.Family)
			assert.Equal(t, aliceResult.SharedSecret, bobResult.SharedSecret)
			assert.Equal(t, len(aliceResult.SharedSecret), aliceResult.Length)
		})
	}

	t.Run("RejectedForRSAAndEd25519", func(t *testing.T) {
		for _, name := range []string{"RSA-2048", "Ed25519"} {
			_, err := fixture.exchange.DeriveSharedSecret(ctx, name, []byte("a"), []byte("b"))
			require.Error(t, err)
			assert.Equal(t, algorithm.KindUnsupportedOperation, algorithm.KindOf(err))
		}
	})

	t.Run("CrossFamilyPeerKey", func(t *testing.T) {
		x25519Keys, err := fixture.keyGen.Generate(ctx, "X25519")
		require.NoError(t, err)
		p256Keys, err := fixture.keyGen.Generate(ctx, "P-256")
		require.NoError(t, err)

		_, err = fixture.exchange.DeriveSharedSecret(ctx, "X25519", x25519Keys.PrivateKeyPEM, p256Keys.PublicKeyPEM)
		require.Error(t, err)
		assert.Equal(t, algorithm.KindKeyExchangeFailed, algorithm.KindOf(err))
	})

	t.Run("MalformedOwnPrivateKey", func(t *testing.T) {
		peer, err := fixture.keyGen.Generate(ctx, "X25519")
		require.NoError(t, err)

		_, err = fixture.exchange.DeriveSharedSecret(ctx, "X25519", []byte("not a key"), peer.PublicKeyPEM)
		require.Error(t, err)
		assert.Equal(t, algorithm.KindInvalidKeyFormat, algorithm.KindOf(err))
	})

	t.Run("MalformedPeerPublicKey", func(t *testing.T) {
		own, err := fixture.keyGen.Generate(ctx, "P-256")
		require.NoError(t, err)

		_, err = fixture.exchange.DeriveSharedSecret(ctx, "P-256", own.PrivateKeyPEM, []byte("not a key"))
		require.Error(t, err)
		assert.Equal(t, algorithm.KindKeyExchangeFailed, algorithm.KindOf(err))
	})
}

func TestHistoryService(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	ctx := context.Background()

	t.Run("RequiresRepository", func(t *testing.T) {
		_, err := NewHistoryService(nil, log)
		assert.Error(t, err)
	})

	t.Run("ListWithDefaultQuery", func(t *testing.T) {
		repo := &fakeRepository{
			created: []*operations.Record{
				{ID: "a", Algorithm: "RSA-2048", Operation: operations.OpEncrypt, Success: true},
			},
		}
		history, err := NewHistoryService(repo, log)
		require.NoError(t, err)

		records, err := history.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
