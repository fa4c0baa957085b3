package operations

import (
	"context"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
)

// KeyPairResult is the outcome of a key-generation request. Key material is
// PEM text; it is returned to the caller and never persisted.
type KeyPairResult struct {
	Algorithm     algorithm.ID
	PublicKeyPEM  []byte
	PrivateKeyPEM []byte
	KeySizeBits   int
	// Curve is set only for the four selectable elliptic curves.
	Curve        string
	Capabilities []algorithm.Capability
}

// EncryptResult carries the ciphertext plus the parameters that produced it,
// so callers can display what happened without re-deriving it.
type EncryptResult struct {
	Algorithm  algorithm.ID
	Ciphertext []byte
	Padding    string
	Hash       string
}

// DecryptResult carries the recovered plaintext.
type DecryptResult struct {
	Algorithm algorithm.ID
	Plaintext []byte
}

// SignResult carries the signature plus the hash that was applied.
type SignResult struct {
	Algorithm algorithm.ID
	Signature []byte
	Hash      string
}

// VerifyResult reports the outcome of a signature check. A false Verified is
// a successful result, not an error.
type VerifyResult struct {
	Algorithm algorithm.ID
	Verified  bool
	Hash      string
}

// ExchangeResult carries the derived shared secret. Family names the curve
// or DH family the secret was derived on.
type ExchangeResult struct {
	Algorithm    algorithm.ID
	SharedSecret []byte
	Family       string
	Length       int
}

// KeyGenService generates key pairs for any of the nine algorithm
// configurations.
type KeyGenService interface {
	Generate(ctx context.Context, algorithmName string) (*KeyPairResult, error)
}

// CipherService performs RSA-OAEP encryption and decryption. Requests for
// non-RSA algorithms are rejected at the capability gate.
type CipherService interface {
	Encrypt(ctx context.Context, algorithmName string, message, publicKeyPEM []byte) (*EncryptResult, error)
	Decrypt(ctx context.Context, algorithmName string, ciphertext, privateKeyPEM []byte) (*DecryptResult, error)
}

// SignatureService signs and verifies with RSA, ECDSA or Ed25519.
type SignatureService interface {
	Sign(ctx context.Context, algorithmName string, message, privateKeyPEM []byte) (*SignResult, error)
	Verify(ctx context.Context, algorithmName string, message, signature, publicKeyPEM []byte) (*VerifyResult, error)
}

// ExchangeService derives ECDH shared secrets for the curve algorithms and
// X25519.
type ExchangeService interface {
	DeriveSharedSecret(ctx context.Context, algorithmName string, privateKeyPEM, peerPublicKeyPEM []byte) (*ExchangeResult, error)
}

// HistoryService lists the recorded operation history.
type HistoryService interface {
	List(ctx context.Context, query *RecordQuery) ([]*Record, error)
}
