package primitives

import "crypto/ed25519"

// Ed25519Engine handles Ed25519 signatures. Ed25519 performs its own
// internal hashing; there is no configurable hash parameter and the engine
// takes none.
type Ed25519Engine interface {
	// GenerateKeys generates an Ed25519 key pair.
	GenerateKeys() (ed25519.PrivateKey, ed25519.PublicKey, error)

	// Sign signs the message directly (EdDSA hashes internally).
	Sign(message []byte, privateKey ed25519.PrivateKey) ([]byte, error)

	// Verify checks a signature. A mismatched signature is reported as
	// (false, nil), not as an error.
	Verify(message, signature []byte, publicKey ed25519.PublicKey) (bool, error)

	// EncodePrivateKey renders the private key as PKCS#8 PEM text.
	EncodePrivateKey(privateKey ed25519.PrivateKey) ([]byte, error)

	// EncodePublicKey renders the public key as PKIX PEM text.
	EncodePublicKey(publicKey ed25519.PublicKey) ([]byte, error)

	// DecodePrivateKey parses PKCS#8 PEM private key text.
	DecodePrivateKey(pemText []byte) (ed25519.PrivateKey, error)

	// DecodePublicKey parses PKIX PEM public key text.
	DecodePublicKey(pemText []byte) (ed25519.PublicKey, error)
}
