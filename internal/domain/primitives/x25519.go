package primitives

import "crypto/ecdh"

// X25519Engine handles X25519 Diffie-Hellman key agreement. X25519 supports
// key exchange only; sign, verify and encrypt requests are rejected by the
// capability gate before ever reaching this engine.
type X25519Engine interface {
	// GenerateKeys generates an X25519 key pair.
	GenerateKeys() (*ecdh.PrivateKey, *ecdh.PublicKey, error)

	// SharedSecret computes the 32-byte X25519 shared secret.
	SharedSecret(privateKey *ecdh.PrivateKey, peerPublicKey *ecdh.PublicKey) ([]byte, error)

	// EncodePrivateKey renders the private key as PKCS#8 PEM text.
	EncodePrivateKey(privateKey *ecdh.PrivateKey) ([]byte, error)

	// EncodePublicKey renders the public key as PKIX PEM text.
	EncodePublicKey(publicKey *ecdh.PublicKey) ([]byte, error)

	// DecodePrivateKey parses PKCS#8 PEM private key text.
	DecodePrivateKey(pemText []byte) (*ecdh.PrivateKey, error)

	// DecodePublicKey parses PKIX PEM public key text.
	DecodePublicKey(pemText []byte) (*ecdh.PublicKey, error)
}
