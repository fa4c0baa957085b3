package primitives

import "crypto/rsa"

// RSAEngine handles RSA asymmetric cryptographic operations.
// RSA is the only supported family with both encryption/decryption AND
// digital signatures. Encryption uses OAEP with SHA-256; the plaintext
// capacity is a function of the modulus size.
type RSAEngine interface {
	// GenerateKeys generates an RSA key pair with the specified modulus bit
	// length. Supported sizes: 2048, 3072, 4096 bits.
	GenerateKeys(bits int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// MaxMessageSize returns the OAEP/SHA-256 plaintext capacity in bytes
	// for the given modulus bit length.
	MaxMessageSize(bits int) int

	// Encrypt encrypts the plaintext using RSA-OAEP with the public key.
	// Fails with a message-too-large error if the plaintext exceeds the
	// OAEP capacity; it never truncates.
	Encrypt(plaintext []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts RSA-OAEP ciphertext using the private key. The error
	// on failure is deliberately opaque about which sub-check failed.
	Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Sign creates a SHA-256 PKCS#1 v1.5 signature with the private key.
	Sign(message []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify checks a signature against the message and public key. A
	// mismatched signature is reported as (false, nil), not as an error.
	Verify(message, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// EncodePrivateKey renders the private key as PKCS#1 PEM text.
	EncodePrivateKey(privateKey *rsa.PrivateKey) ([]byte, error)

	// EncodePublicKey renders the public key as PKIX PEM text.
	EncodePublicKey(publicKey *rsa.PublicKey) ([]byte, error)

	// DecodePrivateKey parses PKCS#1 or PKCS#8 PEM private key text.
	DecodePrivateKey(pemText []byte) (*rsa.PrivateKey, error)

	// DecodePublicKey parses PKCS#1 or PKIX PEM public key text.
	DecodePublicKey(pemText []byte) (*rsa.PublicKey, error)
}
