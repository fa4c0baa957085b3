package primitives

import "github.com/decred/dcrd/dcrec/secp256k1/v4"

// Secp256k1Engine handles the secp256k1 curve, which the standard library
// does not implement: ECDSA signatures over SHA-256 and ECDH key agreement.
// Key material uses bespoke PEM blocks carrying the raw 32-byte scalar and
// the 33-byte compressed point, since x509 has no OID support for this
// curve.
type Secp256k1Engine interface {
	// GenerateKeys generates a secp256k1 key pair.
	GenerateKeys() (*secp256k1.PrivateKey, *secp256k1.PublicKey, error)

	// Sign hashes the message with SHA-256 and signs the digest, returning
	// an ASN.1 DER signature.
	Sign(message []byte, privateKey *secp256k1.PrivateKey) ([]byte, error)

	// Verify checks an ASN.1 DER signature. A mismatched or malformed
	// signature is reported as (false, nil), not as an error.
	Verify(message, signature []byte, publicKey *secp256k1.PublicKey) (bool, error)

	// SharedSecret runs ECDH between the private key and the peer public
	// key, returning the 32-byte serialized x coordinate.
	SharedSecret(privateKey *secp256k1.PrivateKey, peerPublicKey *secp256k1.PublicKey) ([]byte, error)

	// EncodePrivateKey renders the private key as a "SECP256K1 PRIVATE KEY"
	// PEM block.
	EncodePrivateKey(privateKey *secp256k1.PrivateKey) ([]byte, error)

	// EncodePublicKey renders the compressed public key as a "SECP256K1
	// PUBLIC KEY" PEM block.
	EncodePublicKey(publicKey *secp256k1.PublicKey) ([]byte, error)

	// DecodePrivateKey parses a "SECP256K1 PRIVATE KEY" PEM block.
	DecodePrivateKey(pemText []byte) (*secp256k1.PrivateKey, error)

	// DecodePublicKey parses a "SECP256K1 PUBLIC KEY" PEM block.
	DecodePublicKey(pemText []byte) (*secp256k1.PublicKey, error)
}
