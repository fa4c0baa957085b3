package primitives

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
)

// ECDSAEngine handles the three NIST prime curves (P-256, P-384, P-521):
// ECDSA signatures plus ECDH key agreement. Signatures are ASN.1 DER encoded
// so that verify can parse exactly what sign produced. The hash is fixed per
// curve by the capability table, never chosen by the caller.
type ECDSAEngine interface {
	// GenerateKeys generates an ECDSA key pair on the specified curve.
	GenerateKeys(curve elliptic.Curve) (*ecdsa.PrivateKey, *ecdsa.PublicKey, error)

	// Sign hashes the message with the given hash and signs the digest,
	// returning an ASN.1 DER signature.
	Sign(message []byte, privateKey *ecdsa.PrivateKey, hash crypto.Hash) ([]byte, error)

	// Verify checks an ASN.1 DER signature. A mismatched or malformed
	// signature is reported as (false, nil), not as an error.
	Verify(message, signature []byte, publicKey *ecdsa.PublicKey, hash crypto.Hash) (bool, error)

	// SharedSecret runs ECDH between the private key and the peer public
	// key. Both keys must be on the same curve.
	SharedSecret(privateKey *ecdsa.PrivateKey, peerPublicKey *ecdsa.PublicKey) ([]byte, error)

	// EncodePrivateKey renders the private key as SEC 1 "EC PRIVATE KEY"
	// PEM text.
	EncodePrivateKey(privateKey *ecdsa.PrivateKey) ([]byte, error)

	// EncodePublicKey renders the public key as PKIX PEM text.
	EncodePublicKey(publicKey *ecdsa.PublicKey) ([]byte, error)

	// DecodePrivateKey parses SEC 1 or PKCS#8 PEM private key text and
	// checks it is on the expected curve.
	DecodePrivateKey(pemText []byte, curve elliptic.Curve) (*ecdsa.PrivateKey, error)

	// DecodePublicKey parses PKIX PEM public key text and checks it is on
	// the expected curve.
	DecodePublicKey(pemText []byte, curve elliptic.Curve) (*ecdsa.PublicKey, error)
}
