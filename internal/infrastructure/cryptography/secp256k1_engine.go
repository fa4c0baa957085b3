package cryptography

import (
	"crypto/sha256"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/primitives"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// PEM block types for secp256k1 key material. x509 has no OID support for
// this curve, so the blocks carry the raw scalar and compressed point.
const (
	secp256k1PrivateKeyPEMType = "SECP256K1 PRIVATE KEY"
	secp256k1PublicKeyPEMType  = "SECP256K1 PUBLIC KEY"
)

// secp256k1Engine implements the Secp256k1Engine interface.
type secp256k1Engine struct {
	logger logger.Logger
}

// NewSecp256k1Engine creates and returns a new instance of secp256k1Engine.
func NewSecp256k1Engine(logger logger.Logger) (primitives.Secp256k1Engine, error) {
	return &secp256k1Engine{
		logger: logger,
	}, nil
}

// GenerateKeys generates a secp256k1 key pair.
func (s *secp256k1Engine) GenerateKeys() (*secp256k1.PrivateKey, *secp256k1.PublicKey, error) {
	privateKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate secp256k1 keys: %w", err)
	}

	s.logger.Info("Generated secp256k1 key pair")
	return privateKey, privateKey.PubKey(), nil
}

// Sign hashes the message with SHA-256 and signs the digest, returning an
// ASN.1 DER signature.
func (s *secp256k1Engine) Sign(message []byte, privateKey *secp256k1.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	digest := sha256.Sum256(message)
	signature := secpecdsa.Sign(privateKey, digest[:])

	s.logger.Info("secp256k1 signing succeeded")
	return signature.Serialize(), nil
}

// Verify checks an ASN.1 DER signature. A mismatched or malformed signature
// is a valid (false, nil) result, not an error.
func (s *secp256k1Engine) Verify(message, signature []byte, publicKey *secp256k1.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	parsed, err := secpecdsa.ParseDERSignature(signature)
	if err != nil {
		return false, nil
	}

	digest := sha256.Sum256(message)
	valid := parsed.Verify(digest[:], publicKey)

	s.logger.Info("secp256k1 verification completed")
	return valid, nil
}

// SharedSecret runs ECDH between the private key and the peer public key,
// returning the 32-byte serialized x coordinate of the shared point.
func (s *secp256k1Engine) SharedSecret(privateKey *secp256k1.PrivateKey, peerPublicKey *secp256k1.PublicKey) ([]byte, error) {
	if privateKey == nil || peerPublicKey == nil {
		return nil, errors.New("both keys are required for key agreement")
	}

	secret := secp256k1.GenerateSharedSecret(privateKey, peerPublicKey)

	s.logger.Info("ECDH shared secret derived on secp256k1")
	return secret, nil
}

// EncodePrivateKey renders the raw 32-byte scalar as a PEM block.
func (s *secp256k1Engine) EncodePrivateKey(privateKey *secp256k1.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	block := &pem.Block{
		Type:  secp256k1PrivateKeyPEMType,
		Bytes: privateKey.Serialize(),
	}
	return pem.EncodeToMemory(block), nil
}

// EncodePublicKey renders the 33-byte compressed point as a PEM block.
func (s *secp256k1Engine) EncodePublicKey(publicKey *secp256k1.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
	block := &pem.Block{
		Type:  secp256k1PublicKeyPEMType,
		Bytes: publicKey.SerializeCompressed(),
	}
	return pem.EncodeToMemory(block), nil
}

// DecodePrivateKey parses a "SECP256K1 PRIVATE KEY" PEM block.
func (s *secp256k1Engine) DecodePrivateKey(pemText []byte) (*secp256k1.PrivateKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the private key")
	}
	if block.Type != secp256k1PrivateKeyPEMType {
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}
	if len(block.Bytes) != 32 {
		return nil, fmt.Errorf("secp256k1 private key must be 32 bytes, got %d", len(block.Bytes))
	}
	return secp256k1.PrivKeyFromBytes(block.Bytes), nil
}

// DecodePublicKey parses a "SECP256K1 PUBLIC KEY" PEM block.
func (s *secp256k1Engine) DecodePublicKey(pemText []byte) (*secp256k1.PublicKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the public key")
	}
	if block.Type != secp256k1PublicKeyPEMType {
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}
	publicKey, err := secp256k1.ParsePubKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse secp256k1 public key: %w", err)
	}
	return publicKey, nil
}
