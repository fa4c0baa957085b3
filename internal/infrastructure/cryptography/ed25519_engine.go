package cryptography

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/primitives"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// ed25519Engine implements the Ed25519Engine interface.
type ed25519Engine struct {
	logger logger.Logger
}

// NewEd25519Engine creates and returns a new instance of ed25519Engine.
func NewEd25519Engine(logger logger.Logger) (primitives.Ed25519Engine, error) {
	return &ed25519Engine{
		logger: logger,
	}, nil
}

// GenerateKeys generates an Ed25519 key pair.
func (e *ed25519Engine) GenerateKeys() (ed25519.PrivateKey, ed25519.PublicKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate Ed25519 keys: %w", err)
	}

	e.logger.Info("Generated Ed25519 key pair")
	return privateKey, publicKey, nil
}

// Sign signs the message directly. EdDSA hashes internally; there is no
// hash parameter to configure.
func (e *ed25519Engine) Sign(message []byte, privateKey ed25519.PrivateKey) ([]byte, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("Ed25519 private key must be %d bytes, got %d",
			ed25519.PrivateKeySize, len(privateKey))
	}

	signature := ed25519.Sign(privateKey, message)

	e.logger.Info("Ed25519 signing succeeded")
	return signature, nil
}

// Verify checks a signature. A mismatch is a valid (false, nil) result, not
// an error.
func (e *ed25519Engine) Verify(message, signature []byte, publicKey ed25519.PublicKey) (bool, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return false, fmt.Errorf("Ed25519 public key must be %d bytes, got %d",
			ed25519.PublicKeySize, len(publicKey))
	}
	if len(signature) != ed25519.SignatureSize {
		return false, nil
	}

	valid := ed25519.Verify(publicKey, message, signature)

	e.logger.Info("Ed25519 verification completed")
	return valid, nil
}

// EncodePrivateKey renders the private key as PKCS#8 PEM text.
func (e *ed25519Engine) EncodePrivateKey(privateKey ed25519.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	block := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	}
	return pem.EncodeToMemory(block), nil
}

// EncodePublicKey renders the public key as PKIX PEM text.
func (e *ed25519Engine) EncodePublicKey(publicKey ed25519.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	block := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	}
	return pem.EncodeToMemory(block), nil
}

// DecodePrivateKey parses PKCS#8 PEM private key text.
func (e *ed25519Engine) DecodePrivateKey(pemText []byte) (ed25519.PrivateKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the private key")
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key in PKCS#8 format: %w", err)
	}

	privateKey, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not of type Ed25519")
	}
	return privateKey, nil
}

// DecodePublicKey parses PKIX PEM public key text.
func (e *ed25519Engine) DecodePublicKey(pemText []byte) (ed25519.PublicKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the public key")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key in PKIX format: %w", err)
	}

	publicKey, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("public key is not of type Ed25519")
	}
	return publicKey, nil
}
