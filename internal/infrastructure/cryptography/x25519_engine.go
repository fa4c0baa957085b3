package cryptography

import (
	"crypto/ecdh"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/primitives"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// x25519Engine implements the X25519Engine interface.
type x25519Engine struct {
	logger logger.Logger
}

// NewX25519Engine creates and returns a new instance of x25519Engine.
func NewX25519Engine(logger logger.Logger) (primitives.X25519Engine, error) {
	return &x25519Engine{
		logger: logger,
	}, nil
}

// GenerateKeys generates an X25519 key pair.
func (x *x25519Engine) GenerateKeys() (*ecdh.PrivateKey, *ecdh.PublicKey, error) {
	privateKey, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate X25519 keys: %w", err)
	}

	x.logger.Info("Generated X25519 key pair")
	return privateKey, privateKey.PublicKey(), nil
}

// SharedSecret computes the 32-byte X25519 shared secret.
func (x *x25519Engine) SharedSecret(privateKey *ecdh.PrivateKey, peerPublicKey *ecdh.PublicKey) ([]byte, error) {
	if privateKey == nil || peerPublicKey == nil {
		return nil, errors.New("both keys are required for key agreement")
	}

	secret, err := privateKey.ECDH(peerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("key agreement failed: %w", err)
	}

	x.logger.Info("X25519 shared secret derived")
	return secret, nil
}

// EncodePrivateKey renders the private key as PKCS#8 PEM text.
func (x *x25519Engine) EncodePrivateKey(privateKey *ecdh.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
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
func (x *x25519Engine) EncodePublicKey(publicKey *ecdh.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
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

// DecodePrivateKey parses PKCS#8 PEM private key text and checks it is an
// X25519 key.
func (x *x25519Engine) DecodePrivateKey(pemText []byte) (*ecdh.PrivateKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the private key")
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key in PKCS#8 format: %w", err)
	}

	privateKey, ok := parsed.(*ecdh.PrivateKey)
	if !ok || privateKey.Curve() != ecdh.X25519() {
		return nil, errors.New("private key is not of type X25519")
	}
	return privateKey, nil
}

// DecodePublicKey parses PKIX PEM public key text and checks it is an
// X25519 key.
func (x *x25519Engine) DecodePublicKey(pemText []byte) (*ecdh.PublicKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the public key")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key in PKIX format: %w", err)
	}

	publicKey, ok := parsed.(*ecdh.PublicKey)
	if !ok || publicKey.Curve() != ecdh.X25519() {
		return nil, errors.New("public key is not of type X25519")
	}
	return publicKey, nil
}
