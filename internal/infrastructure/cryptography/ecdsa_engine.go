package cryptography

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/primitives"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// ecdsaEngine implements the ECDSAEngine interface for the NIST prime
// curves.
type ecdsaEngine struct {
	logger logger.Logger
}

// NewECDSAEngine creates and returns a new instance of ecdsaEngine.
func NewECDSAEngine(logger logger.Logger) (primitives.ECDSAEngine, error) {
	return &ecdsaEngine{
		logger: logger,
	}, nil
}

// GenerateKeys generates an ECDSA key pair on the specified curve.
func (e *ecdsaEngine) GenerateKeys(curve elliptic.Curve) (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate %s keys: %w", curve.Params().Name, err)
	}

	publicKey := &privateKey.PublicKey
	e.logger.Info("Generated ", curve.Params().Name, " key pair")
	return privateKey, publicKey, nil
}

// Sign hashes the message with the curve's fixed hash and signs the digest.
// The signature is ASN.1 DER, the exact format Verify parses.
func (e *ecdsaEngine) Sign(message []byte, privateKey *ecdsa.PrivateKey, hash crypto.Hash) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if privateKey.D.Sign() == 0 {
		return nil, errors.New("invalid private key: D cannot be zero")
	}

	digest := hashMessage(message, hash)
	signature, err := ecdsa.SignASN1(rand.Reader, privateKey, digest)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	e.logger.Info("ECDSA signing succeeded")
	return signature, nil
}

// Verify checks an ASN.1 DER signature. A mismatched or malformed signature
// is a valid (false, nil) result, not an error.
func (e *ecdsaEngine) Verify(message, signature []byte, publicKey *ecdsa.PublicKey, hash crypto.Hash) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	digest := hashMessage(message, hash)
	valid := ecdsa.VerifyASN1(publicKey, digest, signature)

	e.logger.Info("ECDSA verification completed")
	return valid, nil
}

// SharedSecret runs ECDH between the private key and the peer public key by
// converting both to their crypto/ecdh form. Keys on different curves fail
// the conversion.
func (e *ecdsaEngine) SharedSecret(privateKey *ecdsa.PrivateKey, peerPublicKey *ecdsa.PublicKey) ([]byte, error) {
	if privateKey == nil || peerPublicKey == nil {
		return nil, errors.New("both keys are required for key agreement")
	}

	ecdhPriv, err := privateKey.ECDH()
	if err != nil {
		return nil, fmt.Errorf("private key does not support ECDH: %w", err)
	}
	ecdhPub, err := peerPublicKey.ECDH()
	if err != nil {
		return nil, fmt.Errorf("peer public key does not support ECDH: %w", err)
	}

	secret, err := ecdhPriv.ECDH(ecdhPub)
	if err != nil {
		return nil, fmt.Errorf("key agreement failed: %w", err)
	}

	e.logger.Info("ECDH shared secret derived on ", privateKey.Curve.Params().Name)
	return secret, nil
}

// EncodePrivateKey renders the private key as SEC 1 "EC PRIVATE KEY" PEM
// text.
func (e *ecdsaEngine) EncodePrivateKey(privateKey *ecdsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	der, err := x509.MarshalECPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	block := &pem.Block{
		Type:  "EC PRIVATE KEY",
		Bytes: der,
	}
	return pem.EncodeToMemory(block), nil
}

// EncodePublicKey renders the public key as PKIX PEM text.
func (e *ecdsaEngine) EncodePublicKey(publicKey *ecdsa.PublicKey) ([]byte, error) {
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

// DecodePrivateKey parses SEC 1 or PKCS#8 PEM private key text and checks
// the curve matches the expected one.
func (e *ecdsaEngine) DecodePrivateKey(pemText []byte, curve elliptic.Curve) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the private key")
	}

	privateKey, err := x509.ParseECPrivateKey(block.Bytes)
	if err != nil {
		parsed, pkcs8Err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if pkcs8Err != nil {
			return nil, fmt.Errorf("unable to parse private key in either SEC 1 or PKCS#8 format: %w", err)
		}
		var ok bool
		privateKey, ok = parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, errors.New("private key is not of type ECDSA")
		}
	}

	if privateKey.Curve != curve {
		return nil, fmt.Errorf("private key is on curve %s, expected %s",
			privateKey.Curve.Params().Name, curve.Params().Name)
	}
	return privateKey, nil
}

// DecodePublicKey parses PKIX PEM public key text and checks the curve
// matches the expected one.
func (e *ecdsaEngine) DecodePublicKey(pemText []byte, curve elliptic.Curve) (*ecdsa.PublicKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the public key")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key in PKIX format: %w", err)
	}

	publicKey, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not of type ECDSA")
	}
	if publicKey.Curve != curve {
		return nil, fmt.Errorf("public key is on curve %s, expected %s",
			publicKey.Curve.Params().Name, curve.Params().Name)
	}
	return publicKey, nil
}

// hashMessage applies the fixed per-curve hash to the message.
func hashMessage(message []byte, hash crypto.Hash) []byte {
	h := hash.New()
	h.Write(message)
	return h.Sum(nil)
}
