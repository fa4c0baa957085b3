package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/primitives"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// oaepOverhead is the fixed OAEP/SHA-256 padding overhead in bytes:
// 2*hashLen + 2.
const oaepOverhead = 2*sha256.Size + 2

// rsaEngine implements the RSAEngine interface.
type rsaEngine struct {
	logger logger.Logger
}

// NewRSAEngine creates and returns a new instance of rsaEngine.
func NewRSAEngine(logger logger.Logger) (primitives.RSAEngine, error) {
	return &rsaEngine{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified modulus bit
// length.
func (r *rsaEngine) GenerateKeys(bits int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	publicKey := &privateKey.PublicKey
	r.logger.Info("Generated RSA-", bits, " key pair")
	return privateKey, publicKey, nil
}

// MaxMessageSize returns the OAEP/SHA-256 plaintext capacity for the given
// modulus bit length.
func (r *rsaEngine) MaxMessageSize(bits int) int {
	return bits/8 - oaepOverhead
}

// Encrypt encrypts plaintext using RSA-OAEP with SHA-256. Plaintexts past
// the OAEP capacity fail with a message-too-large error; nothing is ever
// truncated.
func (r *rsaEngine) Encrypt(plaintext []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	limit := publicKey.Size() - oaepOverhead
	if len(plaintext) > limit {
		return nil, algorithm.NewMessageTooLarge(rsaIDForBits(publicKey.Size()*8), len(plaintext), limit)
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA-OAEP encryption succeeded")
	return ciphertext, nil
}

// Decrypt decrypts RSA-OAEP ciphertext with the private key. The returned
// error never reveals whether padding, key or ciphertext was at fault.
func (r *rsaEngine) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, ciphertext, nil)
	if err != nil {
		return nil, algorithm.NewDecryptionFailed(rsaIDForBits(privateKey.Size() * 8))
	}

	r.logger.Info("RSA-OAEP decryption succeeded")
	return plaintext, nil
}

// Sign creates a SHA-256 PKCS#1 v1.5 signature with the private key.
func (r *rsaEngine) Sign(message []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	hashed := sha256.Sum256(message)
	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	r.logger.Info("RSA signing succeeded")
	return signature, nil
}

// Verify checks a PKCS#1 v1.5 signature. A mismatch is a valid (false, nil)
// result, not an error.
func (r *rsaEngine) Verify(message, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	hashed := sha256.Sum256(message)
	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature); err != nil {
		return false, nil
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

// EncodePrivateKey renders the private key as PKCS#1 PEM text.
func (r *rsaEngine) EncodePrivateKey(privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	return pem.EncodeToMemory(block), nil
}

// EncodePublicKey renders the public key as PKIX PEM text.
func (r *rsaEngine) EncodePublicKey(publicKey *rsa.PublicKey) ([]byte, error) {
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

// DecodePrivateKey parses PKCS#1 or PKCS#8 PEM private key text.
func (r *rsaEngine) DecodePrivateKey(pemText []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the private key")
	}

	// First try to parse as PKCS#1 format
	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	// Fall back to PKCS#8
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key in either PKCS#1 or PKCS#8 format: %w", err)
	}

	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not of type RSA")
	}
	return privateKey, nil
}

// DecodePublicKey parses PKCS#1 or PKIX PEM public key text.
func (r *rsaEngine) DecodePublicKey(pemText []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemText)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the public key")
	}

	publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err == nil {
		return publicKey, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key in either PKCS#1 or PKIX format: %w", err)
	}

	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not of type RSA")
	}
	return publicKey, nil
}

// rsaIDForBits maps a modulus bit length back to its algorithm identifier
// for error reporting. Unknown sizes fall back to RSA-2048 semantics.
func rsaIDForBits(bits int) algorithm.ID {
	switch bits {
	case 3072:
		return algorithm.RSA3072
	case 4096:
		return algorithm.RSA4096
	default:
		return algorithm.RSA2048
	}
}
