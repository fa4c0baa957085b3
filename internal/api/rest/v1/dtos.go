package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Error deliberately ignored: registration only fails for an empty tag.
	_ = validate.RegisterValidation("algorithm", validators.AlgorithmValidation)
}

// GenerateKeyRequest asks for a fresh key pair.
type GenerateKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"required,algorithm"`
}

// Validate checks the request fields.
func (r *GenerateKeyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for GenerateKeyRequest: %w", err)
	}
	return nil
}

// EncryptRequest carries a plaintext message and the PEM public key to
// encrypt it with.
type EncryptRequest struct {
	Algorithm string `json:"algorithm" validate:"required,algorithm"`
	Message   string `json:"message" validate:"required"`
	PublicKey string `json:"publicKey" validate:"required"`
}

// Validate checks the request fields.
func (r *EncryptRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for EncryptRequest: %w", err)
	}
	return nil
}

// DecryptRequest carries base64 ciphertext and the PEM private key to
// decrypt it with.
type DecryptRequest struct {
	Algorithm  string `json:"algorithm" validate:"required,algorithm"`
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
	PrivateKey string `json:"privateKey" validate:"required"`
}

// Validate checks the request fields.
func (r *DecryptRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for DecryptRequest: %w", err)
	}
	return nil
}

// SignRequest carries a message and the PEM private key to sign it with.
type SignRequest struct {
	Algorithm  string `json:"algorithm" validate:"required,algorithm"`
	Message    string `json:"message" validate:"required"`
	PrivateKey string `json:"privateKey" validate:"required"`
}

// Validate checks the request fields.
func (r *SignRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for SignRequest: %w", err)
	}
	return nil
}

// VerifyRequest carries a message, a base64 signature and the PEM public
// key to check it against.
type VerifyRequest struct {
	Algorithm string `json:"algorithm" validate:"required,algorithm"`
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required,base64"`
	PublicKey string `json:"publicKey" validate:"required"`
}

// Validate checks the request fields.
func (r *VerifyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for VerifyRequest: %w", err)
	}
	return nil
}

// ExchangeRequest carries the caller's PEM private key and the peer's PEM
// public key.
type ExchangeRequest struct {
	Algorithm     string `json:"algorithm" validate:"required,algorithm"`
	PrivateKey    string `json:"privateKey" validate:"required"`
	PeerPublicKey string `json:"peerPublicKey" validate:"required"`
}

// Validate checks the request fields.
func (r *ExchangeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for ExchangeRequest: %w", err)
	}
	return nil
}

// KeyPairResponse returns freshly generated PEM key material together with
// the algorithm's display metadata.
type KeyPairResponse struct {
	Algorithm    string   `json:"algorithm"`
	PublicKey    string   `json:"publicKey"`
	PrivateKey   string   `json:"privateKey"`
	KeySize      int      `json:"keySize"`
	Curve        string   `json:"curve,omitempty"`
	Capabilities []string `json:"capabilities"`
}

// EncryptResponse returns base64 ciphertext plus the parameters used.
type EncryptResponse struct {
	Algorithm  string `json:"algorithm"`
	Ciphertext string `json:"ciphertext"`
	Padding    string `json:"padding"`
	Hash       string `json:"hash"`
}

// DecryptResponse returns the recovered plaintext.
type DecryptResponse struct {
	Algorithm string `json:"algorithm"`
	Plaintext string `json:"plaintext"`
}

// SignResponse returns a base64 signature plus the hash used.
type SignResponse struct {
	Algorithm string `json:"algorithm"`
	Signature string `json:"signature"`
	Hash      string `json:"hash"`
}

// VerifyResponse reports the boolean outcome of a signature check.
type VerifyResponse struct {
	Algorithm string `json:"algorithm"`
	Verified  bool   `json:"verified"`
	Hash      string `json:"hash"`
}

// ExchangeResponse returns the base64 shared secret plus the curve or
// family it was derived on.
type ExchangeResponse struct {
	Algorithm    string `json:"algorithm"`
	SharedSecret string `json:"sharedSecret"`
	Family       string `json:"family"`
	Length       int    `json:"length"`
}

// AlgorithmInfoResponse describes one capability table entry for display.
type AlgorithmInfoResponse struct {
	Algorithm    string   `json:"algorithm"`
	KeySize      int      `json:"keySize"`
	Curve        string   `json:"curve,omitempty"`
	SecurityBits int      `json:"securityBits"`
	Hash         string   `json:"hash,omitempty"`
	Capabilities []string `json:"capabilities"`
}

// OperationRecordResponse is one entry of the operation history listing.
type OperationRecordResponse struct {
	ID              string    `json:"id"`
	Algorithm       string    `json:"algorithm"`
	Operation       string    `json:"operation"`
	Success         bool      `json:"success"`
	ErrorKind       string    `json:"errorKind,omitempty"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// ErrorResponse carries a machine-checkable kind plus a human-readable
// message. SupportedOperations is populated for capability-gate rejections
// so callers can self-correct.
type ErrorResponse struct {
	Kind                string   `json:"kind,omitempty"`
	Message             string   `json:"message"`
	SupportedOperations []string `json:"supportedOperations,omitempty"`
}
