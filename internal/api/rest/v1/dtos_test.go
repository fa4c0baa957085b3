//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   GenerateKeyRequest
		shouldErr bool
	}{
		{"Valid RSA-2048", GenerateKeyRequest{Algorithm: "RSA-2048"}, false},
		{"Valid RSA-4096", GenerateKeyRequest{Algorithm: "RSA-4096"}, false},
		{"Valid P-521", GenerateKeyRequest{Algorithm: "P-521"}, false},
		{"Valid secp256k1", GenerateKeyRequest{Algorithm: "secp256k1"}, false},
		{"Valid Ed25519", GenerateKeyRequest{Algorithm: "Ed25519"}, false},
		{"Valid X25519", GenerateKeyRequest{Algorithm: "X25519"}, false},

		{"Invalid RSA-1024", GenerateKeyRequest{Algorithm: "RSA-1024"}, true},
		{"Invalid lowercase", GenerateKeyRequest{Algorithm: "ed25519"}, true},
		{"Invalid empty", GenerateKeyRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestEncryptRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   EncryptRequest
		shouldErr bool
	}{
		{"Valid", EncryptRequest{Algorithm: "RSA-2048", Message: "hello", PublicKey: "pem"}, false},
		{"Missing message", EncryptRequest{Algorithm: "RSA-2048", PublicKey: "pem"}, true},
		{"Missing public key", EncryptRequest{Algorithm: "RSA-2048", Message: "hello"}, true},
		{"Unknown algorithm", EncryptRequest{Algorithm: "3DES", Message: "hello", PublicKey: "pem"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestDecryptRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   DecryptRequest
		shouldErr bool
	}{
		{"Valid", DecryptRequest{Algorithm: "RSA-2048", Ciphertext: "aGVsbG8=", PrivateKey: "pem"}, false},
		{"Ciphertext not base64", DecryptRequest{Algorithm: "RSA-2048", Ciphertext: "!!!", PrivateKey: "pem"}, true},
		{"Missing private key", DecryptRequest{Algorithm: "RSA-2048", Ciphertext: "aGVsbG8="}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestVerifyRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   VerifyRequest
		shouldErr bool
	}{
		{"Valid", VerifyRequest{Algorithm: "Ed25519", Message: "msg", Signature: "c2ln", PublicKey: "pem"}, false},
		{"Signature not base64", VerifyRequest{Algorithm: "Ed25519", Message: "msg", Signature: "???", PublicKey: "pem"}, true},
		{"Missing signature", VerifyRequest{Algorithm: "Ed25519", Message: "msg", PublicKey: "pem"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestExchangeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ExchangeRequest
		shouldErr bool
	}{
		{"Valid X25519", ExchangeRequest{Algorithm: "X25519", PrivateKey: "priv", PeerPublicKey: "pub"}, false},
		{"Valid P-256", ExchangeRequest{Algorithm: "P-256", PrivateKey: "priv", PeerPublicKey: "pub"}, false},
		{"Missing peer key", ExchangeRequest{Algorithm: "X25519", PrivateKey: "priv"}, true},
		{"Missing private key", ExchangeRequest{Algorithm: "X25519", PeerPublicKey: "pub"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
