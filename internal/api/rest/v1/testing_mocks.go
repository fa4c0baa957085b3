package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
)

// MockKeyGenService is a mock of operations.KeyGenService for handler tests.
type MockKeyGenService struct {
	mock.Mock
}

// Generate mocks key generation.
func (m *MockKeyGenService) Generate(ctx context.Context, algorithmName string) (*operations.KeyPairResult, error) {
	args := m.Called(ctx, algorithmName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.KeyPairResult), args.Error(1)
}

// MockCipherService is a mock of operations.CipherService for handler tests.
type MockCipherService struct {
	mock.Mock
}

// Encrypt mocks encryption.
func (m *MockCipherService) Encrypt(ctx context.Context, algorithmName string, message, publicKeyPEM []byte) (*operations.EncryptResult, error) {
	args := m.Called(ctx, algorithmName, message, publicKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.EncryptResult), args.Error(1)
}

// Decrypt mocks decryption.
func (m *MockCipherService) Decrypt(ctx context.Context, algorithmName string, ciphertext, privateKeyPEM []byte) (*operations.DecryptResult, error) {
	args := m.Called(ctx, algorithmName, ciphertext, privateKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.DecryptResult), args.Error(1)
}

// MockSignatureService is a mock of operations.SignatureService for handler
// tests.
type MockSignatureService struct {
	mock.Mock
}

// Sign mocks signing.
func (m *MockSignatureService) Sign(ctx context.Context, algorithmName string, message, privateKeyPEM []byte) (*operations.SignResult, error) {
	args := m.Called(ctx, algorithmName, message, privateKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.SignResult), args.Error(1)
}

// Verify mocks signature verification.
func (m *MockSignatureService) Verify(ctx context.Context, algorithmName string, message, signature, publicKeyPEM []byte) (*operations.VerifyResult, error) {
	args := m.Called(ctx, algorithmName, message, signature, publicKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.VerifyResult), args.Error(1)
}

// MockExchangeService is a mock of operations.ExchangeService for handler
// tests.
type MockExchangeService struct {
	mock.Mock
}

// DeriveSharedSecret mocks key agreement.
func (m *MockExchangeService) DeriveSharedSecret(ctx context.Context, algorithmName string, privateKeyPEM, peerPublicKeyPEM []byte) (*operations.ExchangeResult, error) {
	args := m.Called(ctx, algorithmName, privateKeyPEM, peerPublicKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.ExchangeResult), args.Error(1)
}

// MockHistoryService is a mock of operations.HistoryService for handler
// tests.
type MockHistoryService struct {
	mock.Mock
}

// List mocks the history listing.
func (m *MockHistoryService) List(ctx context.Context, query *operations.RecordQuery) ([]*operations.Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operations.Record), args.Error(1)
}
