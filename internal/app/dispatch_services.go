package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// recorder appends outcomes to the operation history. A nil repository
// disables recording (the CLI runs without a database). Recording failures
// are logged and never fail the operation itself.
type recorder struct {
	records operations.Repository
	logger  logger.Logger
}

func (r *recorder) record(ctx context.Context, algorithmName, op string, opErr error) {
	if r.records == nil {
		return
	}

	rec := &operations.Record{
		ID:              uuid.NewString(),
		Algorithm:       algorithmName,
		Operation:       op,
		Success:         opErr == nil,
		ErrorKind:       string(algorithm.KindOf(opErr)),
		DateTimeCreated: time.Now().UTC(),
	}
	if err := r.records.Create(ctx, rec); err != nil {
		r.logger.Warn("failed to record ", op, " operation: ", err)
		return
	}
	r.logger.Debug("recorded ", op, " operation for ", algorithmName)
}

// gate parses the algorithm name and checks the requested operation against
// the capability table. Unsupported combinations are rejected here, before
// any key material is touched.
func gate(name string, op algorithm.Capability) (algorithm.ID, error) {
	id, err := algorithm.Parse(name)
	if err != nil {
		return "", err
	}
	if !algorithm.Supports(id, op) {
		return "", algorithm.NewUnsupportedOperation(id, op)
	}
	return id, nil
}

// keyGenService implements operations.KeyGenService.
type keyGenService struct {
	recorder
	engines *Engines
}

// NewKeyGenService creates the key-generation service. records may be nil
// to disable history recording.
func NewKeyGenService(engines *Engines, records operations.Repository, logger logger.Logger) (operations.KeyGenService, error) {
	return &keyGenService{
		recorder: recorder{records: records, logger: logger},
		engines:  engines,
	}, nil
}

func (s *keyGenService) Generate(ctx context.Context, algorithmName string) (result *operations.KeyPairResult, err error) {
	defer func() { s.record(ctx, algorithmName, operations.OpGenerate, err) }()

	id, err := algorithm.Parse(algorithmName)
	if err != nil {
		return nil, err
	}

	var privPEM, pubPEM []byte
	switch {
	case id.IsRSA():
		priv, pub, genErr := s.engines.RSA.GenerateKeys(algorithm.MetadataOf(id).KeySizeBits)
		if genErr != nil {
			return nil, genErr
		}
		if privPEM, err = s.engines.RSA.EncodePrivateKey(priv); err != nil {
			return nil, err
		}
		if pubPEM, err = s.engines.RSA.EncodePublicKey(pub); err != nil {
			return nil, err
		}

	case id.IsNISTCurve():
		priv, pub, genErr := s.engines.ECDSA.GenerateKeys(nistCurve(id))
		if genErr != nil {
			return nil, genErr
		}
		if privPEM, err = s.engines.ECDSA.EncodePrivateKey(priv); err != nil {
			return nil, err
		}
		if pubPEM, err = s.engines.ECDSA.EncodePublicKey(pub); err != nil {
			return nil, err
		}

	case id == algorithm.Secp256k1:
		priv, pub, genErr := s.engines.Secp256k1.GenerateKeys()
		if genErr != nil {
			return nil, genErr
		}
		if privPEM, err = s.engines.Secp256k1.EncodePrivateKey(priv); err != nil {
			return nil, err
		}
		if pubPEM, err = s.engines.Secp256k1.EncodePublicKey(pub); err != nil {
			return nil, err
		}

	case id == algorithm.Ed25519:
		priv, pub, genErr := s.engines.Ed25519.GenerateKeys()
		if genErr != nil {
			return nil, genErr
		}
		if privPEM, err = s.engines.Ed25519.EncodePrivateKey(priv); err != nil {
			return nil, err
		}
		if pubPEM, err = s.engines.Ed25519.EncodePublicKey(pub); err != nil {
			return nil, err
		}

	case id == algorithm.X25519:
		priv, pub, genErr := s.engines.X25519.GenerateKeys()
		if genErr != nil {
			return nil, genErr
		}
		if privPEM, err = s.engines.X25519.EncodePrivateKey(priv); err != nil {
			return nil, err
		}
		if pubPEM, err = s.engines.X25519.EncodePublicKey(pub); err != nil {
			return nil, err
		}

	default:
		return nil, algorithm.NewUnsupportedAlgorithm(algorithmName)
	}

	meta := algorithm.MetadataOf(id)
	return &operations.KeyPairResult{
		Algorithm:     id,
		PublicKeyPEM:  pubPEM,
		PrivateKeyPEM: privPEM,
		KeySizeBits:   meta.KeySizeBits,
		Curve:         meta.CurveName,
		Capabilities:  algorithm.Capabilities(id),
	}, nil
}

// cipherService implements operations.CipherService. Only RSA passes the
// encrypt/decrypt capability gate.
type cipherService struct {
	recorder
	engines *Engines
}

// NewCipherService creates the encrypt/decrypt service. records may be nil
// to disable history recording.
func NewCipherService(engines *Engines, records operations.Repository, logger logger.Logger) (operations.CipherService, error) {
	return &cipherService{
		recorder: recorder{records: records, logger: logger},
		engines:  engines,
	}, nil
}

func (s *cipherService) Encrypt(ctx context.Context, algorithmName string, message, publicKeyPEM []byte) (result *operations.EncryptResult, err error) {
	defer func() { s.record(ctx, algorithmName, operations.OpEncrypt, err) }()

	id, err := gate(algorithmName, algorithm.CapEncrypt)
	if err != nil {
		return nil, err
	}

	publicKey, decodeErr := s.engines.RSA.DecodePublicKey(publicKeyPEM)
	if decodeErr != nil {
		return nil, algorithm.NewInvalidKeyFormat(id, "public key is not valid PEM for this algorithm", decodeErr)
	}

	ciphertext, err := s.engines.RSA.Encrypt(message, publicKey)
	if err != nil {
		return nil, err
	}

	return &operations.EncryptResult{
		Algorithm:  id,
		Ciphertext: ciphertext,
		Padding:    "OAEP",
		Hash:       algorithm.HashName(id),
	}, nil
}

func (s *cipherService) Decrypt(ctx context.Context, algorithmName string, ciphertext, privateKeyPEM []byte) (result *operations.DecryptResult, err error) {
	defer func() { s.record(ctx, algorithmName, operations.OpDecrypt, err) }()

	id, err := gate(algorithmName, algorithm.CapDecrypt)
	if err != nil {
		return nil, err
	}

	privateKey, decodeErr := s.engines.RSA.DecodePrivateKey(privateKeyPEM)
	if decodeErr != nil {
		return nil, algorithm.NewInvalidKeyFormat(id, "private key is not valid PEM for this algorithm", decodeErr)
	}

	plaintext, err := s.engines.RSA.Decrypt(ciphertext, privateKey)
	if err != nil {
		return nil, err
	}

	return &operations.DecryptResult{
		Algorithm: id,
		Plaintext: plaintext,
	}, nil
}

// signatureService implements operations.SignatureService.
type signatureService struct {
	recorder
	engines *Engines
}

// NewSignatureService creates the sign/verify service. records may be nil
// to disable history recording.
func NewSignatureService(engines *Engines, records operations.Repository, logger logger.Logger) (operations.SignatureService, error) {
	return &signatureService{
		recorder: recorder{records: records, logger: logger},
		engines:  engines,
	}, nil
}

func (s *signatureService) Sign(ctx context.Context, algorithmName string, message, privateKeyPEM []byte) (result *operations.SignResult, err error) {
	defer func() { s.record(ctx, algorithmName, operations.OpSign, err) }()

	id, err := gate(algorithmName, algorithm.CapSign)
	if err != nil {
		return nil, err
	}

	var signature []byte
	switch {
	case id.IsRSA():
		privateKey, decodeErr := s.engines.RSA.DecodePrivateKey(privateKeyPEM)
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "private key is not valid PEM for this algorithm", decodeErr)
		}
		if signature, err = s.engines.RSA.Sign(message, privateKey); err != nil {
			return nil, err
		}

	case id.IsNISTCurve():
		privateKey, decodeErr := s.engines.ECDSA.DecodePrivateKey(privateKeyPEM, nistCurve(id))
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "private key is not valid PEM for this algorithm", decodeErr)
		}
		hash, _ := algorithm.HashOf(id)
		if signature, err = s.engines.ECDSA.Sign(message, privateKey, hash); err != nil {
			return nil, err
		}

	case id == algorithm.Secp256k1:
		privateKey, decodeErr := s.engines.Secp256k1.DecodePrivateKey(privateKeyPEM)
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "private key is not valid PEM for this algorithm", decodeErr)
		}
		if signature, err = s.engines.Secp256k1.Sign(message, privateKey); err != nil {
			return nil, err
		}

	default: // Ed25519; the gate has already excluded everything else
		privateKey, decodeErr := s.engines.Ed25519.DecodePrivateKey(privateKeyPEM)
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "private key is not valid PEM for this algorithm", decodeErr)
		}
		if signature, err = s.engines.Ed25519.Sign(message, privateKey); err != nil {
			return nil, err
		}
	}

	return &operations.SignResult{
		Algorithm: id,
		Signature: signature,
		Hash:      algorithm.HashName(id),
	}, nil
}

func (s *signatureService) Verify(ctx context.Context, algorithmName string, message, signature, publicKeyPEM []byte) (result *operations.VerifyResult, err error) {
	defer func() { s.record(ctx, algorithmName, operations.OpVerify, err) }()

	id, err := gate(algorithmName, algorithm.CapVerify)
	if err != nil {
		return nil, err
	}

	var verified bool
	switch {
	case id.IsRSA():
		publicKey, decodeErr := s.engines.RSA.DecodePublicKey(publicKeyPEM)
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "public key is not valid PEM for this algorithm", decodeErr)
		}
		if verified, err = s.engines.RSA.Verify(message, signature, publicKey); err != nil {
			return nil, err
		}

	case id.IsNISTCurve():
		publicKey, decodeErr := s.engines.ECDSA.DecodePublicKey(publicKeyPEM, nistCurve(id))
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "public key is not valid PEM for this algorithm", decodeErr)
		}
		hash, _ := algorithm.HashOf(id)
		if verified, err = s.engines.ECDSA.Verify(message, signature, publicKey, hash); err != nil {
			return nil, err
		}

	case id == algorithm.Secp256k1:
		publicKey, decodeErr := s.engines.Secp256k1.DecodePublicKey(publicKeyPEM)
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "public key is not valid PEM for this algorithm", decodeErr)
		}
		if verified, err = s.engines.Secp256k1.Verify(message, signature, publicKey); err != nil {
			return nil, err
		}

	default: // Ed25519
		publicKey, decodeErr := s.engines.Ed25519.DecodePublicKey(publicKeyPEM)
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "public key is not valid PEM for this algorithm", decodeErr)
		}
		if verified, err = s.engines.Ed25519.Verify(message, signature, publicKey); err != nil {
			return nil, err
		}
	}

	return &operations.VerifyResult{
		Algorithm: id,
		Verified:  verified,
		Hash:      algorithm.HashName(id),
	}, nil
}

// exchangeService implements operations.ExchangeService.
type exchangeService struct {
	recorder
	engines *Engines
}

// NewExchangeService creates the key-exchange service. records may be nil
// to disable history recording.
func NewExchangeService(engines *Engines, records operations.Repository, logger logger.Logger) (operations.ExchangeService, error) {
	return &exchangeService{
		recorder: recorder{records: records, logger: logger},
		engines:  engines,
	}, nil
}

func (s *exchangeService) DeriveSharedSecret(ctx context.Context, algorithmName string, privateKeyPEM, peerPublicKeyPEM []byte) (result *operations.ExchangeResult, err error) {
	defer func() { s.record(ctx, algorithmName, operations.OpKeyExchange, err) }()

	id, err := gate(algorithmName, algorithm.CapKeyExchange)
	if err != nil {
		return nil, err
	}

	var secret []byte
	var family string
	switch {
	case id.IsNISTCurve():
		privateKey, decodeErr := s.engines.ECDSA.DecodePrivateKey(privateKeyPEM, nistCurve(id))
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "private key is not valid PEM for this algorithm", decodeErr)
		}
		peerKey, peerErr := s.engines.ECDSA.DecodePublicKey(peerPublicKeyPEM, nistCurve(id))
		if peerErr != nil {
			return nil, algorithm.NewKeyExchangeFailed(id, "peer public key is malformed or on a different curve", peerErr)
		}
		if secret, err = s.engines.ECDSA.SharedSecret(privateKey, peerKey); err != nil {
			return nil, algorithm.NewKeyExchangeFailed(id, "key agreement failed", err)
		}
		family = algorithm.MetadataOf(id).CurveName

	case id == algorithm.Secp256k1:
		privateKey, decodeErr := s.engines.Secp256k1.DecodePrivateKey(privateKeyPEM)
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "private key is not valid PEM for this algorithm", decodeErr)
		}
		peerKey, peerErr := s.engines.Secp256k1.DecodePublicKey(peerPublicKeyPEM)
		if peerErr != nil {
			return nil, algorithm.NewKeyExchangeFailed(id, "peer public key is malformed or on a different curve", peerErr)
		}
		if secret, err = s.engines.Secp256k1.SharedSecret(privateKey, peerKey); err != nil {
			return nil, algorithm.NewKeyExchangeFailed(id, "key agreement failed", err)
		}
		family = algorithm.MetadataOf(id).CurveName

	default: // X25519
		privateKey, decodeErr := s.engines.X25519.DecodePrivateKey(privateKeyPEM)
		if decodeErr != nil {
			return nil, algorithm.NewInvalidKeyFormat(id, "private key is not valid PEM for this algorithm", decodeErr)
		}
		peerKey, peerErr := s.engines.X25519.DecodePublicKey(peerPublicKeyPEM)
		if peerErr != nil {
			return nil, algorithm.NewKeyExchangeFailed(id, "peer public key is malformed or from a different family", peerErr)
		}
		if secret, err = s.engines.X25519.SharedSecret(privateKey, peerKey); err != nil {
			return nil, algorithm.NewKeyExchangeFailed(id, "key agreement failed", err)
		}
		family = string(algorithm.X25519)
	}

	return &operations.ExchangeResult{
		Algorithm:    id,
		SharedSecret: secret,
		Family:       family,
		Length:       len(secret),
	}, nil
}

// historyService implements operations.HistoryService.
type historyService struct {
	records operations.Repository
	logger  logger.Logger
}

// NewHistoryService creates the operation history listing service.
func NewHistoryService(records operations.Repository, logger logger.Logger) (operations.HistoryService, error) {
	if records == nil {
		return nil, fmt.Errorf("operation repository is required")
	}
	return &historyService{
		records: records,
		logger:  logger,
	}, nil
}

func (s *historyService) List(ctx context.Context, query *operations.RecordQuery) ([]*operations.Record, error) {
	if query == nil {
		query = operations.NewRecordQuery()
	}
	return s.records.List(ctx, query)
}
