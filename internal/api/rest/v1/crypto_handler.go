package v1

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
)

// CryptoHandler defines the interface for the encrypt/decrypt, sign/verify
// and key-exchange endpoints.
type CryptoHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Exchange(ctx *gin.Context)
}

type cryptoHandler struct {
	cipherService    operations.CipherService
	signatureService operations.SignatureService
	exchangeService  operations.ExchangeService
}

// NewCryptoHandler creates a new CryptoHandler
func NewCryptoHandler(cipherService operations.CipherService, signatureService operations.SignatureService, exchangeService operations.ExchangeService) CryptoHandler {
	return &cryptoHandler{
		cipherService:    cipherService,
		signatureService: signatureService,
		exchangeService:  exchangeService,
	}
}

// Encrypt handles the POST request to encrypt a message
// @Summary Encrypt a message with RSA-OAEP
// @Description Encrypt a plaintext message with the supplied PEM public key. Only the RSA configurations support encryption.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Encryption Parameters"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cryptoHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	result, err := handler.cipherService.Encrypt(ctx, request.Algorithm, []byte(request.Message), []byte(request.PublicKey))
	if err != nil {
		writeOperationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{
		Algorithm:  string(result.Algorithm),
		Ciphertext: base64.StdEncoding.EncodeToString(result.Ciphertext),
		Padding:    result.Padding,
		Hash:       result.Hash,
	})
}

// Decrypt handles the POST request to decrypt a ciphertext
// @Summary Decrypt RSA-OAEP ciphertext
// @Description Decrypt base64 ciphertext with the supplied PEM private key.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Decryption Parameters"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cryptoHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(request.Ciphertext)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("ciphertext is not valid base64: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	result, err := handler.cipherService.Decrypt(ctx, request.Algorithm, ciphertext, []byte(request.PrivateKey))
	if err != nil {
		writeOperationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{
		Algorithm: string(result.Algorithm),
		Plaintext: string(result.Plaintext),
	})
}

// Sign handles the POST request to sign a message
// @Summary Sign a message
// @Description Sign a message with the supplied PEM private key using the algorithm's fixed hash.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Signing Parameters"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /sign [post]
func (handler *cryptoHandler) Sign(ctx *gin.Context) {
	var request SignRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	result, err := handler.signatureService.Sign(ctx, request.Algorithm, []byte(request.Message), []byte(request.PrivateKey))
	if err != nil {
		writeOperationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{
		Algorithm: string(result.Algorithm),
		Signature: base64.StdEncoding.EncodeToString(result.Signature),
		Hash:      result.Hash,
	})
}

// Verify handles the POST request to verify a signature
// @Summary Verify a signature
// @Description Check a base64 signature against a message and PEM public key. A mismatched signature yields verified=false, not an error.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Verification Parameters"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /verify [post]
func (handler *cryptoHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	signature, err := base64.StdEncoding.DecodeString(request.Signature)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("signature is not valid base64: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	result, err := handler.signatureService.Verify(ctx, request.Algorithm, []byte(request.Message), signature, []byte(request.PublicKey))
	if err != nil {
		writeOperationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{
		Algorithm: string(result.Algorithm),
		Verified:  result.Verified,
		Hash:      result.Hash,
	})
}

// Exchange handles the POST request to derive a shared secret
// @Summary Derive an ECDH shared secret
// @Description Combine the caller's PEM private key with a peer's PEM public key via Diffie-Hellman on the algorithm's curve or family.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body ExchangeRequest true "Key Exchange Parameters"
// @Success 200 {object} ExchangeResponse
// @Failure 400 {object} ErrorResponse
// @Router /exchange [post]
func (handler *cryptoHandler) Exchange(ctx *gin.Context) {
	var request ExchangeRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	result, err := handler.exchangeService.DeriveSharedSecret(ctx, request.Algorithm, []byte(request.PrivateKey), []byte(request.PeerPublicKey))
	if err != nil {
		writeOperationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ExchangeResponse{
		Algorithm:    string(result.Algorithm),
		SharedSecret: base64.StdEncoding.EncodeToString(result.SharedSecret),
		Family:       result.Family,
		Length:       result.Length,
	})
}

// bindAndValidate binds the JSON body and runs struct validation, writing a
// 400 response on failure.
func bindAndValidate(ctx *gin.Context, request interface{}, validateFn func() error) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid request data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return false
	}

	if err := validateFn(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return false
	}

	return true
}
