package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
)

// KeyHandler defines the interface for key generation and the algorithm
// catalog.
type KeyHandler interface {
	GenerateKey(ctx *gin.Context)
	ListAlgorithms(ctx *gin.Context)
}

type keyHandler struct {
	keyGenService operations.KeyGenService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyGenService operations.KeyGenService) KeyHandler {
	return &keyHandler{
		keyGenService: keyGenService,
	}
}

// GenerateKey handles the POST request to generate a key pair
// @Summary Generate an asymmetric key pair
// @Description Generate a key pair for one of the nine supported algorithm configurations. Key material is returned to the caller and never stored.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key Generation Parameters"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKey(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid request data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	result, err := handler.keyGenService.Generate(ctx, request.Algorithm)
	if err != nil {
		writeOperationError(ctx, err)
		return
	}

	capabilities := make([]string, len(result.Capabilities))
	for i, c := range result.Capabilities {
		capabilities[i] = string(c)
	}

	ctx.JSON(http.StatusCreated, KeyPairResponse{
		Algorithm:    string(result.Algorithm),
		PublicKey:    string(result.PublicKeyPEM),
		PrivateKey:   string(result.PrivateKeyPEM),
		KeySize:      result.KeySizeBits,
		Curve:        result.Curve,
		Capabilities: capabilities,
	})
}

// ListAlgorithms handles the GET request for the algorithm catalog
// @Summary List the supported algorithm configurations
// @Description Return the capability table: per algorithm its legal operations, key size, curve, approximate security level and fixed signing hash.
// @Tags Key
// @Accept json
// @Produce json
// @Success 200 {array} AlgorithmInfoResponse
// @Router /algorithms [get]
func (handler *keyHandler) ListAlgorithms(ctx *gin.Context) {
	var listResponse = []AlgorithmInfoResponse{}

	for _, id := range algorithm.All() {
		meta := algorithm.MetadataOf(id)

		capabilities := []string{}
		for _, c := range algorithm.Capabilities(id) {
			capabilities = append(capabilities, string(c))
		}

		listResponse = append(listResponse, AlgorithmInfoResponse{
			Algorithm:    string(id),
			KeySize:      meta.KeySizeBits,
			Curve:        meta.CurveName,
			SecurityBits: meta.ApproxSecurityBits,
			Hash:         algorithm.HashName(id),
			Capabilities: capabilities,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}
