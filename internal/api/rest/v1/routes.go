package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenService operations.KeyGenService,
	cipherService operations.CipherService,
	signatureService operations.SignatureService,
	exchangeService operations.ExchangeService,
	historyService operations.HistoryService) {

	v1 := r.Group(BasePath)

	// Key and catalog routes
	keyHandler := NewKeyHandler(keyGenService)
	v1.POST("/keys", keyHandler.GenerateKey)
	v1.GET("/algorithms", keyHandler.ListAlgorithms)

	// Operation routes
	cryptoHandler := NewCryptoHandler(cipherService, signatureService, exchangeService)
	v1.POST("/encrypt", cryptoHandler.Encrypt)
	v1.POST("/decrypt", cryptoHandler.Decrypt)
	v1.POST("/sign", cryptoHandler.Sign)
	v1.POST("/verify", cryptoHandler.Verify)
	v1.POST("/exchange", cryptoHandler.Exchange)

	// History routes
	historyHandler := NewHistoryHandler(historyService)
	v1.GET("/operations", historyHandler.ListOperations)
}
