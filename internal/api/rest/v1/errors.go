package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
)

// writeOperationError renders a failed operation as an ErrorResponse. All
// operation errors are client-correctable and map to 400; anything else is
// an internal failure.
func writeOperationError(ctx *gin.Context, err error) {
	var opErr *algorithm.OperationError
	if !errors.As(err, &opErr) {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	response := ErrorResponse{
		Kind:    string(opErr.Kind),
		Message: err.Error(),
	}
	for _, c := range opErr.Allowed {
		response.SupportedOperations = append(response.SupportedOperations, string(c))
	}

	ctx.JSON(http.StatusBadRequest, response)
}
