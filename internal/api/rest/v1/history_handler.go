package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
)

// HistoryHandler defines the interface for the operation history listing.
type HistoryHandler interface {
	ListOperations(ctx *gin.Context)
}

type historyHandler struct {
	historyService operations.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(historyService operations.HistoryService) HistoryHandler {
	return &historyHandler{
		historyService: historyService,
	}
}

// ListOperations handles the GET request to list the operation history
// @Summary List recorded operations
// @Description Fetch the operation history with optional algorithm/operation filters, pagination and sorting. Records carry outcomes only, never key material.
// @Tags History
// @Accept json
// @Produce json
// @Param algorithm query string false "Algorithm Identifier"
// @Param operation query string false "Operation Name"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} OperationRecordResponse
// @Failure 400 {object} ErrorResponse
// @Router /operations [get]
func (handler *historyHandler) ListOperations(ctx *gin.Context) {
	query := operations.NewRecordQuery()

	if alg := ctx.Query("algorithm"); len(alg) > 0 {
		query.Algorithm = alg
	}
	if op := ctx.Query("operation"); len(op) > 0 {
		query.Operation = op
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		if parsed, err := strconv.Atoi(limit); err == nil {
			query.Limit = parsed
		}
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		if parsed, err := strconv.Atoi(offset); err == nil {
			query.Offset = parsed
		}
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	records, err := handler.historyService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []OperationRecordResponse{}
	for _, record := range records {
		listResponse = append(listResponse, OperationRecordResponse{
			ID:              record.ID,
			Algorithm:       record.Algorithm,
			Operation:       record.Operation,
			Success:         record.Success,
			ErrorKind:       record.ErrorKind,
			DateTimeCreated: record.DateTimeCreated,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}
