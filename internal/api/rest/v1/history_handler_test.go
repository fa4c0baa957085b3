//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
)

func TestHistoryHandler_ListOperations_Success(t *testing.T) {
	mockHistoryService := new(MockHistoryService)

	handler := NewHistoryHandler(mockHistoryService)

	record := &operations.Record{
		ID:              "abc-123",
		Algorithm:       "RSA-2048",
		Operation:       operations.OpEncrypt,
		Success:         true,
		DateTimeCreated: time.Now(),
	}

	mockHistoryService.
		On("List", mock.Anything, mock.Anything).
		Return([]*operations.Record{record}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/operations", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListOperations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	assert.Contains(t, w.Body.String(), "encrypt")
	mockHistoryService.AssertExpectations(t)
}

func TestHistoryHandler_ListOperations_WithFilters(t *testing.T) {
	mockHistoryService := new(MockHistoryService)

	handler := NewHistoryHandler(mockHistoryService)

	mockHistoryService.
		On("List", mock.Anything, mock.MatchedBy(func(query *operations.RecordQuery) bool {
			return query.Algorithm == "X25519" &&
				query.Operation == operations.OpKeyExchange &&
				query.Limit == 10 &&
				query.Offset == 5
		})).
		Return([]*operations.Record{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/operations?algorithm=X25519&operation=key-exchange&limit=10&offset=5", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListOperations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockHistoryService.AssertExpectations(t)
}

func TestHistoryHandler_ListOperations_ValidationError(t *testing.T) {
	mockHistoryService := new(MockHistoryService)

	handler := NewHistoryHandler(mockHistoryService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/operations?sortOrder=invalid", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListOperations(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockHistoryService.AssertNotCalled(t, "List")
}

func TestHistoryHandler_ListOperations_ServiceError(t *testing.T) {
	mockHistoryService := new(MockHistoryService)

	handler := NewHistoryHandler(mockHistoryService)

	mockHistoryService.
		On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/operations", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListOperations(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockHistoryService.AssertExpectations(t)
}
