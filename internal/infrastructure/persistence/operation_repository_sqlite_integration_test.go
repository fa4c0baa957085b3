//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
	"github.com/EakDev-hub/asymmetric-crypto/internal/infrastructure/persistence/models"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/config"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/testutil"
)

type testDBContext struct {
	DB            *gorm.DB
	OperationRepo operations.Repository
}

func setupTestDB(t *testing.T) *testDBContext {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(config.DatabaseSettings{Path: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.OperationRecordModel{}))

	repo, err := NewGormOperationRepository(db, logger)
	require.NoError(t, err)

	return &testDBContext{DB: db, OperationRepo: repo}
}

func newTestRecord(algorithmName, operation string, success bool) *operations.Record {
	return &operations.Record{
		ID:              uuid.NewString(),
		Algorithm:       algorithmName,
		Operation:       operation,
		Success:         success,
		DateTimeCreated: time.Now().UTC(),
	}
}

func TestOperationSqliteRepository_Create(t *testing.T) {
	ctx := setupTestDB(t)

	record := newTestRecord("RSA-2048", operations.OpEncrypt, true)
	err := ctx.OperationRepo.Create(context.Background(), record)
	require.NoError(t, err)

	var created models.OperationRecordModel
	err = ctx.DB.First(&created, "id = ?", record.ID).Error
	require.NoError(t, err)
	assert.Equal(t, record.Algorithm, created.Algorithm)
	assert.Equal(t, record.Operation, created.Operation)
	assert.True(t, created.Success)
}

func TestOperationSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := setupTestDB(t)

	invalidRecord := &operations.Record{ID: uuid.NewString(), Algorithm: "RSA-2048", Operation: "shred"}
	err := ctx.OperationRepo.Create(context.Background(), invalidRecord)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestOperationSqliteRepository_List(t *testing.T) {
	ctx := setupTestDB(t)

	require.NoError(t, ctx.OperationRepo.Create(context.Background(), newTestRecord("RSA-2048", operations.OpEncrypt, true)))
	require.NoError(t, ctx.OperationRepo.Create(context.Background(), newTestRecord("Ed25519", operations.OpSign, true)))

	records, err := ctx.OperationRepo.List(context.Background(), operations.NewRecordQuery())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestOperationSqliteRepository_List_WithFiltersAndSorting(t *testing.T) {
	ctx := setupTestDB(t)

	older := newTestRecord("RSA-2048", operations.OpEncrypt, true)
	older.DateTimeCreated = time.Now().UTC().Add(-2 * time.Hour)
	newer := newTestRecord("X25519", operations.OpKeyExchange, false)
	newer.ErrorKind = "key_exchange_failed"
	newer.DateTimeCreated = time.Now().UTC().Add(-1 * time.Hour)

	require.NoError(t, ctx.OperationRepo.Create(context.Background(), older))
	require.NoError(t, ctx.OperationRepo.Create(context.Background(), newer))

	// Filter by algorithm
	query := operations.NewRecordQuery()
	query.Algorithm = "X25519"
	records, err := ctx.OperationRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, operations.OpKeyExchange, records[0].Operation)
	assert.False(t, records[0].Success)
	assert.Equal(t, "key_exchange_failed", records[0].ErrorKind)

	// Filter by operation
	query = operations.NewRecordQuery()
	query.Operation = operations.OpEncrypt
	records, err = ctx.OperationRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "RSA-2048", records[0].Algorithm)

	// Newest first by default
	records, err = ctx.OperationRepo.List(context.Background(), operations.NewRecordQuery())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].DateTimeCreated.After(records[1].DateTimeCreated))

	// Pagination
	query = operations.NewRecordQuery()
	query.Limit = 1
	query.Offset = 1
	records, err = ctx.OperationRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestOperationSqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := setupTestDB(t)

	query := operations.NewRecordQuery()
	query.SortBy = "error_kind"
	_, err := ctx.OperationRepo.List(context.Background(), query)
	assert.Error(t, err)
}
