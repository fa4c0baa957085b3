package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
	"github.com/EakDev-hub/asymmetric-crypto/internal/infrastructure/persistence/models"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

type gormOperationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOperationRepository creates a new GORM-based operations.Repository
// implementation.
func NewGormOperationRepository(db *gorm.DB, logger logger.Logger) (operations.Repository, error) {
	return &gormOperationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOperationRepository) Create(ctx context.Context, record *operations.Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OperationRecordModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create operation record: %w", err)
	}

	r.logger.Info("Recorded ", record.Operation, " operation with id ", record.ID)
	return nil
}

func (r *gormOperationRepository) List(ctx context.Context, query *operations.RecordQuery) ([]*operations.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OperationRecordModel
	dbQuery := r.db.WithContext(ctx).Model(&models.OperationRecordModel{})

	if query.Algorithm != "" {
		dbQuery = dbQuery.Where("algorithm = ?", query.Algorithm)
	}
	if query.Operation != "" {
		dbQuery = dbQuery.Where("operation = ?", query.Operation)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch operation records: %w", err)
	}

	domainList := make([]*operations.Record, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
