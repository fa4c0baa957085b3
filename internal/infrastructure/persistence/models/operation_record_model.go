package models

import (
	"time"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
)

// OperationRecordModel is the GORM database model for the operation history
// (infrastructure concern). It stores outcomes only, never key material.
type OperationRecordModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Algorithm       string    `gorm:"not null;index;type:varchar(20)"`
	Operation       string    `gorm:"not null;index;type:varchar(20)"`
	Success         bool      `gorm:"not null"`
	ErrorKind       string    `gorm:"type:varchar(40)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (OperationRecordModel) TableName() string {
	return "operation_records"
}

// ToDomain converts GORM model to domain entity
func (m *OperationRecordModel) ToDomain() *operations.Record {
	return &operations.Record{
		ID:              m.ID,
		Algorithm:       m.Algorithm,
		Operation:       m.Operation,
		Success:         m.Success,
		ErrorKind:       m.ErrorKind,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OperationRecordModel) FromDomain(r *operations.Record) {
	m.ID = r.ID
	m.Algorithm = r.Algorithm
	m.Operation = r.Operation
	m.Success = r.Success
	m.ErrorKind = r.ErrorKind
	m.DateTimeCreated = r.DateTimeCreated
}
