package operations

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Record is one entry in the operation history: which algorithm and
// operation ran and how it ended. It deliberately carries no key material,
// message content or derived secrets.
type Record struct {
	ID              string `validate:"required,uuid4"`
	Algorithm       string `validate:"required"`
	Operation       string `validate:"required,oneof=generate encrypt decrypt sign verify key-exchange"`
	Success         bool
	ErrorKind       string
	DateTimeCreated time.Time
}

// Validate checks the structural integrity of a record before persisting it.
func (r *Record) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for Record: %w", err)
	}
	return nil
}

// RecordQuery filters and pages the operation history listing.
type RecordQuery struct {
	Algorithm string
	Operation string `validate:"omitempty,oneof=generate encrypt decrypt sign verify key-exchange"`

	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created algorithm operation"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewRecordQuery creates a query with default pagination and sorting.
func NewRecordQuery() *RecordQuery {
	return &RecordQuery{
		Limit:     50,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate checks the query parameters.
func (q *RecordQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for RecordQuery: %w", err)
	}
	return nil
}

// Repository persists and lists operation records.
type Repository interface {
	Create(ctx context.Context, record *Record) error
	List(ctx context.Context, query *RecordQuery) ([]*Record, error)
}

// Operation names as recorded in the history. These cover the five
// capabilities plus key generation, which every algorithm supports.
const (
	OpGenerate    = "generate"
	OpEncrypt     = "encrypt"
	OpDecrypt     = "decrypt"
	OpSign        = "sign"
	OpVerify      = "verify"
	OpKeyExchange = "key-exchange"
)

