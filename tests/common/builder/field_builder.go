//go:build unit || e2e

package builder

import (
	"time"

	"fieldbook/internal/domain/field"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FieldBuilder struct {
	ID             uuid.UUID
	Name           string
	Capacity       int
	PricePerPerson decimal.Decimal
	Active         bool
}

func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{
		ID:             uuid.New(),
		Name:           "Court A",
		Capacity:       4,
		PricePerPerson: decimal.NewFromInt(150),
		Active:         true,
	}
}

func (f *FieldBuilder) With(mutate func(*FieldBuilder)) *FieldBuilder {
	mutate(f)
	return f
}

// Build methods
func (f *FieldBuilder) BuildDomain() *field.Field {
	return field.ReconstructField(f.ID, f.Name, f.Capacity, f.PricePerPerson, f.Active)
}

func (f *FieldBuilder) BuildInfra() sqlc.Fields {
	now := time.Now()
	return sqlc.Fields{
		ID:             f.ID,
		Name:           f.Name,
		Capacity:       int32(f.Capacity),
		PricePerPerson: pgconv.DecimalToNumeric(f.PricePerPerson),
		IsActive:       f.Active,
		CreatedAt:      pgconv.TimeToPgtype(now),
		UpdatedAt:      pgconv.TimeToPgtype(now),
	}
}

func (f *FieldBuilder) BuildView() *queries.FieldView {
	return &queries.FieldView{
		ID:             f.ID,
		Name:           f.Name,
		Capacity:       f.Capacity,
		PricePerPerson: f.PricePerPerson,
		IsActive:       f.Active,
	}
}

// Fluent builder methods
func (f *FieldBuilder) WithCapacity(capacity int) *FieldBuilder {
	f.Capacity = capacity
	return f
}

func (f *FieldBuilder) AsInactive() *FieldBuilder {
	f.Active = false
	return f
}
