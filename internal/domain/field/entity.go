package field

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxNameLength = 255

var (
	ErrEmptyName       = errors.New("field name cannot be empty")
	ErrNameTooLong     = errors.New("field name exceeds maximum length")
	ErrInvalidCapacity = errors.New("field capacity must be at least 1")
	ErrNegativePrice   = errors.New("price per person cannot be negative")
)

// Field is a bookable pitch. It is read-only from the booking core's perspective.
type Field struct {
	id             uuid.UUID
	name           string
	capacity       int
	pricePerPerson decimal.Decimal
	active         bool
}

func NewField(name string, capacity int, pricePerPerson decimal.Decimal) (*Field, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrNameTooLong
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if pricePerPerson.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Field{
		id:             uuid.New(),
		name:           name,
		capacity:       capacity,
		pricePerPerson: pricePerPerson,
		active:         true,
	}, nil
}

func ReconstructField(id uuid.UUID, name string, capacity int, pricePerPerson decimal.Decimal, active bool) *Field {
	return &Field{
		id:             id,
		name:           name,
		capacity:       capacity,
		pricePerPerson: pricePerPerson,
		active:         active,
	}
}

func (f *Field) ID() uuid.UUID                   { return f.id }
func (f *Field) Name() string                    { return f.name }
func (f *Field) Capacity() int                   { return f.capacity }
func (f *Field) PricePerPerson() decimal.Decimal { return f.pricePerPerson }
func (f *Field) IsActive() bool                  { return f.active }
