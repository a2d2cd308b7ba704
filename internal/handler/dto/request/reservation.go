package request

import (
	"strings"

	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Date and Time stay optional here; an incomplete selection is a domain error.
type CreateReservationRequest struct {
	FieldID uuid.UUID `json:"field_id" binding:"required"`
	Date    string    `json:"date" binding:"omitempty,max=10"`
	Time    string    `json:"time" binding:"omitempty,max=5"`
}

func (r CreateReservationRequest) ToInput(actor shared.Actor, idempotencyKey *uuid.UUID) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		Actor:          actor,
		FieldID:        r.FieldID,
		Date:           strings.TrimSpace(r.Date),
		Time:           strings.TrimSpace(r.Time),
		IdempotencyKey: idempotencyKey,
	}
}

type ListReservationsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	After string `form:"after"`
}

func (q ListReservationsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
