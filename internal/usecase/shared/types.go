package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              string
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

// Actor is the authenticated caller as asserted by the identity provider.
type Actor struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

func (a Actor) IsAnonymous() bool {
	return a.UserID == ""
}
