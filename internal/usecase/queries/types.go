package queries

import (
	"time"

	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCursor     = errs.New("invalid cursor")
	ErrReservationAccess = errs.New("reservation belongs to another user")
)

// Read models (DTO for read side)
type FieldView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Capacity       int             `json:"capacity"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	IsActive       bool            `json:"is_active"`
}

type AvailabilityView struct {
	FieldID   uuid.UUID `json:"field_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"`
	Capacity  int       `json:"capacity"`
	Available int       `json:"available"`
	Disabled  bool      `json:"disabled"`
}

type SlotView struct {
	Time      string `json:"time"`
	Available int    `json:"available"`
	Disabled  bool   `json:"disabled"`
}

type ScheduleView struct {
	FieldID  uuid.UUID  `json:"field_id"`
	Date     string     `json:"date"`
	Capacity int        `json:"capacity"`
	Slots    []SlotView `json:"slots"`
}

type ReservationView struct {
	ID              uuid.UUID       `json:"id"`
	FieldID         uuid.UUID       `json:"field_id"`
	FieldName       string          `json:"field_name"`
	UserID          string          `json:"user_id"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	DurationMinutes int             `json:"duration_minutes"`
	PersonCount     int             `json:"person_count"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ParticipantView struct {
	UserID    string     `json:"user_id"`
	UserEmail string     `json:"user_email,omitempty"`
	UserName  string     `json:"user_name,omitempty"`
	JoinedAt  *time.Time `json:"joined_at,omitempty"`
	Legacy    bool       `json:"legacy"`
}

type MatchView struct {
	ID              uuid.UUID         `json:"id"`
	FieldID         uuid.UUID         `json:"field_id"`
	FieldName       string            `json:"field_name"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	DurationMinutes int               `json:"duration_minutes"`
	MaxParticipants int               `json:"max_participants"`
	Participants    []ParticipantView `json:"participants"`
	Description     string            `json:"description"`
	State           string            `json:"state"`
	RemainingSpots  int               `json:"remaining_spots"`
	Joined          bool              `json:"joined"`
}

type ProfileView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	HasContact  bool   `json:"has_contact"`
}
