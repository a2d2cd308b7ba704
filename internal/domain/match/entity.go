package match

import (
	"slices"
	"time"

	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/domain/user"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type State string

const (
	StateOpen State = "OPEN"
	StateFull State = "FULL"
	StatePast State = "PAST"
)

func (s State) String() string {
	return string(s)
}

type Match struct {
	id              uuid.UUID
	fieldID         uuid.UUID
	date            reservation.Date
	time            reservation.SlotTime
	duration        time.Duration
	maxParticipants int
	participants    []Participant
	description     string
}

func ReconstructMatch(
	id, fieldID uuid.UUID,
	date reservation.Date,
	at reservation.SlotTime,
	duration time.Duration,
	maxParticipants int,
	participants []Participant,
	description string,
) *Match {
	return &Match{
		id:              id,
		fieldID:         fieldID,
		date:            date,
		time:            at,
		duration:        duration,
		maxParticipants: maxParticipants,
		participants:    slices.Clone(participants),
		description:     description,
	}
}

func (m *Match) IsParticipant(userID string) bool {
	return m.indexOf(userID) >= 0
}

func (m *Match) IsFull() bool {
	return len(m.participants) >= m.maxParticipants
}

func (m *Match) IsPast(now time.Time) bool {
	return m.StartsAt().Before(now)
}

func (m *Match) State(now time.Time) State {
	switch {
	case m.IsPast(now):
		return StatePast
	case m.IsFull():
		return StateFull
	default:
		return StateOpen
	}
}

func (m *Match) RemainingSpots() int {
	return max(0, m.maxParticipants-len(m.participants))
}

// Join appends u to the roster. A nil profile means the caller is anonymous.
func (m *Match) Join(u *user.Profile, now time.Time) (Participant, error) {
	if u == nil {
		return Participant{}, errs.ErrAuthRequired
	}
	if !u.HasContact() {
		return Participant{}, errs.ErrMissingContactInfo
	}
	if m.IsParticipant(u.ID()) {
		return Participant{}, errs.ErrAlreadyJoined
	}
	if m.IsFull() {
		return Participant{}, errs.ErrMatchFull
	}
	if m.IsPast(now) {
		return Participant{}, errs.ErrMatchEnded
	}

	p := NewParticipant(Record{
		UserID:    u.ID(),
		UserEmail: u.Email(),
		UserName:  u.DisplayName(),
		JoinedAt:  now,
	})
	m.participants = append(m.participants, p)
	return p, nil
}

// Leave removes the first entry for userID, whichever shape it was stored in.
func (m *Match) Leave(userID string) error {
	i := m.indexOf(userID)
	if i < 0 {
		return errs.ErrNotParticipant
	}
	m.participants = slices.Delete(m.participants, i, i+1)
	return nil
}

func (m *Match) indexOf(userID string) int {
	return slices.IndexFunc(m.participants, func(p Participant) bool {
		return p.UserID() == userID
	})
}

func (m *Match) StartsAt() time.Time {
	return m.date.At(m.time)
}

func (m *Match) ID() uuid.UUID               { return m.id }
func (m *Match) FieldID() uuid.UUID          { return m.fieldID }
func (m *Match) Date() reservation.Date      { return m.date }
func (m *Match) Time() reservation.SlotTime  { return m.time }
func (m *Match) Duration() time.Duration     { return m.duration }
func (m *Match) MaxParticipants() int        { return m.maxParticipants }
func (m *Match) Participants() []Participant { return slices.Clone(m.participants) }
func (m *Match) Description() string         { return m.description }
