//go:build unit || e2e

package builder

import (
	"time"

	"fieldbook/internal/domain/match"
	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/infra/repository/converter"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MatchBuilder struct {
	ID              uuid.UUID
	FieldID         uuid.UUID
	Date            string
	Time            string
	Duration        time.Duration
	MaxParticipants int
	Participants    []match.Participant
	Description     string
}

func NewMatchBuilder() *MatchBuilder {
	return &MatchBuilder{
		ID:              uuid.New(),
		FieldID:         uuid.New(),
		Date:            "2030-01-15",
		Time:            "18:00",
		Duration:        2 * time.Hour,
		MaxParticipants: 4,
		Description:     "Friday doubles",
	}
}

func (m *MatchBuilder) With(mutate func(*MatchBuilder)) *MatchBuilder {
	mutate(m)
	return m
}

// Build methods
func (m *MatchBuilder) BuildDomain() *match.Match {
	date, err := reservation.ParseDate(m.Date, Bangkok)
	if err != nil {
		panic(err)
	}
	return match.ReconstructMatch(
		m.ID, m.FieldID, date, reservation.MustSlotTime(m.Time), m.Duration, m.MaxParticipants, m.Participants, m.Description,
	)
}

func (m *MatchBuilder) BuildInfra() sqlc.Matches {
	date, err := reservation.ParseDate(m.Date, Bangkok)
	if err != nil {
		panic(err)
	}
	participants, err := converter.ParticipantsToJSON(m.Participants)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return sqlc.Matches{
		ID:              m.ID,
		FieldID:         m.FieldID,
		MatchDate:       pgconv.DateToPgtype(date.Time()),
		StartMinute:     int32(reservation.MustSlotTime(m.Time).SinceMidnight()),
		DurationMinutes: int32(m.Duration / time.Minute),
		MaxParticipants: int32(m.MaxParticipants),
		Participants:    participants,
		Description:     m.Description,
		CreatedAt:       pgconv.TimeToPgtype(now),
		UpdatedAt:       pgconv.TimeToPgtype(now),
	}
}

// Fluent builder methods
func (m *MatchBuilder) WithMax(n int) *MatchBuilder {
	m.MaxParticipants = n
	return m
}

func (m *MatchBuilder) WithLegacy(userIDs ...string) *MatchBuilder {
	for _, id := range userIDs {
		m.Participants = append(m.Participants, match.LegacyParticipant(id))
	}
	return m
}

func (m *MatchBuilder) WithRecord(userID string, joinedAt time.Time) *MatchBuilder {
	m.Participants = append(m.Participants, match.NewParticipant(match.Record{
		UserID:    userID,
		UserEmail: userID + "@example.com",
		UserName:  userID,
		JoinedAt:  joinedAt,
	}))
	return m
}
