package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"fieldbook/internal/domain/match"
	"fieldbook/internal/domain/reservation"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"
)

func MatchFromRow(row sqlc.Matches, loc *time.Location) (*match.Match, error) {
	slot, err := SlotFromMinutes(row.StartMinute, row.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", row.ID, err)
	}
	participants, err := ParticipantsFromJSON(row.Participants)
	if err != nil {
		return nil, fmt.Errorf("match %s participants: %w", row.ID, err)
	}

	return match.ReconstructMatch(
		row.ID, row.FieldID,
		reservation.DateOf(pgconv.DateFromPgtype(row.MatchDate, loc)),
		slot.Start(), slot.Duration(),
		int(row.MaxParticipants),
		participants,
		row.Description,
	), nil
}

func ParticipantsFromJSON(raw []byte) ([]match.Participant, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ps []match.Participant
	if err := json.Unmarshal(raw, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// ParticipantsToJSON always yields an array so the roster CHECK constraint holds.
func ParticipantsToJSON(ps []match.Participant) ([]byte, error) {
	if ps == nil {
		ps = []match.Participant{}
	}
	return json.Marshal(ps)
}
