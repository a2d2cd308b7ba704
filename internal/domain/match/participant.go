package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidParticipant = errors.New("participant must be a user id string or an object with userId")

// Record is the structured roster entry written by current clients.
type Record struct {
	UserID    string    `json:"userId"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// Participant is either a legacy bare user id or a Record.
// The zero value is invalid.
type Participant struct {
	legacyID string
	record   *Record
}

func LegacyParticipant(userID string) Participant {
	return Participant{legacyID: userID}
}

func NewParticipant(rec Record) Participant {
	return Participant{record: &rec}
}

func (p Participant) UserID() string {
	if p.record != nil {
		return p.record.UserID
	}
	return p.legacyID
}

func (p Participant) IsLegacy() bool {
	return p.record == nil
}

func (p Participant) Record() (Record, bool) {
	if p.record == nil {
		return Record{}, false
	}
	return *p.record, true
}

func (p Participant) MarshalJSON() ([]byte, error) {
	if p.record != nil {
		return json.Marshal(p.record)
	}
	return json.Marshal(p.legacyID)
}

func (p *Participant) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidParticipant
	}

	switch data[0] {
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		if id == "" {
			return ErrInvalidParticipant
		}
		*p = LegacyParticipant(id)
	case '{':
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		if rec.UserID == "" {
			return ErrInvalidParticipant
		}
		*p = NewParticipant(rec)
	default:
		return ErrInvalidParticipant
	}
	return nil
}
