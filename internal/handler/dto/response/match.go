package response

import (
	"time"

	"fieldbook/internal/usecase/queries"
)

type ParticipantResponse struct {
	UserID    string     `json:"user_id"`
	UserEmail string     `json:"user_email,omitempty"`
	UserName  string     `json:"user_name,omitempty"`
	JoinedAt  *time.Time `json:"joined_at,omitempty"`
}

type MatchResponse struct {
	ID              string                `json:"id"`
	FieldID         string                `json:"field_id"`
	FieldName       string                `json:"field_name"`
	Date            string                `json:"date"`
	Time            string                `json:"time"`
	DurationMinutes int                   `json:"duration_minutes"`
	MaxParticipants int                   `json:"max_participants"`
	Participants    []ParticipantResponse `json:"participants"`
	Description     string                `json:"description"`
	State           string                `json:"state"`
	RemainingSpots  int                   `json:"remaining_spots"`
	Joined          bool                  `json:"joined"`
}

func FromMatchView(v *queries.MatchView) (*MatchResponse, error) {
	resp, err := mapTo[MatchResponse](v)
	if err != nil {
		return nil, err
	}
	if resp.Participants == nil {
		resp.Participants = []ParticipantResponse{}
	}
	return resp, nil
}
