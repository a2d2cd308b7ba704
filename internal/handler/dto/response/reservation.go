package response

import (
	"time"

	"fieldbook/internal/usecase/queries"
)

type ReservationResponse struct {
	ID              string    `json:"id"`
	FieldID         string    `json:"field_id"`
	FieldName       string    `json:"field_name"`
	UserID          string    `json:"user_id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	PersonCount     int       `json:"person_count"`
	TotalPrice      string    `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationListResponse struct {
	Items      []ReservationResponse `json:"items"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	return mapTo[ReservationResponse](v)
}

func FromReservationList(vs []*queries.ReservationView, next *queries.Cursor) (*ReservationListResponse, error) {
	resp := &ReservationListResponse{Items: make([]ReservationResponse, 0, len(vs))}
	for _, v := range vs {
		item, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, *item)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}
