package response

import "fieldbook/internal/usecase/queries"

type FieldResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Capacity       int    `json:"capacity"`
	PricePerPerson string `json:"price_per_person"`
	IsActive       bool   `json:"is_active"`
}

type AvailabilityResponse struct {
	FieldID   string `json:"field_id"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
	Disabled  bool   `json:"disabled"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available int    `json:"available"`
	Disabled  bool   `json:"disabled"`
}

type ScheduleResponse struct {
	FieldID  string         `json:"field_id"`
	Date     string         `json:"date"`
	Capacity int            `json:"capacity"`
	Slots    []SlotResponse `json:"slots"`
}

func FromFieldView(v *queries.FieldView) (*FieldResponse, error) {
	return mapTo[FieldResponse](v)
}

func FromFieldList(vs []*queries.FieldView) ([]FieldResponse, error) {
	items := make([]FieldResponse, 0, len(vs))
	for _, v := range vs {
		item, err := FromFieldView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	return mapTo[AvailabilityResponse](v)
}

func FromScheduleView(v *queries.ScheduleView) (*ScheduleResponse, error) {
	resp, err := mapTo[ScheduleResponse](v)
	if err != nil {
		return nil, err
	}
	if resp.Slots == nil {
		resp.Slots = []SlotResponse{}
	}
	return resp, nil
}
