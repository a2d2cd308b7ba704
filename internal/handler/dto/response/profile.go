package response

import "fieldbook/internal/usecase/queries"

type ProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	HasContact  bool   `json:"has_contact"`
}

func FromProfileView(v *queries.ProfileView) (*ProfileResponse, error) {
	return mapTo[ProfileResponse](v)
}
