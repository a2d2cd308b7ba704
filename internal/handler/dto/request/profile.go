package request

import (
	"strings"

	"fieldbook/internal/pkg/patch"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/shared"
)

type UpdateContactRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	Phone       string  `json:"phone" binding:"required,max=32"`
}

// ToInput keeps the token's display name when the request omits one.
func (r *UpdateContactRequest) ToInput(actor shared.Actor) commands.UpdateContactInput {
	return commands.UpdateContactInput{
		Actor:       actor,
		DisplayName: strings.TrimSpace(patch.Coalesce(r.DisplayName, actor.Name)),
		Phone:       strings.TrimSpace(r.Phone),
	}
}
