//go:build unit || e2e

package builder

import (
	"time"

	"fieldbook/internal/domain/user"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"
	"fieldbook/internal/usecase/shared"
)

type ProfileBuilder struct {
	ID          string
	Email       string
	DisplayName string
	Phone       string
	Role        user.Role
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		ID:          "user-1",
		Email:       "player@example.com",
		DisplayName: "Player One",
		Phone:       "+66812345678",
		Role:        user.RoleMember,
	}
}

func (p *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProfileBuilder) BuildDomain() *user.Profile {
	return user.ReconstructProfile(p.ID, p.Email, p.DisplayName, p.Phone, p.Role)
}

func (p *ProfileBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Phone:       p.Phone,
		Role:        p.Role.String(),
		CreatedAt:   pgconv.TimeToPgtype(now),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}

func (p *ProfileBuilder) BuildActor() shared.Actor {
	return shared.Actor{
		UserID: p.ID,
		Email:  p.Email,
		Name:   p.DisplayName,
		Role:   p.Role.String(),
	}
}

// Fluent builder methods
func (p *ProfileBuilder) WithID(id string) *ProfileBuilder {
	p.ID = id
	return p
}

func (p *ProfileBuilder) WithoutPhone() *ProfileBuilder {
	p.Phone = ""
	return p
}
