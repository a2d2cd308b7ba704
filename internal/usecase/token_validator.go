package usecase

import (
	"fieldbook/internal/domain/user"
	"fieldbook/internal/pkg/jwt"
	"fieldbook/internal/usecase/shared"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}

	// Providers that omit a role get the least privileged one.
	role := user.RoleMember
	if claims.Role != "" {
		role, err = user.NewRole(claims.Role)
		if err != nil {
			return shared.Actor{}, err
		}
	}

	return shared.Actor{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   role.String(),
	}, nil
}
