package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidUserID = errors.New("user id must not be empty")
	ErrInvalidPhone  = errors.New("invalid phone number")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{5,19}$`)
)

// Profile is the identity provider's view of a user. id is the provider subject.
type Profile struct {
	id          string
	email       string
	displayName string
	phone       string
	role        Role
}

func NewProfile(id, email, displayName, phone string, role Role) (*Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidUserID
	}
	email = strings.TrimSpace(email)
	if email != "" && !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	phone = strings.TrimSpace(phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Profile{
		id:          id,
		email:       email,
		displayName: strings.TrimSpace(displayName),
		phone:       phone,
		role:        role,
	}, nil
}

func ReconstructProfile(id, email, displayName, phone string, role Role) *Profile {
	return &Profile{
		id:          id,
		email:       email,
		displayName: displayName,
		phone:       phone,
		role:        role,
	}
}

// HasContact reports whether a phone number is on file.
func (p *Profile) HasContact() bool {
	return p != nil && strings.TrimSpace(p.phone) != ""
}

func (p *Profile) ID() string          { return p.id }
func (p *Profile) Email() string       { return p.email }
func (p *Profile) DisplayName() string { return p.displayName }
func (p *Profile) Phone() string       { return p.phone }
func (p *Profile) Role() Role          { return p.role }
