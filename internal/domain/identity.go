package domain

import (
	"errors"
	"strings"
	"time"
)

type UserID string

type Token string

func (t Token) Empty() bool {
	return strings.TrimSpace(string(t)) == ""
}

type Identity struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

var errIncompleteIdentity = errors.New("identity is missing id or username/email")

// Validate rejects identity snapshots that cannot address the user's data.
func (i Identity) Validate() error {
	if strings.TrimSpace(string(i.ID)) == "" {
		return errIncompleteIdentity
	}
	if strings.TrimSpace(i.Username) == "" && strings.TrimSpace(i.Email) == "" {
		return errIncompleteIdentity
	}
	return nil
}

func (i Identity) DisplayName() string {
	if i.Username != "" {
		return i.Username
	}
	return i.Email
}

type ProfileUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u ProfileUpdate) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return &ValidationError{Field: "username", Message: "Username cannot be empty"}
	}
	if strings.TrimSpace(u.Email) == "" {
		return &ValidationError{Field: "email", Message: "Email cannot be empty"}
	}
	return nil
}

type SessionStatus string

const (
	StatusUnauthenticated SessionStatus = "unauthenticated"
	StatusRestoring       SessionStatus = "restoring"
	StatusAuthenticated   SessionStatus = "authenticated"
)

// Session is either fully authenticated (identity and token) or carries
// neither.
type Session struct {
	Identity *Identity
	Token    Token
	Status   SessionStatus
}

func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.Identity != nil && !s.Token.Empty()
}
