package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrNotAuthenticated = errors.New("not authenticated")
)

const (
	MessageGeneric    = "An error occurred"
	MessageNetwork    = "Network error. Please check your connection."
	MessageUnexpected = "An unexpected error occurred"
)

// ValidationError is raised before any remote call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type AuthError struct {
	Message    string
	StatusCode int
}

func (e *AuthError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func (e *AuthError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// NetworkError means no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err carries a 401 from the gateway.
func IsUnauthorized(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.IsUnauthorized()
	}
	return false
}

// UserMessage turns any error produced by the client into the single line
// shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return nonEmpty(authErr.Message, MessageGeneric)
	}

	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return MessageNetwork
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		if serverErr.StatusCode >= http.StatusInternalServerError && strings.TrimSpace(serverErr.Message) == "" {
			return MessageUnexpected
		}
		return nonEmpty(serverErr.Message, MessageGeneric)
	}

	if errors.Is(err, ErrNotAuthenticated) {
		return "Please log in to continue"
	}

	return MessageUnexpected
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
