package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const (
	loginPath    = "/api/v1/auth/login"
	registerPath = "/api/v1/auth/register"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (ports.AuthResult, error) {
	var resp authResponse
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      loginPath,
		body:      loginRequest{Email: email, Password: password},
		anonymous: true,
	}, &resp)
	if err != nil {
		return ports.AuthResult{}, asAuthError(err, "Login failed")
	}

	return authResult(resp, domain.Identity{Email: email})
}

func (c *Client) Register(ctx context.Context, username, email, password string) (ports.AuthResult, error) {
	var resp authResponse
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      registerPath,
		body:      registerRequest{Username: username, Email: email, Password: password},
		anonymous: true,
	}, &resp)
	if err != nil {
		return ports.AuthResult{}, asAuthError(err, "Registration failed")
	}

	return authResult(resp, domain.Identity{Username: username, Email: email})
}

// authResult builds the identity from the response's user field, which may
// be an object or a bare username, then fills gaps from the token claims
// and finally from what the user typed.
func authResult(resp authResponse, typed domain.Identity) (ports.AuthResult, error) {
	token := domain.Token(strings.TrimSpace(resp.Token))
	if token.Empty() {
		return ports.AuthResult{}, &domain.AuthError{Message: "Authentication response did not include a token"}
	}

	identity, err := decodeUser(resp.User)
	if err != nil {
		return ports.AuthResult{}, &domain.AuthError{Message: fmt.Sprintf("Unreadable user in authentication response: %v", err)}
	}
	if claimed, err := identityFromToken(token); err == nil {
		identity = mergeIdentity(identity, claimed)
	}
	identity = mergeIdentity(identity, typed)

	if err := identity.Validate(); err != nil {
		return ports.AuthResult{}, &domain.AuthError{Message: "Authentication response did not identify the user"}
	}
	return ports.AuthResult{Token: token, Identity: identity}, nil
}

func decodeUser(raw json.RawMessage) (domain.Identity, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return domain.Identity{}, nil
	}

	if raw[0] == '"' {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return domain.Identity{}, err
		}
		if strings.Contains(name, "@") {
			return domain.Identity{Email: name}, nil
		}
		return domain.Identity{Username: name}, nil
	}

	var user userDTO
	if err := json.Unmarshal(raw, &user); err != nil {
		return domain.Identity{}, err
	}
	return user.toDomain(), nil
}

func asAuthError(err error, fallback string) error {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	var networkErr *domain.NetworkError
	if errors.As(err, &networkErr) {
		return &domain.AuthError{Message: domain.MessageNetwork}
	}

	var serverErr *domain.ServerError
	if errors.As(err, &serverErr) {
		return &domain.AuthError{Message: nonEmpty(serverErr.Message, fallback), StatusCode: serverErr.StatusCode}
	}

	return &domain.AuthError{Message: fmt.Sprintf("%s: %v", fallback, err)}
}
