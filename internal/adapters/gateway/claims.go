package gateway

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

type tokenClaims struct {
	UserID flexibleID `json:"userId"`
	Email  string     `json:"email"`
	jwt.RegisteredClaims
}

// identityFromToken reads identity hints from the JWT without verifying
// its signature; the gateway stays the authority on validity.
func identityFromToken(token domain.Token) (domain.Identity, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), &claims); err != nil {
		return domain.Identity{}, fmt.Errorf("parse token claims: %w", err)
	}

	identity := domain.Identity{
		ID:    domain.UserID(claims.UserID),
		Email: claims.Email,
	}
	if strings.Contains(claims.Subject, "@") && identity.Email == "" {
		identity.Email = claims.Subject
	} else {
		identity.Username = claims.Subject
	}
	return identity, nil
}

// mergeIdentity fills blanks in primary from fallback.
func mergeIdentity(primary, fallback domain.Identity) domain.Identity {
	if primary.ID == "" {
		primary.ID = fallback.ID
	}
	if primary.Username == "" {
		primary.Username = fallback.Username
	}
	if primary.Email == "" {
		primary.Email = fallback.Email
	}
	if primary.CreatedAt.IsZero() {
		primary.CreatedAt = fallback.CreatedAt
	}
	return primary
}
