package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

type userDTO struct {
	ID        flexibleID `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt timestamp  `json:"createdAt"`
	UpdatedAt timestamp  `json:"updatedAt"`
}

func (u userDTO) toDomain() domain.Identity {
	username := u.Username
	if username == "" {
		username = u.Name
	}
	return domain.Identity{
		ID:        domain.UserID(u.ID),
		Username:  username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Time(),
		UpdatedAt: u.UpdatedAt.Time(),
	}
}

func userPath(id domain.UserID) string {
	return "/api/v1/users/" + url.PathEscape(string(id))
}

func (c *Client) GetProfile(ctx context.Context, id domain.UserID) (domain.Identity, error) {
	var user userDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: userPath(id)}, &user); err != nil {
		return domain.Identity{}, err
	}
	return mergeIdentity(user.toDomain(), domain.Identity{ID: id}), nil
}

func (c *Client) UpdateProfile(ctx context.Context, id domain.UserID, update domain.ProfileUpdate) (domain.Identity, error) {
	var user userDTO
	err := c.do(ctx, request{method: http.MethodPut, path: userPath(id), body: update}, &user)
	if err != nil {
		return domain.Identity{}, err
	}
	fallback := domain.Identity{ID: id, Username: update.Username, Email: update.Email}
	return mergeIdentity(user.toDomain(), fallback), nil
}
