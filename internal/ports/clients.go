package ports

import (
	"context"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

type AuthResult struct {
	Token    domain.Token
	Identity domain.Identity
}

// AuthClient failures are always *domain.AuthError.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Register(ctx context.Context, username, email, password string) (AuthResult, error)
}

type ProfileClient interface {
	GetProfile(ctx context.Context, id domain.UserID) (domain.Identity, error)
	UpdateProfile(ctx context.Context, id domain.UserID, update domain.ProfileUpdate) (domain.Identity, error)
}

type ActivityClient interface {
	List(ctx context.Context, params domain.QueryParams) (domain.Page[domain.Activity], error)
	Create(ctx context.Context, activity domain.NewActivity) (domain.Activity, error)
	Delete(ctx context.Context, id domain.ActivityID) error
}

type RecommendationClient interface {
	List(ctx context.Context, params domain.QueryParams) (domain.Page[domain.Recommendation], error)
	Analyze(ctx context.Context, activityID domain.ActivityID) ([]domain.Recommendation, error)
}
