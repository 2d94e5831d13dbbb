package application

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

type ShellDeps struct {
	Auth            ports.AuthClient
	Profiles        ports.ProfileClient
	Activities      ports.ActivityClient
	Recommendations ports.RecommendationClient
	Store           ports.KeyValueStore
	Clock           ports.Clock
	Navigator       Navigator
	Logger          *slog.Logger

	SessionNamespace       string
	NotificationLifetime   time.Duration
	ActivityPageSize       int
	RecommendationPageSize int
}

// Shell owns the client-side state: session, notifications and both
// synchronized collections.
type Shell struct {
	Session         *SessionStore
	Guard           RouteGuard
	Notifications   *NotificationBus
	Activities      *ActivityController
	Recommendations *RecommendationController
	Mutations       *MutationCoordinator
	Profile         *ProfileService

	navigator Navigator
}

type DashboardSnapshot struct {
	Session         domain.Session
	Activities      CollectionState[domain.Activity]
	Recommendations CollectionState[domain.Recommendation]
	Notifications   []domain.Notification
}

func NewShell(deps ShellDeps) *Shell {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bus := NewNotificationBus(deps.Clock, deps.NotificationLifetime)
	session := NewSessionStore(deps.Auth, deps.Store, SessionOptions{
		Namespace: deps.SessionNamespace,
		Notifier:  bus,
		Logger:    logger,
	})
	activities := NewActivityController(deps.Activities, CollectionConfig{
		PageSize: deps.ActivityPageSize,
		Notifier: bus,
		Logger:   logger,
	})
	recommendations := NewRecommendationController(deps.Recommendations, CollectionConfig{
		PageSize: deps.RecommendationPageSize,
		Notifier: bus,
		Logger:   logger,
	})

	session.OnInvalidate(activities.Reset)
	session.OnInvalidate(recommendations.Reset)

	return &Shell{
		Session:         session,
		Notifications:   bus,
		Activities:      activities,
		Recommendations: recommendations,
		Mutations: NewMutationCoordinator(MutationDeps{
			Activities:         deps.Activities,
			Recommendations:    deps.Recommendations,
			ActivityList:       activities,
			RecommendationList: recommendations,
			Notifier:           bus,
			Logger:             logger,
		}),
		Profile:   NewProfileService(deps.Profiles, session, bus),
		navigator: deps.Navigator,
	}
}

// Start restores the persisted session and, when it is authenticated, loads
// both collections concurrently. The returned error is the first fetch
// failure, which has already been posted as a notification.
func (s *Shell) Start(ctx context.Context) (domain.Session, error) {
	session := s.Session.Restore(ctx)
	if !session.Authenticated() {
		return session, nil
	}
	return session, s.LoadCollections(ctx)
}

func (s *Shell) LoadCollections(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		return s.Activities.Load(ctx).Err
	})
	g.Go(func() error {
		return s.Recommendations.Load(ctx).Err
	})
	return g.Wait()
}

// Unauthorized is the transport hook for 401 responses.
func (s *Shell) Unauthorized(ctx context.Context) {
	if s.Session.HandleUnauthorized(ctx) && s.navigator != nil {
		s.navigator.Navigate(domain.RouteLogin.Path)
	}
}

func (s *Shell) Access(route domain.Route) Decision {
	return s.Guard.CanAccess(s.Session.Session(), route)
}

func (s *Shell) Snapshot() DashboardSnapshot {
	return DashboardSnapshot{
		Session:         s.Session.Session(),
		Activities:      s.Activities.State(),
		Recommendations: s.Recommendations.State(),
		Notifications:   s.Notifications.List(),
	}
}

// Close waits for background work and stops notification timers.
func (s *Shell) Close() {
	s.Mutations.Wait()
	s.Notifications.Close()
}
