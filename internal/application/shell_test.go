package application

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports/mocks"
)

type shellFixture struct {
	activities      *mocks.MockActivityClient
	recommendations *mocks.MockRecommendationClient
	store           *memoryStore
	shell           *Shell

	mu        sync.Mutex
	redirects []string
}

func newShellFixture(t *testing.T) *shellFixture {
	t.Helper()

	f := &shellFixture{
		activities:      mocks.NewMockActivityClient(t),
		recommendations: mocks.NewMockRecommendationClient(t),
		store:           newMemoryStore(),
	}
	f.shell = NewShell(ShellDeps{
		Auth:            mocks.NewMockAuthClient(t),
		Profiles:        mocks.NewMockProfileClient(t),
		Activities:      f.activities,
		Recommendations: f.recommendations,
		Store:           f.store,
		Clock:           newManualClock(),
		Navigator: NavigatorFunc(func(path string) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.redirects = append(f.redirects, path)
		}),
	})
	t.Cleanup(f.shell.Close)
	return f
}

func (f *shellFixture) navigations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.redirects)
}

func (f *shellFixture) persistSession(t *testing.T) {
	t.Helper()
	require.NoError(t, f.store.Put(context.Background(), testTokenKey, "jwt"))
	require.NoError(t, f.store.Put(context.Background(), testIdentityKey, `{"id":"42","username":"ana"}`))
}

func TestShellStartLoadsBothCollectionsWhenAuthenticated(t *testing.T) {
	t.Parallel()

	f := newShellFixture(t)
	f.persistSession(t)
	f.activities.EXPECT().List(mock.Anything, ActivityDefaults(DefaultPageSize)).
		Return(domain.Page[domain.Activity]{Content: []domain.Activity{{ID: "a1"}}, TotalPages: 1}, nil).Once()
	f.recommendations.EXPECT().List(mock.Anything, RecommendationDefaults(DefaultPageSize)).
		Return(domain.Page[domain.Recommendation]{Content: []domain.Recommendation{{ID: "r1"}}, TotalPages: 1}, nil).Once()

	session, err := f.shell.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Authenticated())

	snapshot := f.shell.Snapshot()
	assert.Len(t, snapshot.Activities.Content, 1)
	assert.Len(t, snapshot.Recommendations.Content, 1)
	assert.True(t, f.shell.Access(domain.RouteDashboard).Allowed)
}

func TestShellStartSkipsFetchesWhenAnonymous(t *testing.T) {
	t.Parallel()

	f := newShellFixture(t)
	session, err := f.shell.Start(context.Background())
	require.NoError(t, err)

	assert.False(t, session.Authenticated())
	assert.Equal(t, PhaseIdle, f.shell.Activities.State().Phase)
	assert.Equal(t, Decision{RedirectTo: "/login", ReturnTo: "/dashboard"}, f.shell.Access(domain.RouteDashboard))
}

func TestShellUnauthorizedResetsCollectionsAndRedirects(t *testing.T) {
	t.Parallel()

	f := newShellFixture(t)
	f.persistSession(t)
	f.activities.EXPECT().List(mock.Anything, mock.Anything).
		Return(domain.Page[domain.Activity]{Content: []domain.Activity{{ID: "a1"}}, TotalPages: 1}, nil).Once()
	f.recommendations.EXPECT().List(mock.Anything, mock.Anything).
		Return(domain.Page[domain.Recommendation]{}, &domain.AuthError{Message: "expired", StatusCode: http.StatusUnauthorized}).Once()

	_, err := f.shell.Start(context.Background())
	require.Error(t, err)

	f.shell.Unauthorized(context.Background())
	f.shell.Unauthorized(context.Background())

	assert.False(t, f.shell.Session.Session().Authenticated())
	assert.Empty(t, f.shell.Activities.State().Content)
	assert.Equal(t, []string{"/login"}, f.navigations())

	var expired []domain.Notification
	for _, n := range f.shell.Notifications.List() {
		if n.Kind == domain.NotificationError {
			expired = append(expired, n)
		}
	}
	require.Len(t, expired, 1)
	assert.Equal(t, MessageSessionExpired, expired[0].Message)
}

func TestShellConcurrentUnauthorizedRedirectsOnce(t *testing.T) {
	t.Parallel()

	f := newShellFixture(t)
	f.persistSession(t)
	require.True(t, f.shell.Session.Restore(context.Background()).Authenticated())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.shell.Unauthorized(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"/login"}, f.navigations())
	assert.False(t, f.shell.Session.Session().Authenticated())
	assert.Empty(t, f.store.keys())
}
