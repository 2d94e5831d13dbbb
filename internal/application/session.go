package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/observability"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const (
	DefaultSessionNamespace = "fit/session"

	MessageLoggedIn       = "Logged in successfully"
	MessageRegistered     = "Account created successfully"
	MessageSessionExpired = "Your session has expired. Please log in again."
)

type SessionOptions struct {
	// Namespace prefixes the persisted token and identity keys.
	Namespace string
	Notifier  Notifier
	Logger    *slog.Logger
}

type SessionStore struct {
	auth     ports.AuthClient
	store    ports.KeyValueStore
	notifier Notifier
	logger   *slog.Logger

	tokenKey    string
	identityKey string

	// opMu serializes login/register/logout/restore so persisted entries
	// and memory never interleave.
	opMu sync.Mutex

	mu          sync.RWMutex
	session     domain.Session
	invalidates []func()

	watchers observers[domain.Session]
}

func NewSessionStore(auth ports.AuthClient, store ports.KeyValueStore, opts SessionOptions) *SessionStore {
	namespace := strings.Trim(strings.TrimSpace(opts.Namespace), "/")
	if namespace == "" {
		namespace = DefaultSessionNamespace
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionStore{
		auth:        auth,
		store:       store,
		notifier:    opts.Notifier,
		logger:      logger,
		tokenKey:    namespace + "/token",
		identityKey: namespace + "/identity",
		session:     domain.Session{Status: domain.StatusUnauthenticated},
	}
}

// Restore loads the persisted session without contacting the server.
// Missing or corrupt entries leave the store unauthenticated; corrupt ones
// are removed.
func (s *SessionStore) Restore(ctx context.Context) domain.Session {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.setSession(domain.Session{Status: domain.StatusRestoring}, false)

	token, tokenErr := s.store.Get(ctx, s.tokenKey)
	rawIdentity, identityErr := s.store.Get(ctx, s.identityKey)

	tokenMissing := errors.Is(tokenErr, domain.ErrEntryNotFound)
	identityMissing := errors.Is(identityErr, domain.ErrEntryNotFound)

	switch {
	case tokenMissing && identityMissing:
		return s.setSession(domain.Session{Status: domain.StatusUnauthenticated}, false)
	case tokenErr != nil && !tokenMissing, identityErr != nil && !identityMissing:
		// Unreadable store, not necessarily corrupt data: leave entries alone.
		s.logger.Warn("restore session: read persisted entries", "error", errors.Join(tokenErr, identityErr))
		return s.setSession(domain.Session{Status: domain.StatusUnauthenticated}, false)
	}

	identity, err := decodeIdentity(token, tokenErr, rawIdentity, identityErr)
	if err != nil {
		s.logger.Warn("restore session: discarding corrupt snapshot", "error", err)
		s.discardPersisted(ctx)
		return s.setSession(domain.Session{Status: domain.StatusUnauthenticated}, false)
	}

	return s.setSession(domain.Session{
		Identity: &identity,
		Token:    domain.Token(token),
		Status:   domain.StatusAuthenticated,
	}, false)
}

func decodeIdentity(token string, tokenErr error, rawIdentity string, identityErr error) (domain.Identity, error) {
	if tokenErr != nil {
		return domain.Identity{}, errors.New("identity persisted without token")
	}
	if identityErr != nil {
		return domain.Identity{}, errors.New("token persisted without identity")
	}
	if domain.Token(token).Empty() {
		return domain.Identity{}, errors.New("persisted token is blank")
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(rawIdentity), &identity); err != nil {
		return domain.Identity{}, fmt.Errorf("decode persisted identity: %w", err)
	}
	if err := identity.Validate(); err != nil {
		return domain.Identity{}, fmt.Errorf("validate persisted identity: %w", err)
	}
	return identity, nil
}

func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &domain.ValidationError{Field: "email", Message: "Please enter your email"}
	}
	if password == "" {
		return &domain.ValidationError{Field: "password", Message: "Please enter your password"}
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.establish(ctx, result); err != nil {
		return err
	}

	s.notify(MessageLoggedIn, domain.NotificationSuccess)
	return nil
}

func (s *SessionStore) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	switch {
	case username == "":
		return &domain.ValidationError{Field: "username", Message: "Please choose a username"}
	case email == "":
		return &domain.ValidationError{Field: "email", Message: "Please enter your email"}
	case password == "":
		return &domain.ValidationError{Field: "password", Message: "Please choose a password"}
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	result, err := s.auth.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	if err := s.establish(ctx, result); err != nil {
		return err
	}

	s.notify(MessageRegistered, domain.NotificationSuccess)
	return nil
}

// establish persists the token and identity, then swaps the in-memory
// session in a single step.
func (s *SessionStore) establish(ctx context.Context, result ports.AuthResult) error {
	if result.Token.Empty() {
		return &domain.AuthError{Message: "Authentication response did not include a token"}
	}
	if err := result.Identity.Validate(); err != nil {
		return &domain.AuthError{Message: fmt.Sprintf("Authentication response carried an unusable identity: %v", err)}
	}

	encoded, err := json.Marshal(result.Identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	previous := s.Session()
	if err := s.store.Put(ctx, s.tokenKey, string(result.Token)); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	if err := s.store.Put(ctx, s.identityKey, string(encoded)); err != nil {
		if rollbackErr := s.rollbackToken(ctx, previous); rollbackErr != nil {
			return fmt.Errorf("persist session identity and rollback token: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("persist session identity: %w", err)
	}

	identity := result.Identity
	s.setSession(domain.Session{
		Identity: &identity,
		Token:    result.Token,
		Status:   domain.StatusAuthenticated,
	}, false)
	return nil
}

// rollbackToken puts back the token that belonged to the session still held
// in memory. With no such session the token entry is removed.
func (s *SessionStore) rollbackToken(ctx context.Context, previous domain.Session) error {
	if previous.Authenticated() && !previous.Token.Empty() {
		return s.store.Put(ctx, s.tokenKey, string(previous.Token))
	}
	return s.store.Delete(ctx, s.tokenKey)
}

// Logout clears memory and persisted entries. Calling it while already
// logged out is a no-op apart from removing any leftover entries.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.logoutLocked(ctx)
}

func (s *SessionStore) logoutLocked(ctx context.Context) error {
	wasAuthenticated := s.Session().Authenticated()
	s.setSession(domain.Session{Status: domain.StatusUnauthenticated}, wasAuthenticated)

	var errs []error
	if err := s.store.Delete(ctx, s.tokenKey); err != nil {
		errs = append(errs, fmt.Errorf("delete session token: %w", err))
	}
	if err := s.store.Delete(ctx, s.identityKey); err != nil {
		errs = append(errs, fmt.Errorf("delete session identity: %w", err))
	}
	return errors.Join(errs...)
}

// HandleUnauthorized reacts to a 401 from any authenticated request and
// reports whether this call ended the session. Only that call produces a
// notification.
func (s *SessionStore) HandleUnauthorized(ctx context.Context) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !s.Session().Authenticated() {
		return false
	}
	if err := s.logoutLocked(ctx); err != nil {
		s.logger.Warn("expire session: clear persisted entries", "error", err)
	}
	s.notify(MessageSessionExpired, domain.NotificationError)
	return true
}

// ReplaceIdentity swaps the stored identity wholesale, keeping the token.
func (s *SessionStore) ReplaceIdentity(ctx context.Context, identity domain.Identity) error {
	if err := identity.Validate(); err != nil {
		return fmt.Errorf("replace identity: %w", err)
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	current := s.Session()
	if !current.Authenticated() {
		return domain.ErrNotAuthenticated
	}

	encoded, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.store.Put(ctx, s.identityKey, string(encoded)); err != nil {
		return fmt.Errorf("persist session identity: %w", err)
	}

	current.Identity = &identity
	s.setSession(current, false)
	return nil
}

// Session returns a copy of the current session.
func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

// Token is the bearer token source for the gateway transport.
func (s *SessionStore) Token() domain.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func (s *SessionStore) Subscribe() (<-chan domain.Session, func()) {
	return s.watchers.subscribe()
}

// OnInvalidate registers fn to run after every transition from
// authenticated to unauthenticated.
func (s *SessionStore) OnInvalidate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidates = append(s.invalidates, fn)
}

func (s *SessionStore) setSession(next domain.Session, invalidate bool) domain.Session {
	s.mu.Lock()
	previous := s.session.Status
	s.session = copySession(next)
	hooks := append([]func(){}, s.invalidates...)
	snapshot := copySession(next)
	// Published under s.mu so subscribers never see an older session last.
	s.watchers.publish(snapshot)
	s.mu.Unlock()

	if previous != next.Status {
		observability.RecordSessionTransition(string(next.Status))
	}
	if invalidate {
		for _, hook := range hooks {
			hook()
		}
	}
	return snapshot
}

func (s *SessionStore) discardPersisted(ctx context.Context) {
	if err := s.store.Delete(ctx, s.tokenKey); err != nil {
		s.logger.Warn("discard persisted token", "error", err)
	}
	if err := s.store.Delete(ctx, s.identityKey); err != nil {
		s.logger.Warn("discard persisted identity", "error", err)
	}
}

func (s *SessionStore) notify(message string, kind domain.NotificationKind) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(message, kind)
}

func copySession(session domain.Session) domain.Session {
	if session.Identity != nil {
		identity := *session.Identity
		session.Identity = &identity
	}
	return session
}
