package application

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	timer := &manualTimer{clock: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, timer)
	return timer
}

// Advance moves time forward and runs due timers outside the clock lock.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*manualTimer
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired && !timer.at.After(c.now) {
			timer.fired = true
			due = append(due, timer)
		}
	}
	c.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
}

func (c *manualClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]string
	putErrs map[string]error
}

var _ ports.KeyValueStore = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string]string{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	if !ok {
		return "", fmt.Errorf("memory entry %q: %w", key, domain.ErrEntryNotFound)
	}
	return value, nil
}

func (s *memoryStore) Put(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.putErrs[key]; err != nil {
		return err
	}
	s.entries[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// failPuts makes every later Put for key return err.
func (s *memoryStore) failPuts(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErrs == nil {
		s.putErrs = map[string]error{}
	}
	s.putErrs[key] = err
}

func (s *memoryStore) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

type recordingNotifier struct {
	mu    sync.Mutex
	items []domain.Notification
}

func (r *recordingNotifier) Notify(message string, kind domain.NotificationKind) domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification := domain.Notification{ID: fmt.Sprintf("n-%d", len(r.items)+1), Message: message, Kind: kind}
	r.items = append(r.items, notification)
	return notification
}

func (r *recordingNotifier) all() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

func (r *recordingNotifier) ofKind(kind domain.NotificationKind) []domain.Notification {
	var out []domain.Notification
	for _, n := range r.all() {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

type item struct {
	ID string
}

func itemID(i item) string { return i.ID }

func testDefaults() domain.QueryParams {
	return domain.QueryParams{Page: 0, Size: 5, SortBy: "startTime", SortDirection: domain.SortDescending}
}

// recordedFetch answers immediately and remembers every request.
type recordedFetch struct {
	mu         sync.Mutex
	calls      []domain.QueryParams
	totalPages int
	err        error
}

func (r *recordedFetch) fetch(_ context.Context, params domain.QueryParams) (domain.Page[item], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, params.Clone())
	if r.err != nil {
		return domain.Page[item]{}, r.err
	}
	return domain.Page[item]{
		Content:    []item{{ID: fmt.Sprintf("page-%d", params.Page)}},
		TotalPages: r.totalPages,
	}, nil
}

func (r *recordedFetch) requests() []domain.QueryParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func (r *recordedFetch) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}
