package application

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/observability"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const DefaultNotificationLifetime = 5 * time.Second

// Notifier is the posting side of the bus.
type Notifier interface {
	Notify(message string, kind domain.NotificationKind) domain.Notification
}

type NotificationBus struct {
	clock    ports.Clock
	lifetime time.Duration
	newID    func() string

	mu     sync.Mutex
	items  []domain.Notification
	timers map[string]ports.Timer
	closed bool

	watchers observers[[]domain.Notification]
}

var _ Notifier = (*NotificationBus)(nil)

func NewNotificationBus(clock ports.Clock, lifetime time.Duration) *NotificationBus {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if lifetime <= 0 {
		lifetime = DefaultNotificationLifetime
	}

	return &NotificationBus{
		clock:    clock,
		lifetime: lifetime,
		newID:    uuid.NewString,
		timers:   make(map[string]ports.Timer),
	}
}

// Notify appends a notification and schedules its removal after the bus
// lifetime. It never blocks on subscribers.
func (b *NotificationBus) Notify(message string, kind domain.NotificationKind) domain.Notification {
	notification := domain.Notification{
		ID:        b.newID(),
		Message:   message,
		Kind:      kind,
		CreatedAt: b.clock.Now(),
	}
	observability.RecordNotification(string(kind))

	b.mu.Lock()
	b.items = append(b.items, notification)
	if !b.closed {
		id := notification.ID
		b.timers[id] = b.clock.AfterFunc(b.lifetime, func() { b.Dismiss(id) })
	}
	b.watchers.publish(slices.Clone(b.items))
	b.mu.Unlock()
	return notification
}

// Dismiss removes a notification early. Unknown or already removed ids are
// ignored; it reports whether anything was removed.
func (b *NotificationBus) Dismiss(id string) bool {
	b.mu.Lock()
	index := slices.IndexFunc(b.items, func(n domain.Notification) bool { return n.ID == id })
	if index < 0 {
		b.mu.Unlock()
		return false
	}
	b.items = slices.Delete(b.items, index, index+1)
	if timer, ok := b.timers[id]; ok {
		timer.Stop()
		delete(b.timers, id)
	}
	b.watchers.publish(slices.Clone(b.items))
	b.mu.Unlock()
	return true
}

func (b *NotificationBus) List() []domain.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.items)
}

// Drain returns the current notifications and dismisses them all.
func (b *NotificationBus) Drain() []domain.Notification {
	b.mu.Lock()
	items := b.items
	b.items = nil
	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
	b.watchers.publish(nil)
	b.mu.Unlock()

	return items
}

func (b *NotificationBus) Subscribe() (<-chan []domain.Notification, func()) {
	return b.watchers.subscribe()
}

// Close stops every pending removal timer. Notifications posted afterwards
// stay until dismissed.
func (b *NotificationBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
}
