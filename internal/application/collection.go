package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/observability"
)

type FetchFunc[T any] func(ctx context.Context, params domain.QueryParams) (domain.Page[T], error)

type IDFunc[T any] func(item T) string

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseFetching Phase = "fetching"
	PhaseSettled  Phase = "settled"
)

// Outcome describes what happened to a single fetch.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeStale     Outcome = "stale"
	OutcomeFailed    Outcome = "failed"
	OutcomeUnchanged Outcome = "unchanged"
)

type FetchResult struct {
	Outcome    Outcome
	Generation uint64
	// Err is the remote failure, already reported through the notifier
	// when Outcome is OutcomeFailed.
	Err error
}

type CollectionState[T any] struct {
	Params     domain.QueryParams
	Content    []T
	TotalPages int
	// PagesKnown is false until the first accepted response.
	PagesKnown bool
	Phase      Phase
	Generation uint64
	LastError  error
}

type ControllerOptions struct {
	// Resource labels metrics and logs.
	Resource string
	Defaults domain.QueryParams
	// SuccessMessage is posted after every accepted fetch; empty keeps
	// successful fetches silent.
	SuccessMessage string
	SuccessKind    domain.NotificationKind
	ErrorPrefix    string
	Notifier       Notifier
	Logger         *slog.Logger
}

// Controller keeps one remote paginated collection in sync with its query
// parameters. Every parameter change bumps a generation counter and only a
// response carrying the current generation is applied.
type Controller[T any] struct {
	fetch FetchFunc[T]
	idOf  IDFunc[T]
	opts  ControllerOptions

	mu    sync.Mutex
	state CollectionState[T]

	watchers observers[CollectionState[T]]
}

var errNilFetchFunc = errors.New("collection fetch func is nil")

func NewController[T any](fetch FetchFunc[T], idOf IDFunc[T], opts ControllerOptions) *Controller[T] {
	controller, err := NewControllerChecked(fetch, idOf, opts)
	if err != nil {
		panic(err)
	}
	return controller
}

func NewControllerChecked[T any](fetch FetchFunc[T], idOf IDFunc[T], opts ControllerOptions) (*Controller[T], error) {
	if fetch == nil {
		return nil, errNilFetchFunc
	}
	if idOf == nil {
		return nil, errors.New("collection id func is nil")
	}
	if err := opts.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("collection defaults: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SuccessKind == "" {
		opts.SuccessKind = domain.NotificationSuccess
	}
	opts.Defaults = opts.Defaults.Clone()

	return &Controller[T]{
		fetch: fetch,
		idOf:  idOf,
		opts:  opts,
		state: CollectionState[T]{Params: opts.Defaults.Clone(), Phase: PhaseIdle},
	}, nil
}

// Load fetches with the current parameters, whether or not they changed.
func (c *Controller[T]) Load(ctx context.Context) FetchResult {
	c.mu.Lock()
	if c.state.PagesKnown {
		c.state.Params = c.state.Params.ClampPage(c.state.TotalPages)
	}
	return c.issueLocked(ctx)
}

func (c *Controller[T]) Refresh(ctx context.Context) FetchResult {
	return c.Load(ctx)
}

// Query replaces every parameter at once. The page is kept as given (then
// clamped), which lets callers open a collection on an arbitrary page.
func (c *Controller[T]) Query(ctx context.Context, params domain.QueryParams) (FetchResult, error) {
	params.Filter = params.Filter.Normalize()
	if err := params.Validate(); err != nil {
		return FetchResult{}, err
	}
	return c.update(ctx, func(p *domain.QueryParams) { *p = params.Clone() }, false), nil
}

func (c *Controller[T]) SetPage(ctx context.Context, page int) (FetchResult, error) {
	if page < 0 {
		return FetchResult{}, &domain.ValidationError{Field: "page", Message: "Page must not be negative"}
	}
	return c.update(ctx, func(p *domain.QueryParams) { p.Page = page }, false), nil
}

func (c *Controller[T]) NextPage(ctx context.Context) FetchResult {
	return c.update(ctx, func(p *domain.QueryParams) { p.Page++ }, false)
}

func (c *Controller[T]) PrevPage(ctx context.Context) FetchResult {
	return c.update(ctx, func(p *domain.QueryParams) { p.Page = max(p.Page-1, 0) }, false)
}

func (c *Controller[T]) SetSize(ctx context.Context, size int) (FetchResult, error) {
	if size <= 0 {
		return FetchResult{}, &domain.ValidationError{Field: "size", Message: "Page size must be at least 1"}
	}
	return c.update(ctx, func(p *domain.QueryParams) { p.Size = size }, true), nil
}

func (c *Controller[T]) SetSortBy(ctx context.Context, field string) (FetchResult, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return FetchResult{}, &domain.ValidationError{Field: "sortBy", Message: "Sort field is required"}
	}
	return c.update(ctx, func(p *domain.QueryParams) { p.SortBy = field }, true), nil
}

func (c *Controller[T]) SetSortDirection(ctx context.Context, direction domain.SortDirection) (FetchResult, error) {
	direction, err := domain.ParseSortDirection(string(direction))
	if err != nil {
		return FetchResult{}, err
	}
	return c.update(ctx, func(p *domain.QueryParams) { p.SortDirection = direction }, true), nil
}

func (c *Controller[T]) SetSort(ctx context.Context, field string, direction domain.SortDirection) (FetchResult, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return FetchResult{}, &domain.ValidationError{Field: "sortBy", Message: "Sort field is required"}
	}
	direction, err := domain.ParseSortDirection(string(direction))
	if err != nil {
		return FetchResult{}, err
	}
	return c.update(ctx, func(p *domain.QueryParams) {
		p.SortBy = field
		p.SortDirection = direction
	}, true), nil
}

func (c *Controller[T]) SetFilter(ctx context.Context, filter domain.Filter) FetchResult {
	normalized := filter.Normalize()
	return c.update(ctx, func(p *domain.QueryParams) { p.Filter = normalized }, true)
}

func (c *Controller[T]) update(ctx context.Context, mutate func(*domain.QueryParams), resetPage bool) FetchResult {
	c.mu.Lock()

	next := c.state.Params.Clone()
	mutate(&next)
	next.Filter = next.Filter.Normalize()
	if resetPage {
		next.Page = 0
	}
	if c.state.PagesKnown {
		next = next.ClampPage(c.state.TotalPages)
	}

	if next.Equal(c.state.Params) && c.state.Phase != PhaseIdle {
		generation := c.state.Generation
		c.mu.Unlock()
		return FetchResult{Outcome: OutcomeUnchanged, Generation: generation}
	}

	c.state.Params = next
	return c.issueLocked(ctx)
}

// issueLocked must be called with c.mu held; it releases the lock before
// the remote call.
func (c *Controller[T]) issueLocked(ctx context.Context) FetchResult {
	c.state.Generation++
	generation := c.state.Generation
	params := c.state.Params.Clone()
	c.state.Phase = PhaseFetching
	c.publishLocked()
	c.mu.Unlock()

	page, err := c.fetch(ctx, params)
	return c.settle(generation, params, page, err)
}

func (c *Controller[T]) settle(generation uint64, params domain.QueryParams, page domain.Page[T], err error) FetchResult {
	c.mu.Lock()
	if generation != c.state.Generation {
		current := c.state.Generation
		c.mu.Unlock()

		observability.RecordFetch(c.opts.Resource, string(OutcomeStale))
		c.opts.Logger.Debug("discarding stale collection response",
			"resource", c.opts.Resource, "generation", generation, "current", current, "page", params.Page)
		return FetchResult{Outcome: OutcomeStale, Generation: generation, Err: err}
	}

	c.state.Phase = PhaseSettled
	if err != nil {
		c.state.LastError = err
		c.publishLocked()
		c.mu.Unlock()

		observability.RecordFetch(c.opts.Resource, string(OutcomeFailed))
		c.reportFailure(err)
		return FetchResult{Outcome: OutcomeFailed, Generation: generation, Err: err}
	}

	c.state.Content = slices.Clone(page.Content)
	c.state.TotalPages = max(page.TotalPages, 0)
	c.state.PagesKnown = true
	c.state.LastError = nil
	c.publishLocked()
	c.mu.Unlock()

	observability.RecordFetch(c.opts.Resource, string(OutcomeAccepted))
	if c.opts.SuccessMessage != "" {
		c.notify(c.opts.SuccessMessage, c.opts.SuccessKind)
	}
	return FetchResult{Outcome: OutcomeAccepted, Generation: generation}
}

func (c *Controller[T]) reportFailure(err error) {
	// 401s are reported once by the session's unauthorized hook and
	// cancellations by whoever cancelled.
	if domain.IsUnauthorized(err) || errors.Is(err, context.Canceled) {
		c.opts.Logger.Debug("suppressing collection failure", "resource", c.opts.Resource, "error", err)
		return
	}
	c.notify(c.opts.ErrorPrefix+domain.UserMessage(err), domain.NotificationError)
}

// Prepend inserts items at the head of the current page without touching
// the page count.
func (c *Controller[T]) Prepend(items ...T) {
	if len(items) == 0 {
		return
	}

	c.mu.Lock()
	c.state.Content = append(slices.Clone(items), c.state.Content...)
	c.publishLocked()
	c.mu.Unlock()
}

// Remove drops the first item with the given id. It does not page back
// when the current page becomes empty.
func (c *Controller[T]) Remove(id string) bool {
	c.mu.Lock()
	index := slices.IndexFunc(c.state.Content, func(item T) bool { return c.idOf(item) == id })
	if index < 0 {
		c.mu.Unlock()
		return false
	}
	c.state.Content = slices.Delete(slices.Clone(c.state.Content), index, index+1)
	c.publishLocked()
	c.mu.Unlock()
	return true
}

// Reset returns to the initial parameters with no content. Responses still
// in flight become stale.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	c.state = CollectionState[T]{
		Params:     c.opts.Defaults.Clone(),
		Phase:      PhaseIdle,
		Generation: c.state.Generation + 1,
	}
	c.publishLocked()
	c.mu.Unlock()
}

func (c *Controller[T]) State() CollectionState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller[T]) Subscribe() (<-chan CollectionState[T], func()) {
	return c.watchers.subscribe()
}

func (c *Controller[T]) Resource() string {
	return c.opts.Resource
}

// publishLocked fans the current state out while c.mu is held, so
// subscribers always end on the newest state.
func (c *Controller[T]) publishLocked() {
	c.watchers.publish(c.snapshotLocked())
}

func (c *Controller[T]) snapshotLocked() CollectionState[T] {
	snapshot := c.state
	snapshot.Params = c.state.Params.Clone()
	snapshot.Content = slices.Clone(c.state.Content)
	return snapshot
}

func (c *Controller[T]) notify(message string, kind domain.NotificationKind) {
	if c.opts.Notifier == nil {
		return
	}
	c.opts.Notifier.Notify(message, kind)
}
