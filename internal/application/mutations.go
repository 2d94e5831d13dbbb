package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const (
	MessageActivityCreated = "Activity created successfully!"
	MessageActivityDeleted = "Activity deleted successfully"
)

type MutationCoordinator struct {
	activities      ports.ActivityClient
	recommendations ports.RecommendationClient
	activityList    *ActivityController
	recommendList   *RecommendationController
	notifier        Notifier
	logger          *slog.Logger

	pending sync.WaitGroup
}

type MutationDeps struct {
	Activities         ports.ActivityClient
	Recommendations    ports.RecommendationClient
	ActivityList       *ActivityController
	RecommendationList *RecommendationController
	Notifier           Notifier
	Logger             *slog.Logger
}

func NewMutationCoordinator(deps MutationDeps) *MutationCoordinator {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &MutationCoordinator{
		activities:      deps.Activities,
		recommendations: deps.Recommendations,
		activityList:    deps.ActivityList,
		recommendList:   deps.RecommendationList,
		notifier:        deps.Notifier,
		logger:          logger,
	}
}

// CreateActivity validates the form, creates the activity remotely and
// prepends it to the activity list. Recommendations for the new activity
// are fetched in the background; Wait blocks until that finishes.
func (m *MutationCoordinator) CreateActivity(ctx context.Context, input domain.ActivityInput) (domain.Activity, error) {
	activity, err := input.Validate()
	if err != nil {
		m.notify(domain.UserMessage(err), domain.NotificationError)
		return domain.Activity{}, err
	}

	created, err := m.activities.Create(ctx, activity)
	if err != nil {
		m.reportFailure("", err)
		return domain.Activity{}, err
	}

	m.activityList.Prepend(created)
	m.notify(MessageActivityCreated, domain.NotificationSuccess)

	m.pending.Add(1)
	go func() {
		defer m.pending.Done()
		m.analyze(context.WithoutCancel(ctx), created.ID)
	}()

	return created, nil
}

func (m *MutationCoordinator) analyze(ctx context.Context, activityID domain.ActivityID) {
	recommendations, err := m.recommendations.Analyze(ctx, activityID)
	if err != nil {
		m.logger.Info("analyze new activity", "activity_id", activityID, "error", err)
		m.reportFailure(RecommendationErrorPrefix, err)
		return
	}
	if len(recommendations) == 0 {
		return
	}

	m.recommendList.Prepend(recommendations...)
	m.notify(MessageRecommendationsUpdated, domain.NotificationInfo)
}

func (m *MutationCoordinator) DeleteActivity(ctx context.Context, id domain.ActivityID) error {
	if strings.TrimSpace(string(id)) == "" {
		err := &domain.ValidationError{Field: "id", Message: "Activity id is required"}
		m.notify(err.Message, domain.NotificationError)
		return err
	}

	if err := m.activities.Delete(ctx, id); err != nil {
		m.reportFailure("", err)
		return err
	}

	m.activityList.Remove(string(id))
	m.notify(MessageActivityDeleted, domain.NotificationSuccess)
	return nil
}

// Wait blocks until background recommendation fetches have completed.
func (m *MutationCoordinator) Wait() {
	m.pending.Wait()
}

func (m *MutationCoordinator) reportFailure(prefix string, err error) {
	if domain.IsUnauthorized(err) || errors.Is(err, context.Canceled) {
		return
	}
	m.notify(prefix+domain.UserMessage(err), domain.NotificationError)
}

func (m *MutationCoordinator) notify(message string, kind domain.NotificationKind) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(message, kind)
}
