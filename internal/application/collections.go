package application

import (
	"log/slog"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const (
	DefaultPageSize = 5

	ActivityFilterType = "activityType"

	MessageRecommendationsUpdated = "AI recommendations updated!"
	RecommendationErrorPrefix     = "Recommendations: "
)

type (
	ActivityController       = Controller[domain.Activity]
	RecommendationController = Controller[domain.Recommendation]
)

type CollectionConfig struct {
	PageSize int
	Notifier Notifier
	Logger   *slog.Logger
}

func (c CollectionConfig) pageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

func ActivityDefaults(pageSize int) domain.QueryParams {
	return domain.QueryParams{Page: 0, Size: pageSize, SortBy: "startTime", SortDirection: domain.SortDescending}
}

func RecommendationDefaults(pageSize int) domain.QueryParams {
	return domain.QueryParams{Page: 0, Size: pageSize, SortBy: "createdAt", SortDirection: domain.SortDescending}
}

// NewActivityController keeps the user's activities in sync. Successful
// fetches are silent.
func NewActivityController(client ports.ActivityClient, cfg CollectionConfig) *ActivityController {
	return NewController(client.List, func(a domain.Activity) string { return string(a.ID) }, ControllerOptions{
		Resource: "activities",
		Defaults: ActivityDefaults(cfg.pageSize()),
		Notifier: cfg.Notifier,
		Logger:   cfg.Logger,
	})
}

func NewRecommendationController(client ports.RecommendationClient, cfg CollectionConfig) *RecommendationController {
	return NewController(client.List, func(r domain.Recommendation) string { return r.ID }, ControllerOptions{
		Resource:       "recommendations",
		Defaults:       RecommendationDefaults(cfg.pageSize()),
		SuccessMessage: MessageRecommendationsUpdated,
		SuccessKind:    domain.NotificationInfo,
		ErrorPrefix:    RecommendationErrorPrefix,
		Notifier:       cfg.Notifier,
		Logger:         cfg.Logger,
	})
}

// ActivityTypeFilter builds the filter for one activity type; an empty type
// clears the filter.
func ActivityTypeFilter(activityType domain.ActivityType) domain.Filter {
	if activityType == "" {
		return nil
	}
	return domain.Filter{ActivityFilterType: string(activityType)}
}
