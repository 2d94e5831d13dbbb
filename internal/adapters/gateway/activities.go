package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

const (
	activitiesPath         = "/api/v1/activities"
	filteredActivitiesPath = "/api/v1/activities/my-activities/filtered"
	createActivityPath     = "/api/v1/activities/create"
)

type activityDTO struct {
	ID                flexibleID     `json:"id"`
	UserID            flexibleID     `json:"userId"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Status            string         `json:"status"`
	ActivityType      string         `json:"activityType"`
	Duration          int            `json:"duration"`
	CaloriesBurned    int            `json:"caloriesBurned"`
	StartTime         timestamp      `json:"startTime"`
	AdditionalMetrics map[string]any `json:"additionalMetrics"`
	Timestamp         timestamp      `json:"timestamp"`
	CreatedAt         timestamp      `json:"createdAt"`
}

func (a activityDTO) toDomain() domain.Activity {
	activityType, ok := domain.ParseActivityType(a.ActivityType)
	if !ok {
		activityType = domain.ActivityType(a.ActivityType)
	}
	recorded := a.Timestamp.Time()
	if recorded.IsZero() {
		recorded = a.CreatedAt.Time()
	}

	return domain.Activity{
		ID:                domain.ActivityID(a.ID),
		UserID:            string(a.UserID),
		Title:             a.Title,
		Description:       a.Description,
		Status:            domain.ActivityStatus(strings.ToLower(a.Status)),
		Type:              activityType,
		DurationMin:       a.Duration,
		CaloriesBurned:    a.CaloriesBurned,
		StartTime:         a.StartTime.Time(),
		AdditionalMetrics: a.AdditionalMetrics,
		Timestamp:         recorded,
	}
}

type createActivityRequest struct {
	Title             string         `json:"title"`
	Description       string         `json:"description,omitempty"`
	Status            string         `json:"status"`
	ActivityType      string         `json:"activityType"`
	Duration          int            `json:"duration"`
	CaloriesBurned    int            `json:"caloriesBurned"`
	StartTime         string         `json:"startTime"`
	AdditionalMetrics map[string]any `json:"additionalMetrics,omitempty"`
}

// ActivityAPI is the activity service as seen through the gateway.
type ActivityAPI struct {
	client *Client
}

func (c *Client) Activities() ActivityAPI {
	return ActivityAPI{client: c}
}

// List uses the filtered endpoint whenever a filter is set.
func (a ActivityAPI) List(ctx context.Context, params domain.QueryParams) (domain.Page[domain.Activity], error) {
	path := activitiesPath
	if len(params.Filter.Normalize()) > 0 {
		path = filteredActivitiesPath
	}

	var page pageEnvelope[activityDTO]
	err := a.client.do(ctx, request{method: http.MethodGet, path: path, query: pageQuery(params, "sortDirection")}, &page)
	if err != nil {
		return domain.Page[domain.Activity]{}, err
	}

	activities := make([]domain.Activity, 0, len(page.Content))
	for _, dto := range page.Content {
		activities = append(activities, dto.toDomain())
	}
	return domain.Page[domain.Activity]{Content: activities, TotalPages: page.TotalPages}, nil
}

func (a ActivityAPI) Create(ctx context.Context, activity domain.NewActivity) (domain.Activity, error) {
	body := createActivityRequest{
		Title:             activity.Title,
		Description:       activity.Description,
		Status:            string(activity.Status),
		ActivityType:      string(activity.Type),
		Duration:          activity.DurationMin,
		CaloriesBurned:    activity.CaloriesBurned,
		StartTime:         activity.StartTime.Format(localDateTimeLayout),
		AdditionalMetrics: activity.AdditionalMetrics,
	}

	var created activityDTO
	if err := a.client.do(ctx, request{method: http.MethodPost, path: createActivityPath, body: body}, &created); err != nil {
		return domain.Activity{}, err
	}
	return created.toDomain(), nil
}

func (a ActivityAPI) Delete(ctx context.Context, id domain.ActivityID) error {
	path := activitiesPath + "/delete/" + url.PathEscape(string(id))
	return a.client.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
