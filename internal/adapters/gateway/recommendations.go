package gateway

import (
	"context"
	"net/http"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

const (
	recommendationsPath = "/api/v1/recommendations"
	analyzePath         = "/api/v1/ai/analyze"
)

type recommendationDTO struct {
	ID                 flexibleID `json:"id"`
	ActivityID         flexibleID `json:"activityId"`
	UserID             flexibleID `json:"userId"`
	ActivityType       string     `json:"activityType"`
	RecommendationText string     `json:"recommendationText"`
	Recommendation     string     `json:"recommendation"`
	Improvements       []string   `json:"improvements"`
	Suggestions        []string   `json:"suggestions"`
	Safety             []string   `json:"safety"`
	CreatedAt          timestamp  `json:"createdAt"`
	UpdatedAt          timestamp  `json:"updatedAt"`
}

func (r recommendationDTO) toDomain() domain.Recommendation {
	text := r.RecommendationText
	if text == "" {
		text = r.Recommendation
	}
	activityType, ok := domain.ParseActivityType(r.ActivityType)
	if !ok {
		activityType = domain.ActivityType(r.ActivityType)
	}

	return domain.Recommendation{
		ID:           string(r.ID),
		ActivityID:   domain.ActivityID(r.ActivityID),
		UserID:       string(r.UserID),
		ActivityType: activityType,
		Text:         text,
		Improvements: r.Improvements,
		Suggestions:  r.Suggestions,
		Safety:       r.Safety,
		CreatedAt:    r.CreatedAt.Time(),
		UpdatedAt:    r.UpdatedAt.Time(),
	}
}

type analyzeRequest struct {
	ActivityID string `json:"activityId"`
}

type RecommendationAPI struct {
	client *Client
}

func (c *Client) Recommendations() RecommendationAPI {
	return RecommendationAPI{client: c}
}

// List sends the sort direction as sortDir, which is what the
// recommendation service reads.
func (r RecommendationAPI) List(ctx context.Context, params domain.QueryParams) (domain.Page[domain.Recommendation], error) {
	var page pageEnvelope[recommendationDTO]
	err := r.client.do(ctx, request{method: http.MethodGet, path: recommendationsPath, query: pageQuery(params, "sortDir")}, &page)
	if err != nil {
		return domain.Page[domain.Recommendation]{}, err
	}
	return domain.Page[domain.Recommendation]{Content: toRecommendations(page.Content), TotalPages: page.TotalPages}, nil
}

func (r RecommendationAPI) Analyze(ctx context.Context, activityID domain.ActivityID) ([]domain.Recommendation, error) {
	var recommendations []recommendationDTO
	err := r.client.do(ctx, request{
		method: http.MethodPost,
		path:   analyzePath,
		body:   analyzeRequest{ActivityID: string(activityID)},
	}, &recommendations)
	if err != nil {
		return nil, err
	}
	return toRecommendations(recommendations), nil
}

func toRecommendations(dtos []recommendationDTO) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out
}
