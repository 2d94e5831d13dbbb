package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

type ActivityID string

type ActivityStatus string

const (
	ActivityPlanned    ActivityStatus = "planned"
	ActivityInProgress ActivityStatus = "in_progress"
	ActivityCompleted  ActivityStatus = "completed"
)

func ParseActivityStatus(raw string) (ActivityStatus, error) {
	switch status := ActivityStatus(strings.ToLower(strings.TrimSpace(raw))); status {
	case "":
		return ActivityPlanned, nil
	case ActivityPlanned, ActivityInProgress, ActivityCompleted:
		return status, nil
	default:
		return "", &ValidationError{Field: "status", Message: "Status must be planned, in_progress or completed"}
	}
}

type ActivityType string

const (
	ActivityRunning        ActivityType = "RUNNING"
	ActivityWalking        ActivityType = "WALKING"
	ActivitySwimming       ActivityType = "SWIMMING"
	ActivityWeightTraining ActivityType = "WEIGHT_TRAINING"
	ActivityCycling        ActivityType = "CYCLING"
	ActivityYoga           ActivityType = "YOGA"
	ActivityHIIT           ActivityType = "HIIT"
	ActivityDance          ActivityType = "DANCE"
	ActivityBoxing         ActivityType = "BOXING"
	ActivityPilates        ActivityType = "PILATES"
	ActivityAerobics       ActivityType = "AEROBICS"
	ActivityStretching     ActivityType = "STRETCHING"
	ActivityMartialArts    ActivityType = "MARTIAL_ARTS"
	ActivityRockClimbing   ActivityType = "ROCK_CLIMBING"
	ActivityHiking         ActivityType = "HIKING"
	ActivitySkating        ActivityType = "SKATING"
	ActivitySkiing         ActivityType = "SKIING"
	ActivitySnowboarding   ActivityType = "SNOWBOARDING"
	ActivitySurfing        ActivityType = "SURFING"
	ActivityGymnastics     ActivityType = "GYMNASTICS"
	ActivityCrossTraining  ActivityType = "CROSS_TRAINING"
)

var activityTypes = []ActivityType{
	ActivityRunning, ActivityWalking, ActivitySwimming, ActivityWeightTraining,
	ActivityCycling, ActivityYoga, ActivityHIIT, ActivityDance, ActivityBoxing,
	ActivityPilates, ActivityAerobics, ActivityStretching, ActivityMartialArts,
	ActivityRockClimbing, ActivityHiking, ActivitySkating, ActivitySkiing,
	ActivitySnowboarding, ActivitySurfing, ActivityGymnastics, ActivityCrossTraining,
}

func ActivityTypes() []ActivityType {
	return append([]ActivityType(nil), activityTypes...)
}

func ParseActivityType(raw string) (ActivityType, bool) {
	normalized := ActivityType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_")))
	for _, candidate := range activityTypes {
		if candidate == normalized {
			return candidate, true
		}
	}
	return "", false
}

// Label renders WEIGHT_TRAINING as "Weight Training".
func (t ActivityType) Label() string {
	words := strings.Split(strings.ToLower(string(t)), "_")
	for i, word := range words {
		if word == "hiit" {
			words[i] = "HIIT"
			continue
		}
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

type Activity struct {
	ID                ActivityID
	UserID            string
	Title             string
	Description       string
	Status            ActivityStatus
	Type              ActivityType
	DurationMin       int
	CaloriesBurned    int
	StartTime         time.Time
	AdditionalMetrics map[string]any
	Timestamp         time.Time
}

// NewActivity is a validated create request.
type NewActivity struct {
	Title             string
	Description       string
	Status            ActivityStatus
	Type              ActivityType
	DurationMin       int
	CaloriesBurned    int
	StartTime         time.Time
	AdditionalMetrics map[string]any
}

// ActivityInput is the raw create form as entered by the user.
type ActivityInput struct {
	Title             string
	Description       string
	Status            string
	Type              string
	DurationMin       int
	CaloriesBurned    int
	StartTime         time.Time
	AdditionalMetrics string
}

func (in ActivityInput) Validate() (NewActivity, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return NewActivity{}, &ValidationError{Field: "title", Message: "Please enter a title for your activity"}
	}
	if strings.TrimSpace(in.Type) == "" {
		return NewActivity{}, &ValidationError{Field: "type", Message: "Please select an activity type"}
	}
	activityType, ok := ParseActivityType(in.Type)
	if !ok {
		return NewActivity{}, &ValidationError{Field: "type", Message: "Please select an activity type"}
	}
	if in.DurationMin < 1 {
		return NewActivity{}, &ValidationError{Field: "duration", Message: "Duration must be at least 1 minute"}
	}
	if in.CaloriesBurned < 0 {
		return NewActivity{}, &ValidationError{Field: "caloriesBurned", Message: "Calories burned must be non-negative"}
	}
	if in.StartTime.IsZero() {
		return NewActivity{}, &ValidationError{Field: "startTime", Message: "Please select a start time"}
	}
	status, err := ParseActivityStatus(in.Status)
	if err != nil {
		return NewActivity{}, err
	}
	metrics, err := ParseAdditionalMetrics(in.AdditionalMetrics)
	if err != nil {
		return NewActivity{}, err
	}

	return NewActivity{
		Title:             title,
		Description:       strings.TrimSpace(in.Description),
		Status:            status,
		Type:              activityType,
		DurationMin:       in.DurationMin,
		CaloriesBurned:    in.CaloriesBurned,
		StartTime:         in.StartTime,
		AdditionalMetrics: metrics,
	}, nil
}

// ParseAdditionalMetrics accepts an empty string or a JSON object whose
// values are scalars.
func ParseAdditionalMetrics(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	invalid := &ValidationError{Field: "additionalMetrics", Message: "Additional metrics must be valid JSON"}

	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	decoder.UseNumber()
	var metrics map[string]any
	if err := decoder.Decode(&metrics); err != nil || metrics == nil {
		return nil, invalid
	}
	if decoder.More() {
		return nil, invalid
	}
	for _, value := range metrics {
		switch value.(type) {
		case nil, string, bool, json.Number:
		default:
			return nil, invalid
		}
	}

	return metrics, nil
}
