package domain

import "time"

type Recommendation struct {
	ID           string
	ActivityID   ActivityID
	UserID       string
	ActivityType ActivityType
	Text         string
	Improvements []string
	Suggestions  []string
	Safety       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

type Notification struct {
	ID        string
	Message   string
	Kind      NotificationKind
	CreatedAt time.Time
}
