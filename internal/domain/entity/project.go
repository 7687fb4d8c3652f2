package entity

import "time"

const (
	ProjectStatusNotStarted       = "Not Started"
	ProjectStatusInProgress       = "In Progress"
	ProjectStatusUnderReview      = "Under Review"
	ProjectStatusAwaitingFeedback = "Awaiting Feedback"
	ProjectStatusCompleted        = "Completed"
)

type Project struct {
	ID          string    `json:"id" firestore:"id"`
	ClientID    string    `json:"client_id" firestore:"clientId"`
	Title       string    `json:"title" firestore:"title"`
	Progress    int       `json:"progress" firestore:"progress"`
	Status      string    `json:"status" firestore:"status"`
	Notes       string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	LastUpdated time.Time `json:"last_updated" firestore:"lastUpdated"`
}
