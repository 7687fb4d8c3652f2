package entity

import "time"

// Event dates are stored as "YYYY-MM-DD" strings so the upcoming-events
// range query works lexicographically.
type Event struct {
	ID          string    `json:"id" firestore:"id"`
	ClientID    string    `json:"client_id" firestore:"clientId"`
	Title       string    `json:"title" firestore:"title"`
	Date        string    `json:"date" firestore:"date"`
	Time        string    `json:"time,omitempty" firestore:"time,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedBy   string    `json:"created_by" firestore:"createdBy"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
