package entity

import "time"

type Activity struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Message   string    `json:"message" firestore:"message"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}
