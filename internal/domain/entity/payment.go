package entity

import "time"

type Payment struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"user_id" firestore:"userId"`
	Amount      float64   `json:"amount" firestore:"amount"`
	Method      string    `json:"method" firestore:"method"`
	Date        time.Time `json:"date" firestore:"date"`
	Description string    `json:"description" firestore:"description"`
	Status      string    `json:"status" firestore:"status"`
}
