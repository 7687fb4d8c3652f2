package entity

import "time"

const (
	UserTypeAdmin  = "admin"
	UserTypeClient = "client"
)

type User struct {
	ID                string    `json:"id" firestore:"id"`
	Name              string    `json:"name" firestore:"name"`
	Email             string    `json:"email" firestore:"email"`
	Phone             string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	UserType          string    `json:"user_type" firestore:"userType"`
	BusinessHours     string    `json:"business_hours,omitempty" firestore:"businessHours,omitempty"`
	ActiveProjects    []string  `json:"active_projects" firestore:"activeProjects"`
	CompletedProjects []string  `json:"completed_projects" firestore:"completedProjects"`
	Balance           float64   `json:"balance" firestore:"balance"`
	PendingCharges    float64   `json:"pending_charges" firestore:"pendingCharges"`
	TotalSpent        float64   `json:"total_spent" firestore:"totalSpent"`
	NotificationCount int       `json:"notification_count" firestore:"notificationCount"`
	CreatedAt         time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt         time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// ChatKey returns the participant identifier this user appears under in the
// messages collection.
func (u *User) ChatKey() string {
	if u.IsAdmin() {
		return AdminKey
	}
	return u.ID
}
