package users

import "time"

// User is created on a user's first authenticated analysis request and is
// immutable afterwards.
type User struct {
	ID          string    `json:"id"`
	AuthSubject string    `json:"authSubject"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}
