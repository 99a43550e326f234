package domain

import "time"

// User represents a user of the application in the domain. Every other
// entity carries a non-nullable reference back to its owning user.
type User struct {
	UserID       string  `json:"userID"` // Primary Key (UUID)
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
