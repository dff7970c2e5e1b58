package models

import "time"

// Admin represents the single operator account that can manage memory
// pages. Sensitive fields must never be exposed outside trusted boundaries.
type Admin struct {
	// Username is the unique admin login identifier.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the admin password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the admin account was seeded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
