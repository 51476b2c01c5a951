// Package models defines the core data structures for contact submissions
// and the simulated city dashboard.
package models

import "time"

// Contact is a persisted contact-form submission.
type Contact struct {
	// ID is assigned by the database and increases with every insert.
	ID int64 `json:"id"`
	// Name of the person who submitted the form.
	Name string `json:"name"`
	// Email as typed by the submitter; it is not format-validated.
	Email string `json:"email"`
	// Message body.
	Message string `json:"message"`
	// CreatedAt is set by the storage layer at insertion time.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the email/password pair presented on login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
