package models

import (
	"time"
)

// Course represents a course provisioned on the Discord server
type Course struct {
	// ID is the unique identifier for the course record
	ID string `json:"id"`

	// Code is the official course code, e.g. TKT-101
	Code string `json:"code"`

	// FullName is the display name of the course
	FullName string `json:"full_name"`

	// Name is the short token used to derive Discord category and channel names
	Name string `json:"name"`

	// Private hides the course category from members without the course role
	Private bool `json:"private"`

	// CreatedAt is when the course was created
	CreatedAt time.Time `json:"created_at"`
}

// Visibility returns the category visibility matching the course
func (c *Course) Visibility() Visibility {
	if c.Private {
		return VisibilityPrivate
	}
	return VisibilityPublic
}
