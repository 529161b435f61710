package course

import (
	"github.com/KirkDiggler/coursebot/internal/common/clock"
	"github.com/KirkDiggler/coursebot/internal/common/uuid"
	"github.com/KirkDiggler/coursebot/internal/models"
	courseRepo "github.com/KirkDiggler/coursebot/internal/repositories/course"
)

// Config holds configuration for the course service
type Config struct {
	// Repository dependencies
	CourseRepo courseRepo.Repository

	// Clock stamps CreatedAt
	Clock clock.Clock

	// UUIDGenerator assigns course IDs
	UUIDGenerator uuid.UUID
}

// CreateCourseInput contains parameters for creating a course
type CreateCourseInput struct {
	Code     string
	FullName string
	Name     string
}

// CreateCourseOutput contains the stored course
type CreateCourseOutput struct {
	Course *models.Course
}

// RemoveCourseInput contains parameters for removing a course
type RemoveCourseInput struct {
	Name string
}

// RemoveCourseOutput reports whether a course was removed
type RemoveCourseOutput struct {
	Removed bool
}

// GetCourseInput contains parameters for retrieving a course
type GetCourseInput struct {
	Name string
}

// GetCourseOutput contains the requested course
type GetCourseOutput struct {
	Course *models.Course
}

// ListCoursesInput contains parameters for listing courses
type ListCoursesInput struct {
}

// ListCoursesOutput contains all stored courses
type ListCoursesOutput struct {
	Courses []*models.Course
}
