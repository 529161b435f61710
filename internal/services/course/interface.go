package course

import "context"

// Service defines the interface for course record operations
type Service interface {
	// CreateCourse stores a new public course
	CreateCourse(ctx context.Context, input *CreateCourseInput) (*CreateCourseOutput, error)

	// RemoveCourse deletes a course by name if it exists
	RemoveCourse(ctx context.Context, input *RemoveCourseInput) (*RemoveCourseOutput, error)

	// GetCourse retrieves a course by name
	GetCourse(ctx context.Context, input *GetCourseInput) (*GetCourseOutput, error)

	// ListCourses returns every course ordered by code
	ListCourses(ctx context.Context, input *ListCoursesInput) (*ListCoursesOutput, error)
}
