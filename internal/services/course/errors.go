package course

// CourseError is a custom error type for course-related errors
type CourseError string

// Error implements the error interface
func (e CourseError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrCourseNotFound   CourseError = "course not found"
	ErrInvalidInput     CourseError = "code, full name and name are required"
	ErrNilConfig        CourseError = "config cannot be nil"
	ErrNilRepository    CourseError = "course repository cannot be nil"
	ErrNilClock         CourseError = "clock cannot be nil"
	ErrNilUUIDGenerator CourseError = "UUID generator cannot be nil"
)
