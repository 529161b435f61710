package workshop

// WorkshopError is a custom error type for workshop-related errors
type WorkshopError string

// Error implements the error interface
func (e WorkshopError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       WorkshopError = "config cannot be nil"
	ErrNilClient       WorkshopError = "workshop client cannot be nil"
	ErrEmptyCourseCode WorkshopError = "course code cannot be empty"
)
