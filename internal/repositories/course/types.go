package course

import (
	"errors"

	"github.com/KirkDiggler/coursebot/internal/models"
)

var (
	// ErrCourseNotFound is returned when no course has the requested name
	ErrCourseNotFound = errors.New("course not found")

	// ErrCourseAlreadyExists is returned when a course with the same name or code is already stored
	ErrCourseAlreadyExists = errors.New("course already exists")
)

type FindOneInput struct {
	Name string
}

type CreateInput struct {
	Course *models.Course
}

type DestroyInput struct {
	Name string
}

type FindAllInput struct {
}

type FindAllOutput struct {
	Courses []*models.Course
}
