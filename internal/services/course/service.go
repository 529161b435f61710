package course

import (
	"context"
	"errors"

	"github.com/KirkDiggler/coursebot/internal/common/clock"
	"github.com/KirkDiggler/coursebot/internal/common/uuid"
	"github.com/KirkDiggler/coursebot/internal/models"
	courseRepo "github.com/KirkDiggler/coursebot/internal/repositories/course"
)

// service implements the Service interface
type service struct {
	courseRepo    courseRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new course service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CourseRepo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		courseRepo:    cfg.CourseRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateCourse stores a new public course. It does not look for an existing
// course first; duplicates are rejected by the repository.
func (s *service) CreateCourse(ctx context.Context, input *CreateCourseInput) (*CreateCourseOutput, error) {
	if input == nil || input.Code == "" || input.FullName == "" || input.Name == "" {
		return nil, ErrInvalidInput
	}

	course := &models.Course{
		ID:        s.uuidGenerator.NewUUID(),
		Code:      input.Code,
		FullName:  input.FullName,
		Name:      input.Name,
		Private:   false,
		CreatedAt: s.clock.Now(),
	}

	if err := s.courseRepo.Create(ctx, &courseRepo.CreateInput{
		Course: course,
	}); err != nil {
		return nil, err
	}

	return &CreateCourseOutput{
		Course: course,
	}, nil
}

// RemoveCourse deletes a course by name. A missing course is not an error.
func (s *service) RemoveCourse(ctx context.Context, input *RemoveCourseInput) (*RemoveCourseOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidInput
	}

	course, err := s.courseRepo.FindOne(ctx, &courseRepo.FindOneInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return &RemoveCourseOutput{Removed: false}, nil
		}
		return nil, err
	}

	if err := s.courseRepo.Destroy(ctx, &courseRepo.DestroyInput{
		Name: course.Name,
	}); err != nil {
		// Removed by someone else since FindOne
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return &RemoveCourseOutput{Removed: false}, nil
		}
		return nil, err
	}

	return &RemoveCourseOutput{Removed: true}, nil
}

// GetCourse retrieves a course by name
func (s *service) GetCourse(ctx context.Context, input *GetCourseInput) (*GetCourseOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidInput
	}

	course, err := s.courseRepo.FindOne(ctx, &courseRepo.FindOneInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	return &GetCourseOutput{
		Course: course,
	}, nil
}

// ListCourses returns every course ordered by code
func (s *service) ListCourses(ctx context.Context, input *ListCoursesInput) (*ListCoursesOutput, error) {
	output, err := s.courseRepo.FindAll(ctx, &courseRepo.FindAllInput{})
	if err != nil {
		return nil, err
	}

	return &ListCoursesOutput{
		Courses: output.Courses,
	}, nil
}
