package course

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/coursebot/internal/models"
	bolt "go.etcd.io/bbolt"
)

var (
	coursesBucket = []byte("courses")

	// courseCodesBucket maps a course code to the name of its course
	courseCodesBucket = []byte("course_codes")
)

// BoltConfig holds configuration for the bbolt course repository
type BoltConfig struct {
	// DB is an open bbolt database; the repository does not close it
	DB *bolt.DB
}

// boltRepository implements the Repository interface on a local bbolt file
type boltRepository struct {
	db *bolt.DB
}

// NewBolt creates a new bbolt-backed course repository
func NewBolt(cfg *BoltConfig) (*boltRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("bolt database cannot be nil")
	}

	err := cfg.DB.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{coursesBucket, courseCodesBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create courses bucket: %w", err)
	}

	return &boltRepository{
		db: cfg.DB,
	}, nil
}

// FindOne retrieves a course by name from bbolt
func (r *boltRepository) FindOne(ctx context.Context, input *FindOneInput) (*models.Course, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and course name cannot be empty")
	}

	var course *models.Course
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(coursesBucket).Get([]byte(input.Name))
		if data == nil {
			return ErrCourseNotFound
		}

		course = &models.Course{}
		if err := json.Unmarshal(data, course); err != nil {
			return fmt.Errorf("failed to unmarshal course: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

// Create persists a new course to bbolt
func (r *boltRepository) Create(ctx context.Context, input *CreateInput) error {
	if input == nil || input.Course == nil {
		return errors.New("input and course cannot be nil")
	}

	if input.Course.Name == "" || input.Course.Code == "" {
		return errors.New("course name and code cannot be empty")
	}

	courseJSON, err := json.Marshal(input.Course)
	if err != nil {
		return fmt.Errorf("failed to marshal course: %w", err)
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(coursesBucket)
		codes := tx.Bucket(courseCodesBucket)
		key := []byte(input.Course.Name)
		code := []byte(input.Course.Code)
		if b.Get(key) != nil || codes.Get(code) != nil {
			return ErrCourseAlreadyExists
		}
		if err := b.Put(key, courseJSON); err != nil {
			return fmt.Errorf("failed to save course: %w", err)
		}
		if err := codes.Put(code, key); err != nil {
			return fmt.Errorf("failed to index course code: %w", err)
		}
		return nil
	})
}

// Destroy removes a course from bbolt
func (r *boltRepository) Destroy(ctx context.Context, input *DestroyInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and course name cannot be empty")
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(coursesBucket)
		key := []byte(input.Name)
		data := b.Get(key)
		if data == nil {
			return ErrCourseNotFound
		}

		var course models.Course
		if err := json.Unmarshal(data, &course); err != nil {
			return fmt.Errorf("failed to unmarshal course: %w", err)
		}

		if err := b.Delete(key); err != nil {
			return fmt.Errorf("failed to delete course: %w", err)
		}

		codes := tx.Bucket(courseCodesBucket)
		code := []byte(course.Code)
		if string(codes.Get(code)) == input.Name {
			if err := codes.Delete(code); err != nil {
				return fmt.Errorf("failed to release course code: %w", err)
			}
		}
		return nil
	})
}

// FindAll retrieves every course from bbolt
func (r *boltRepository) FindAll(ctx context.Context, input *FindAllInput) (*FindAllOutput, error) {
	courses := []*models.Course{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(coursesBucket).ForEach(func(name, data []byte) error {
			var course models.Course
			if err := json.Unmarshal(data, &course); err != nil {
				return fmt.Errorf("failed to unmarshal course %s: %w", name, err)
			}
			courses = append(courses, &course)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortCourses(courses)

	return &FindAllOutput{
		Courses: courses,
	}, nil
}
