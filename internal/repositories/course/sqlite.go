package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/coursebot/internal/models"
	"github.com/mattn/go-sqlite3"
)

const createCoursesTable = `CREATE TABLE IF NOT EXISTS courses (
	name       TEXT PRIMARY KEY,
	id         TEXT NOT NULL,
	code       TEXT NOT NULL UNIQUE,
	full_name  TEXT NOT NULL,
	private    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at DATETIME NOT NULL
)`

// Tables created before codes were unique get the index here
const createCourseCodeIndex = `CREATE UNIQUE INDEX IF NOT EXISTS courses_code ON courses (code)`

const selectCourse = `SELECT id, code, full_name, name, private, created_at FROM courses`

// SQLiteConfig holds configuration for the SQLite course repository
type SQLiteConfig struct {
	// DB is a database opened with the "sqlite3" driver; the repository does not close it
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on a SQLite table
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed course repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("sqlite database cannot be nil")
	}

	if _, err := cfg.DB.Exec(createCoursesTable); err != nil {
		return nil, fmt.Errorf("failed to create courses table: %w", err)
	}

	if _, err := cfg.DB.Exec(createCourseCodeIndex); err != nil {
		return nil, fmt.Errorf("failed to create course code index: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// FindOne retrieves a course by name from SQLite
func (r *sqliteRepository) FindOne(ctx context.Context, input *FindOneInput) (*models.Course, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and course name cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, selectCourse+` WHERE name = ?`, input.Name)

	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course %s: %w", input.Name, err)
	}

	return course, nil
}

// Create inserts a course row. Name and code are both unique, so a second
// course with either is rejected.
func (r *sqliteRepository) Create(ctx context.Context, input *CreateInput) error {
	if input == nil || input.Course == nil || input.Course.Name == "" || input.Course.Code == "" {
		return errors.New("input, course name and code cannot be empty")
	}

	course := input.Course
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (name, id, code, full_name, private, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		course.Name, course.ID, course.Code, course.FullName, course.Private, course.CreatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrCourseAlreadyExists
		}
		return fmt.Errorf("failed to insert course %s: %w", course.Name, err)
	}

	return nil
}

// Destroy deletes a course row by name
func (r *sqliteRepository) Destroy(ctx context.Context, input *DestroyInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and course name cannot be empty")
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE name = ?`, input.Name)
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", input.Name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", input.Name, err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// FindAll retrieves every course ordered by code
func (r *sqliteRepository) FindAll(ctx context.Context, input *FindAllInput) (*FindAllOutput, error) {
	rows, err := r.db.QueryContext(ctx, selectCourse+` ORDER BY code, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return &FindAllOutput{
		Courses: courses,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var course models.Course
	if err := row.Scan(&course.ID, &course.Code, &course.FullName, &course.Name, &course.Private, &course.CreatedAt); err != nil {
		return nil, err
	}
	return &course, nil
}
