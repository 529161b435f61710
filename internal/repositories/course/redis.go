package course

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/coursebot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	courseKeyPrefix     = "course:"
	courseCodeKeyPrefix = "course_code:"
	courseNamesKey      = "course_names"
)

// createCourseScript stores the course, claims its code and indexes its name
// in one step. KEYS: course, course code, name index. ARGV: course JSON, name.
var createCourseScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 or redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1])
redis.call("SET", KEYS[2], ARGV[2])
redis.call("SADD", KEYS[3], ARGV[2])
return 1
`)

// destroyCourseScript removes the course and its index entries. The code key
// is released only while it still belongs to the course.
var destroyCourseScript = redis.NewScript(`
if redis.call("DEL", KEYS[1]) == 0 then
	return 0
end
if redis.call("GET", KEYS[2]) == ARGV[1] then
	redis.call("DEL", KEYS[2])
end
redis.call("SREM", KEYS[3], ARGV[1])
return 1
`)

// RedisConfig holds configuration for the Redis course repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed course repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func courseKey(name string) string {
	return fmt.Sprintf("%s%s", courseKeyPrefix, name)
}

func courseCodeKey(code string) string {
	return fmt.Sprintf("%s%s", courseCodeKeyPrefix, code)
}

// FindOne retrieves a course by name from Redis
func (r *redisRepository) FindOne(ctx context.Context, input *FindOneInput) (*models.Course, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and course name cannot be empty")
	}

	courseJSON, err := r.client.Get(ctx, courseKey(input.Name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	var course models.Course
	if err := json.Unmarshal([]byte(courseJSON), &course); err != nil {
		return nil, fmt.Errorf("failed to unmarshal course: %w", err)
	}

	return &course, nil
}

// Create persists a new course to Redis
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) error {
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

	keys := []string{courseKey(input.Course.Name), courseCodeKey(input.Course.Code), courseNamesKey}
	created, err := createCourseScript.Run(ctx, r.client, keys, courseJSON, input.Course.Name).Int()
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	if created == 0 {
		return ErrCourseAlreadyExists
	}

	return nil
}

// Destroy removes a course from Redis
func (r *redisRepository) Destroy(ctx context.Context, input *DestroyInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and course name cannot be empty")
	}

	course, err := r.FindOne(ctx, &FindOneInput{Name: input.Name})
	if err != nil {
		return err
	}

	keys := []string{courseKey(course.Name), courseCodeKey(course.Code), courseNamesKey}
	deleted, err := destroyCourseScript.Run(ctx, r.client, keys, course.Name).Int()
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if deleted == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// FindAll retrieves every course from Redis
func (r *redisRepository) FindAll(ctx context.Context, input *FindAllInput) (*FindAllOutput, error) {
	names, err := r.client.SMembers(ctx, courseNamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get course names: %w", err)
	}

	if len(names) == 0 {
		return &FindAllOutput{
			Courses: []*models.Course{},
		}, nil
	}

	// Fetch all course records in one round trip
	pipe := r.client.Pipeline()
	courseCommands := make(map[string]*redis.StringCmd, len(names))
	for _, name := range names {
		courseCommands[name] = pipe.Get(ctx, courseKey(name))
	}

	// A missing key surfaces as redis.Nil from Exec; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	courses := make([]*models.Course, 0, len(names))
	for name, cmd := range courseCommands {
		courseJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Course was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get course %s: %w", name, err)
		}

		var course models.Course
		if err := json.Unmarshal([]byte(courseJSON), &course); err != nil {
			return nil, fmt.Errorf("failed to unmarshal course %s: %w", name, err)
		}

		courses = append(courses, &course)
	}

	sortCourses(courses)

	return &FindAllOutput{
		Courses: courses,
	}, nil
}

func sortCourses(courses []*models.Course) {
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].Code == courses[j].Code {
			return courses[i].Name < courses[j].Name
		}
		return courses[i].Code < courses[j].Code
	})
}
