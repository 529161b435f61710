package workshop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/coursebot/internal/models"
)

const defaultTimeout = 10 * time.Second

// Config holds configuration for the HTTP workshop client
type Config struct {
	// BaseURL is the endpoint sessions are requested from as <BaseURL>/<course code>
	BaseURL string

	// HTTPClient defaults to a client with a 10 second timeout
	HTTPClient *http.Client
}

// httpClient implements the Client interface over the workshop REST API
type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTP creates a new HTTP workshop client
func NewHTTP(cfg *Config) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
	}, nil
}

// GetSessions requests the sessions of a course
func (c *httpClient) GetSessions(ctx context.Context, input *GetSessionsInput) (*GetSessionsOutput, error) {
	if input == nil || input.CourseCode == "" {
		return nil, errors.New("input and course code cannot be empty")
	}

	endpoint := c.baseURL + "/" + url.PathEscape(input.CourseCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build workshop request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workshops for %s: %w", input.CourseCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("workshop API returned %d for %s: %s", resp.StatusCode, input.CourseCode, strings.TrimSpace(string(body)))
	}

	sessions := []*models.WorkshopSession{}
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		return nil, fmt.Errorf("failed to decode workshops for %s: %w", input.CourseCode, err)
	}

	for idx, session := range sessions {
		if session == nil {
			return nil, fmt.Errorf("workshop API returned a null session at index %d for %s", idx, input.CourseCode)
		}
	}

	return &GetSessionsOutput{
		Sessions: sessions,
	}, nil
}
