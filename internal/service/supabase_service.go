package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"medisync/internal/lead"
)

// SupabaseConfig points the service at a hosted Supabase project
type SupabaseConfig struct {
	URL     string
	Key     string
	Table   string
	Timeout time.Duration
}

// SupabaseService inserts demo requests through the Supabase REST API
type SupabaseService struct {
	baseURL string
	key     string
	table   string
	client  *http.Client
}

// NewSupabaseService creates a new Supabase service
func NewSupabaseService(cfg SupabaseConfig) *SupabaseService {
	table := cfg.Table
	if table == "" {
		table = "demo_requests"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SupabaseService{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		table:   table,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// supabaseError is the error body returned by PostgREST
type supabaseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// Insert adds one row to the demo requests table
func (s *SupabaseService) Insert(ctx context.Context, record lead.SubmissionRecord) error {
	if s.baseURL == "" || s.key == "" {
		return fmt.Errorf("%w: supabase url or key not configured", ErrNotConfigured)
	}

	jsonData, err := json.Marshal([]lead.SubmissionRecord{record})
	if err != nil {
		return fmt.Errorf("failed to marshal demo request: %w", err)
	}

	url := fmt.Sprintf("%s/rest/v1/%s", s.baseURL, s.table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create supabase request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeSupabaseError(resp)
	}
	return nil
}

// Ping checks that the table is reachable with the configured key
func (s *SupabaseService) Ping(ctx context.Context) error {
	if s.baseURL == "" || s.key == "" {
		return fmt.Errorf("%w: supabase url or key not configured", ErrNotConfigured)
	}

	url := fmt.Sprintf("%s/rest/v1/%s?select=name&limit=0", s.baseURL, s.table)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create supabase request: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: supabase returned status %d", ErrUpstream, resp.StatusCode)
	}
	return nil
}

func (s *SupabaseService) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
}

func decodeSupabaseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr supabaseError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		if apiErr.Code != "" {
			return fmt.Errorf("%w: supabase returned status %d (%s): %s", ErrUpstream, resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("%w: supabase returned status %d: %s", ErrUpstream, resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("%w: supabase returned status %d", ErrUpstream, resp.StatusCode)
}
