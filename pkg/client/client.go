// Package client provides a typed HTTP client for the submission API. It
// implements the same Submitter contract as the in-process service, so a
// form controller can deliver answers to a remote instance transparently.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

const duplicateEmailMessage = "Cet email est déjà utilisé."

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL. A nil httpClient falls back
// to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type submitPayload struct {
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Availability float64  `json:"availability"`
	Role         string   `json:"role"`
	Skills       []string `json:"skills"`
	Motivation   string   `json:"motivation"`
	Tools        []string `json:"tools"`
	GithubRepo   string   `json:"githubRepo,omitempty"`
}

type submitEnvelope struct {
	Success bool              `json:"success"`
	User    *domain.Candidate `json:"user"`
	Error   string            `json:"error"`
}

// Submit serializes the answers, POSTs them to /api/submit, and maps the
// response envelope back. A duplicate rejection comes back as
// domain.ErrDuplicateEmail; every other failure is terminal for this call,
// no retries are attempted.
func (c *Client) Submit(ctx context.Context, input ports.SubmissionInput) (*domain.Candidate, error) {
	body, err := json.Marshal(submitPayload{
		FullName:     input.FullName,
		Email:        input.Email,
		Availability: input.Availability,
		Role:         input.Role,
		Skills:       input.Skills,
		Motivation:   input.Motivation,
		Tools:        input.Tools,
		GithubRepo:   input.GithubRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/submit", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit request: %w", err)
	}
	defer resp.Body.Close()

	var envelope submitEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if !envelope.Success {
		if resp.StatusCode == http.StatusBadRequest && envelope.Error == duplicateEmailMessage {
			return nil, domain.ErrDuplicateEmail
		}
		if envelope.Error == "" {
			return nil, fmt.Errorf("submission rejected with status %d", resp.StatusCode)
		}
		return nil, errors.New(envelope.Error)
	}
	if envelope.User == nil {
		return nil, errors.New("success response without candidate")
	}

	return envelope.User, nil
}
