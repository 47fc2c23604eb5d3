package handler

import "github.com/antigaspi/recruitment-system/internal/core/domain"

// errorResponse is the standard error envelope returned on 4xx/5xx responses
// outside the submit endpoint.
type errorResponse struct {
	Error string `json:"error"`
}

// submitRequest mirrors the candidate answer set. availability stays loosely
// typed because clients send either a number or a numeric string; the rule
// table coerces it.
type submitRequest struct {
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Availability any      `json:"availability"`
	Role         string   `json:"role"`
	Skills       []string `json:"skills"`
	Motivation   string   `json:"motivation"`
	Tools        []string `json:"tools"`
	CustomTool   string   `json:"customTool"`
	GithubRepo   string   `json:"githubRepo"`
}

// submitResponse is the submit endpoint's success/failure envelope.
type submitResponse struct {
	Success bool              `json:"success"`
	User    *domain.Candidate `json:"user,omitempty"`
	Error   string            `json:"error,omitempty"`
}
