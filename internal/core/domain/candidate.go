package domain

import (
	"errors"
	"time"
)

var ErrDuplicateEmail = errors.New("email already registered")
var ErrCandidateNotFound = errors.New("candidate not found")
var ErrAdminNotFound = errors.New("admin not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrFormSessionExpired = errors.New("form session expired")

// Candidate is a persisted application submitted through the recruitment form.
// Created exactly once per successful submission, never updated or deleted.
type Candidate struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Availability float64   `json:"availability"`
	Role         string    `json:"role"`
	Skills       []string  `json:"skills"`
	Motivation   string    `json:"motivation"`
	Tools        []string  `json:"tools"`
	GithubRepo   string    `json:"githubRepo,omitempty"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
}
