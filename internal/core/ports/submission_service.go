package ports

import (
	"context"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
)

// SubmissionInput carries one fully collected and validated answer set.
type SubmissionInput struct {
	FullName     string
	Email        string
	Availability float64
	Role         string
	Skills       []string
	Motivation   string
	Tools        []string
	GithubRepo   string
}

// SubmissionService persists one candidate record per successful call.
// Submit returns domain.ErrDuplicateEmail when the email is already taken,
// without writing anything.
type SubmissionService interface {
	Submit(ctx context.Context, input SubmissionInput) (*domain.Candidate, error)
}

// SubmissionGuard is an advisory recently-seen marker for submitted emails.
// A hit short-circuits the duplicate check before any store round-trip; a
// miss proves nothing — the store's unique index remains authoritative.
type SubmissionGuard interface {
	SeenRecently(ctx context.Context, email string) (bool, error)
	Mark(ctx context.Context, email string) error
}
