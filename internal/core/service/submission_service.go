package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/antigaspi/recruitment-system/internal/api/metrics"
	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

// SubmissionService persists candidate submissions, enforcing the unique
// email contract. The in-service lookup and the Redis guard are both fast
// paths; the store's unique index settles concurrent duplicates.
type SubmissionService struct {
	repo   ports.CandidateRepository
	guard  ports.SubmissionGuard
	logger zerolog.Logger
}

// NewSubmissionService creates a SubmissionService. guard may be nil, in
// which case every submission goes straight to the repository checks.
func NewSubmissionService(repo ports.CandidateRepository, guard ports.SubmissionGuard, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, guard: guard, logger: logger}
}

// Submit creates exactly one candidate record, or none on any failure path.
func (s *SubmissionService) Submit(ctx context.Context, input ports.SubmissionInput) (*domain.Candidate, error) {
	if s.guard != nil {
		seen, err := s.guard.SeenRecently(ctx, input.Email)
		if err != nil {
			// The guard is advisory. A Redis failure must not block submissions.
			s.logger.Warn().Err(err).Msg("submission guard unavailable")
		} else if seen {
			metrics.SubmissionsRejectedTotal.WithLabelValues("duplicate").Inc()
			return nil, domain.ErrDuplicateEmail
		}
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrCandidateNotFound) {
		s.logger.Error().Err(err).Msg("duplicate lookup failed")
		return nil, err
	}
	if existing != nil {
		metrics.SubmissionsRejectedTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateEmail
	}

	tools := input.Tools
	if tools == nil {
		tools = []string{}
	}

	candidate := &domain.Candidate{
		FullName:     input.FullName,
		Availability: input.Availability,
		Role:         input.Role,
		Skills:       input.Skills,
		Motivation:   input.Motivation,
		Tools:        tools,
		GithubRepo:   input.GithubRepo,
		Email:        input.Email,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Lost the check-then-insert race; the unique index caught it.
			metrics.SubmissionsRejectedTotal.WithLabelValues("duplicate").Inc()
			return nil, domain.ErrDuplicateEmail
		}
		s.logger.Error().Err(err).Msg("failed to create candidate")
		metrics.SubmissionsRejectedTotal.WithLabelValues("storage").Inc()
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard.Mark(ctx, input.Email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to mark submission guard")
		}
	}

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("candidate submitted")
	metrics.SubmissionsCreatedTotal.WithLabelValues(created.Role).Inc()

	return created, nil
}
