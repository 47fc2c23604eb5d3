package ports

import (
	"context"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
)

// CandidateRepository defines persistence operations over the candidates
// collection. Create must surface domain.ErrDuplicateEmail when the store's
// unique email index rejects the insert — that index is the authoritative
// duplicate guard; the service-level lookup is only a fast path.
type CandidateRepository interface {
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	FindByEmail(ctx context.Context, email string) (*domain.Candidate, error)
	FindAll(ctx context.Context) ([]*domain.Candidate, error)
}
