package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

type stubCandidateRepo struct {
	byEmail   map[string]*domain.Candidate
	createErr error
	creates   int
}

func newStubCandidateRepo() *stubCandidateRepo {
	return &stubCandidateRepo{byEmail: make(map[string]*domain.Candidate)}
}

func (r *stubCandidateRepo) Create(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byEmail[c.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.creates++
	clone := *c
	clone.ID = "id-" + c.Email
	r.byEmail[c.Email] = &clone
	return &clone, nil
}

func (r *stubCandidateRepo) FindByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	if c, ok := r.byEmail[email]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCandidateNotFound
}

func (r *stubCandidateRepo) FindAll(_ context.Context) ([]*domain.Candidate, error) {
	out := make([]*domain.Candidate, 0, len(r.byEmail))
	for _, c := range r.byEmail {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

type stubGuard struct {
	seen    map[string]bool
	failing bool
}

func (g *stubGuard) SeenRecently(_ context.Context, email string) (bool, error) {
	if g.failing {
		return false, errors.New("redis down")
	}
	return g.seen[email], nil
}

func (g *stubGuard) Mark(_ context.Context, email string) error {
	if g.failing {
		return errors.New("redis down")
	}
	if g.seen == nil {
		g.seen = map[string]bool{}
	}
	g.seen[email] = true
	return nil
}

func validInput() ports.SubmissionInput {
	return ports.SubmissionInput{
		FullName:     "Jean Dupont",
		Email:        "jean@example.com",
		Availability: 12,
		Role:         "Développeur Backend",
		Skills:       []string{"React Native"},
		Motivation:   "Réduire le gaspillage.",
	}
}

func TestSubmissionService_Submit_Success(t *testing.T) {
	repo := newStubCandidateRepo()
	svc := NewSubmissionService(repo, &stubGuard{}, zerolog.Nop())

	created, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one insert, got %d", repo.creates)
	}
}

func TestSubmissionService_Submit_DefaultsOptionalFields(t *testing.T) {
	repo := newStubCandidateRepo()
	svc := NewSubmissionService(repo, nil, zerolog.Nop())

	created, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.Tools == nil || len(created.Tools) != 0 {
		t.Fatalf("expected empty tools slice, got %#v", created.Tools)
	}
	if created.GithubRepo != "" {
		t.Fatalf("expected empty githubRepo, got %q", created.GithubRepo)
	}
}

func TestSubmissionService_Submit_Duplicate(t *testing.T) {
	repo := newStubCandidateRepo()
	svc := NewSubmissionService(repo, nil, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.Submit(context.Background(), validInput()); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", repo.creates)
	}
}

func TestSubmissionService_Submit_GuardHit(t *testing.T) {
	repo := newStubCandidateRepo()
	guard := &stubGuard{seen: map[string]bool{"jean@example.com": true}}
	svc := NewSubmissionService(repo, guard, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validInput()); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail from guard, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("guard hit must not write, got %d inserts", repo.creates)
	}
}

func TestSubmissionService_Submit_GuardFailureIsAdvisory(t *testing.T) {
	repo := newStubCandidateRepo()
	svc := NewSubmissionService(repo, &stubGuard{failing: true}, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("guard outage must not block submissions: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one insert, got %d", repo.creates)
	}
}

func TestSubmissionService_Submit_RaceLostToUniqueIndex(t *testing.T) {
	// The check passes but the insert hits the unique index: the store-level
	// constraint is authoritative and the caller sees a duplicate.
	repo := newStubCandidateRepo()
	repo.createErr = domain.ErrDuplicateEmail
	svc := NewSubmissionService(repo, nil, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validInput()); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestSubmissionService_Submit_StorageError(t *testing.T) {
	repo := newStubCandidateRepo()
	repo.createErr = errors.New("connection reset")
	svc := NewSubmissionService(repo, nil, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validInput()); err == nil {
		t.Fatalf("expected storage error")
	}
}
