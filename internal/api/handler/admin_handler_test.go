package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
)

type stubListingRepo struct {
	candidates []*domain.Candidate
	err        error
}

func (r *stubListingRepo) Create(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	return c, nil
}

func (r *stubListingRepo) FindByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	return nil, domain.ErrCandidateNotFound
}

func (r *stubListingRepo) FindAll(_ context.Context) ([]*domain.Candidate, error) {
	return r.candidates, r.err
}

func TestAdminHandler_List_RendersCandidates(t *testing.T) {
	repo := &stubListingRepo{candidates: []*domain.Candidate{
		{
			FullName:     "Jean Dupont",
			Email:        "jean@example.com",
			Availability: 12.5,
			Role:         "Développeur Backend",
			Skills:       []string{"React Native", "Firebase"},
			Motivation:   "Réduire le gaspillage.",
			Tools:        []string{"Notion", "Basecamp"},
			GithubRepo:   "https://github.com/jean/app",
			CreatedAt:    time.Now().UTC(),
		},
		{
			FullName:  "Marie Curie",
			Email:     "marie@example.com",
			Role:      "Développeur Fullstack",
			Skills:    []string{"Node.js"},
			Tools:     []string{},
			CreatedAt: time.Now().UTC(),
		},
	}}
	h := NewAdminHandler(repo, zerolog.Nop())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"Jean Dupont",
		"jean@example.com",
		"12.5",
		"React Native, Firebase",
		"Notion, Basecamp",
		"Marie Curie",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("listing is missing %q", want)
		}
	}
}

func TestAdminHandler_List_EmptyStore(t *testing.T) {
	h := NewAdminHandler(&stubListingRepo{}, zerolog.Nop())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAdminHandler_ListJSON_ReturnsCandidates(t *testing.T) {
	repo := &stubListingRepo{candidates: []*domain.Candidate{
		{ID: "candidate-1", FullName: "Jean Dupont", Email: "jean@example.com"},
	}}
	h := NewAdminHandler(repo, zerolog.Nop())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListJSON(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out []domain.Candidate
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(out) != 1 || out[0].Email != "jean@example.com" {
		t.Fatalf("unexpected listing: %+v", out)
	}
}

func TestAdminHandler_ListJSON_EmptyStoreIsEmptyArray(t *testing.T) {
	h := NewAdminHandler(&stubListingRepo{}, zerolog.Nop())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListJSON(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestAdminHandler_List_RepositoryFailure(t *testing.T) {
	h := NewAdminHandler(&stubListingRepo{err: errors.New("mongo down")}, zerolog.Nop())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err == nil {
		t.Fatalf("expected the repository error to propagate")
	}
}
