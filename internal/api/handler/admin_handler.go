package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

// AdminHandler renders the read-only candidate listing. It reads the
// repository directly: there is no write path and nothing to orchestrate.
type AdminHandler struct {
	candidates ports.CandidateRepository
	logger     zerolog.Logger
}

func NewAdminHandler(candidates ports.CandidateRepository, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{candidates: candidates, logger: logger}
}

// candidateRow is the template payload: array fields pre-joined for display.
type candidateRow struct {
	FullName     string
	Email        string
	Availability string
	Role         string
	Skills       string
	Motivation   string
	Tools        string
	GithubRepo   string
}

type adminView struct {
	Candidates []candidateRow
}

// List handles GET /admin — every candidate, no pagination or filtering.
func (h *AdminHandler) List(c echo.Context) error {
	all, err := h.candidates.FindAll(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list candidates")
		return err
	}

	rows := make([]candidateRow, 0, len(all))
	for _, cand := range all {
		rows = append(rows, toRow(cand))
	}

	return c.Render(http.StatusOK, "admin.html", adminView{Candidates: rows})
}

// ListJSON handles GET /api/candidates — the listing for scripted access.
//
// @Summary      List all candidates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Candidate
// @Failure      401  {object}  errorResponse
// @Router       /api/candidates [get]
func (h *AdminHandler) ListJSON(c echo.Context) error {
	all, err := h.candidates.FindAll(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list candidates")
		return err
	}
	if all == nil {
		all = []*domain.Candidate{}
	}
	return c.JSON(http.StatusOK, all)
}

func toRow(c *domain.Candidate) candidateRow {
	return candidateRow{
		FullName:     c.FullName,
		Email:        c.Email,
		Availability: strconv.FormatFloat(c.Availability, 'f', -1, 64),
		Role:         c.Role,
		Skills:       strings.Join(c.Skills, ", "),
		Motivation:   c.Motivation,
		Tools:        strings.Join(c.Tools, ", "),
		GithubRepo:   c.GithubRepo,
	}
}
