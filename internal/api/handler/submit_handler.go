package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/antigaspi/recruitment-system/internal/api/metrics"
	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/form"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

const duplicateEmailMessage = "Cet email est déjà utilisé."

type SubmitHandler struct {
	submissions ports.SubmissionService
	schema      form.Schema
	logger      zerolog.Logger
}

func NewSubmitHandler(submissions ports.SubmissionService, logger zerolog.Logger) *SubmitHandler {
	return &SubmitHandler{
		submissions: submissions,
		schema:      form.DefaultSchema(),
		logger:      logger,
	}
}

// Submit handles POST /api/submit — validates and persists one candidate.
//
// @Summary      Submit a candidate application
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      submitRequest  true  "Candidate answers"
// @Success      200   {object}  submitResponse
// @Failure      400   {object}  submitResponse
// @Failure      500   {object}  submitResponse
// @Router       /api/submit [post]
func (h *SubmitHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error().Err(err).Msg("malformed submission payload")
		return c.JSON(http.StatusInternalServerError, submitResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}

	answers := toAnswerSet(req)
	if errs := h.schema.Validate(answers); len(errs) > 0 {
		metrics.SubmissionsRejectedTotal.WithLabelValues("validation").Inc()
		return c.JSON(http.StatusBadRequest, submitResponse{
			Success: false,
			Error:   errs.FirstError(),
		})
	}

	candidate, err := h.submissions.Submit(c.Request().Context(), form.BuildInput(answers))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, submitResponse{
				Success: false,
				Error:   duplicateEmailMessage,
			})
		}
		h.logger.Error().Err(err).Msg("submission failed")
		return c.JSON(http.StatusInternalServerError, submitResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, submitResponse{Success: true, User: candidate})
}

// toAnswerSet rebuilds the loosely-typed answer set the rule table expects.
func toAnswerSet(req submitRequest) form.AnswerSet {
	answers := form.AnswerSet{
		"fullName":     req.FullName,
		"email":        req.Email,
		"availability": req.Availability,
		"role":         req.Role,
		"skills":       req.Skills,
		"motivation":   req.Motivation,
		"tools":        req.Tools,
		"githubRepo":   req.GithubRepo,
	}
	answers[form.CustomToolField] = req.CustomTool
	return answers
}
