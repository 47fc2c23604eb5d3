package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/antigaspi/recruitment-system/internal/api/metrics"
	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/form"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

const genericRetryMessage = "Une erreur est survenue. Merci de réessayer."

// FormHandler drives the server-rendered multi-step form. The answer set
// lives in the session store between requests; each rendered step carries
// the session id and its step index so stale posts can be detected.
type FormHandler struct {
	sessions  ports.FormSessionStore
	submitter form.Submitter
	logger    zerolog.Logger
}

func NewFormHandler(sessions ports.FormSessionStore, submitter form.Submitter, logger zerolog.Logger) *FormHandler {
	return &FormHandler{sessions: sessions, submitter: submitter, logger: logger}
}

// Start handles GET / — creates a fresh form session and renders step 0.
func (h *FormHandler) Start(c echo.Context) error {
	ctrl := form.NewController()
	id := newSessionID()

	if err := h.sessions.Save(c.Request().Context(), id, ctrl.State()); err != nil {
		return err
	}

	metrics.FormSessionsStartedTotal.Inc()
	return h.renderStep(c, id, ctrl, "", "")
}

// Step handles POST /form — applies the posted values to the session's
// controller, then advances or submits.
//
// A post whose step index does not match the session's current step is a
// late or duplicated response from a superseded step: it is ignored and the
// current step re-rendered, per the single-flight rule of the form.
func (h *FormHandler) Step(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.FormValue("session")
	state, err := h.sessions.Load(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFormSessionExpired) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}

	ctrl := form.Restore(*state)

	postedStep, err := strconv.Atoi(c.FormValue("step"))
	if err != nil || postedStep != ctrl.Step() {
		return h.renderStep(c, id, ctrl, "", "")
	}

	h.applyPostedValues(c, ctrl)

	if ctrl.OnFinalStep() {
		return h.submit(c, id, ctrl)
	}

	fieldErrs := ctrl.Advance()
	if err := h.sessions.Save(ctx, id, ctrl.State()); err != nil {
		return err
	}
	return h.renderStep(c, id, ctrl, fieldErrs.FirstError(), "")
}

// Thanks handles GET /thanks — the post-submit success view.
func (h *FormHandler) Thanks(c echo.Context) error {
	return c.Render(http.StatusOK, "thanks.html", nil)
}

func (h *FormHandler) submit(c echo.Context, id string, ctrl *form.Controller) error {
	ctx := c.Request().Context()

	candidate, fieldErrs, err := ctrl.Submit(ctx, h.submitter)
	switch {
	case len(fieldErrs) > 0:
		// Answers are kept so nothing has to be re-entered.
		if err := h.sessions.Save(ctx, id, ctrl.State()); err != nil {
			return err
		}
		return h.renderStep(c, id, ctrl, "", fieldErrs.FirstError())
	case errors.Is(err, domain.ErrDuplicateEmail):
		if err := h.sessions.Save(ctx, id, ctrl.State()); err != nil {
			return err
		}
		return h.renderStep(c, id, ctrl, "", duplicateEmailMessage)
	case err != nil:
		h.logger.Error().Err(err).Msg("form submission failed")
		if err := h.sessions.Save(ctx, id, ctrl.State()); err != nil {
			return err
		}
		return h.renderStep(c, id, ctrl, "", genericRetryMessage)
	}

	h.logger.Info().Str("email", candidate.Email).Msg("form session completed")
	if err := h.sessions.Delete(ctx, id); err != nil {
		h.logger.Warn().Err(err).Msg("failed to delete form session")
	}
	return c.Redirect(http.StatusSeeOther, "/thanks")
}

// applyPostedValues writes the current step's posted values into the
// controller. No validation happens here; Advance and Submit validate.
func (h *FormHandler) applyPostedValues(c echo.Context, ctrl *form.Controller) {
	q := ctrl.Question()

	switch q.Kind {
	case domain.KindMultiChoice, domain.KindCheckboxGroup:
		params, _ := c.FormParams()
		ctrl.SetValue(q.ID, params["values"])
		if q.ID == "tools" {
			ctrl.SetValue(form.CustomToolField, c.FormValue("customTool"))
		}
	default:
		ctrl.SetValue(q.ID, c.FormValue("value"))
	}
}

// stepView is the template payload for one form step.
type stepView struct {
	Session        string
	Step           int
	StepNumber     int
	TotalSteps     int
	ProgressPct    int
	Question       domain.Question
	Kind           string
	Value          string
	Selected       map[string]bool
	ShowCustomTool bool
	CustomTool     string
	FieldError     string
	Banner         string
	IsFinal        bool
}

func (h *FormHandler) renderStep(c echo.Context, id string, ctrl *form.Controller, fieldError, banner string) error {
	q := ctrl.Question()
	answers := ctrl.Answers()

	selected := map[string]bool{}
	for _, v := range form.SelectedValues(answers, q.ID) {
		selected[v] = true
	}

	view := stepView{
		Session:        id,
		Step:           ctrl.Step(),
		StepNumber:     ctrl.Step() + 1,
		TotalSteps:     form.StepCount(),
		ProgressPct:    int(math.Round(ctrl.Progress() * 100)),
		Question:       q,
		Kind:           string(q.Kind),
		Value:          form.TextValue(answers, q.ID),
		Selected:       selected,
		ShowCustomTool: q.ID == "tools",
		CustomTool:     form.TextValue(answers, form.CustomToolField),
		FieldError:     fieldError,
		Banner:         banner,
		IsFinal:        ctrl.OnFinalStep(),
	}

	return c.Render(http.StatusOK, "form.html", view)
}

// newSessionID returns an opaque 128-bit hex id.
func newSessionID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
