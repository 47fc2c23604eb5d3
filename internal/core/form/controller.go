package form

import (
	"context"
	"strings"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

// Submitter delivers a fully collected answer set. Both the in-process
// submission service and the HTTP client in pkg/client satisfy it.
type Submitter interface {
	Submit(ctx context.Context, input ports.SubmissionInput) (*domain.Candidate, error)
}

// Controller is the form state machine: a step index into the question
// catalog plus the answers collected so far. Validation happens only on
// Advance and Submit, never on SetValue.
type Controller struct {
	catalog []domain.Question
	schema  Schema
	step    int
	answers AnswerSet
}

// NewController returns a controller at step 0 with an empty answer set.
func NewController() *Controller {
	return &Controller{
		catalog: Questions(),
		schema:  DefaultSchema(),
		step:    0,
		answers: AnswerSet{},
	}
}

// Restore rebuilds a controller from persisted session state, clamping the
// step index into the valid range.
func Restore(state ports.FormSessionState) *Controller {
	c := NewController()
	if state.Answers != nil {
		c.answers = AnswerSet(state.Answers)
	}
	c.step = state.Step
	if c.step < 0 {
		c.step = 0
	}
	if c.step > len(c.catalog)-1 {
		c.step = len(c.catalog) - 1
	}
	return c
}

// Step returns the current zero-based step index.
func (c *Controller) Step() int {
	return c.step
}

// Question returns the question shown at the current step.
func (c *Controller) Question() domain.Question {
	return c.catalog[c.step]
}

// OnFinalStep reports whether the current step is the last one, where the
// form submits instead of advancing.
func (c *Controller) OnFinalStep() bool {
	return c.step == len(c.catalog)-1
}

// Progress returns (step+1)/N. Presentational only, not a contract.
func (c *Controller) Progress() float64 {
	return float64(c.step+1) / float64(len(c.catalog))
}

// SetValue writes a field value into the answer set without validating it.
func (c *Controller) SetValue(questionID string, value any) {
	c.answers[questionID] = value
}

// Answers returns the current answer set.
func (c *Controller) Answers() AnswerSet {
	return c.answers
}

// State snapshots the controller for the session store.
func (c *Controller) State() ports.FormSessionState {
	return ports.FormSessionState{Step: c.step, Answers: c.answers}
}

// Advance validates only the current step's question. On pass it moves one
// step forward, clamped at the final step. On failure the step index is
// unchanged and the field errors for this step are returned.
func (c *Controller) Advance() FieldErrors {
	errs := c.schema.Validate(c.answers, c.Question().ID)
	if len(errs) > 0 {
		return errs
	}
	if !c.OnFinalStep() {
		c.step++
	}
	return nil
}

// Submit re-validates the whole schema (a rewound step may hold stale
// invalid state), merges the tools escape option, and delivers the answers
// through the given Submitter. Field errors block the call before it ever
// reaches the submitter; the answer set is preserved either way so the
// applicant can retry without re-entering anything.
func (c *Controller) Submit(ctx context.Context, submitter Submitter) (*domain.Candidate, FieldErrors, error) {
	if errs := c.schema.Validate(c.answers); len(errs) > 0 {
		return nil, errs, nil
	}

	candidate, err := submitter.Submit(ctx, BuildInput(c.answers))
	if err != nil {
		return nil, nil, err
	}

	c.reset()
	return candidate, nil, nil
}

// reset discards the answer set after a successful submit.
func (c *Controller) reset() {
	c.step = 0
	c.answers = AnswerSet{}
}

// BuildInput converts a validated answer set into the typed submission
// input, applying the tools escape merge and trimming text fields.
func BuildInput(answers AnswerSet) ports.SubmissionInput {
	availability, _ := asNumber(answers["availability"])
	return ports.SubmissionInput{
		FullName:     strings.TrimSpace(asString(answers["fullName"])),
		Email:        strings.TrimSpace(asString(answers["email"])),
		Availability: availability,
		Role:         asString(answers["role"]),
		Skills:       asStringSlice(answers["skills"]),
		Motivation:   strings.TrimSpace(asString(answers["motivation"])),
		Tools:        MergeTools(asStringSlice(answers["tools"]), asString(answers[CustomToolField])),
		GithubRepo:   strings.TrimSpace(asString(answers["githubRepo"])),
	}
}

// MergeTools resolves the escape option: when tools contains OtherToolOption
// and the free text is non-empty, the free text takes the token's place.
// The literal token is dropped in every case.
func MergeTools(tools []string, customTool string) []string {
	customTool = strings.TrimSpace(customTool)
	merged := make([]string, 0, len(tools)+1)
	sawOther := false
	for _, tool := range tools {
		if tool == OtherToolOption {
			sawOther = true
			continue
		}
		merged = append(merged, tool)
	}
	if sawOther && customTool != "" {
		merged = append(merged, customTool)
	}
	return merged
}
