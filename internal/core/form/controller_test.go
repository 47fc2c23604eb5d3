package form

import (
	"context"
	"testing"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

type stubSubmitter struct {
	lastInput *ports.SubmissionInput
	err       error
}

func (s *stubSubmitter) Submit(_ context.Context, input ports.SubmissionInput) (*domain.Candidate, error) {
	s.lastInput = &input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Candidate{ID: "abc", FullName: input.FullName, Email: input.Email}, nil
}

func fillValid(c *Controller) {
	for id, v := range validAnswers() {
		c.SetValue(id, v)
	}
}

func TestController_Advance_BlocksInvalidStep(t *testing.T) {
	c := NewController()

	errs := c.Advance()
	if len(errs) == 0 {
		t.Fatalf("expected errors for empty fullName")
	}
	if c.Step() != 0 {
		t.Fatalf("step changed on failed advance: %d", c.Step())
	}

	c.SetValue("fullName", "Jean Dupont")
	if errs := c.Advance(); len(errs) != 0 {
		t.Fatalf("expected advance, got %v", errs)
	}
	if c.Step() != 1 {
		t.Fatalf("expected step 1, got %d", c.Step())
	}
}

func TestController_Advance_OnlyChecksCurrentStep(t *testing.T) {
	c := NewController()
	c.SetValue("fullName", "Jean Dupont")
	// Every later field is still empty; only fullName belongs to step 0.
	if errs := c.Advance(); len(errs) != 0 {
		t.Fatalf("later fields leaked into step validation: %v", errs)
	}
}

func TestController_Advance_ClampsAtFinalStep(t *testing.T) {
	c := NewController()
	fillValid(c)

	for i := 0; i < StepCount()*2; i++ {
		c.Advance()
	}
	if c.Step() != StepCount()-1 {
		t.Fatalf("expected final step %d, got %d", StepCount()-1, c.Step())
	}
	if !c.OnFinalStep() {
		t.Fatalf("expected OnFinalStep")
	}
}

func TestController_Progress(t *testing.T) {
	c := NewController()
	if got := c.Progress(); got != 1.0/float64(StepCount()) {
		t.Fatalf("unexpected progress: %f", got)
	}
}

func TestController_Submit_RejectsStaleState(t *testing.T) {
	c := NewController()
	fillValid(c)
	// A rewound step left an invalid value behind.
	c.SetValue("skills", []string{})

	sub := &stubSubmitter{}
	candidate, fieldErrs, err := c.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if candidate != nil {
		t.Fatalf("expected no candidate")
	}
	if fieldErrs["skills"] == "" {
		t.Fatalf("expected skills error, got %v", fieldErrs)
	}
	if sub.lastInput != nil {
		t.Fatalf("submitter called despite validation failure")
	}
}

func TestController_Submit_Success(t *testing.T) {
	c := NewController()
	fillValid(c)

	sub := &stubSubmitter{}
	candidate, fieldErrs, err := c.Submit(context.Background(), sub)
	if err != nil || len(fieldErrs) > 0 {
		t.Fatalf("unexpected failure: %v %v", err, fieldErrs)
	}
	if candidate == nil || candidate.FullName != "Jean Dupont" {
		t.Fatalf("unexpected candidate: %+v", candidate)
	}

	// Answers are discarded after a successful submit.
	if len(c.Answers()) != 0 || c.Step() != 0 {
		t.Fatalf("controller not reset after submit")
	}
}

func TestController_Submit_PreservesAnswersOnError(t *testing.T) {
	c := NewController()
	fillValid(c)

	sub := &stubSubmitter{err: domain.ErrDuplicateEmail}
	_, _, err := c.Submit(context.Background(), sub)
	if err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(c.Answers()) == 0 {
		t.Fatalf("answers discarded on failed submit")
	}
}

func TestController_Submit_MergesCustomTool(t *testing.T) {
	c := NewController()
	fillValid(c)
	c.SetValue("tools", []string{"Notion", OtherToolOption})
	c.SetValue(CustomToolField, "Basecamp")

	sub := &stubSubmitter{}
	if _, _, err := c.Submit(context.Background(), sub); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	tools := sub.lastInput.Tools
	if len(tools) != 2 || tools[0] != "Notion" || tools[1] != "Basecamp" {
		t.Fatalf("unexpected tools: %v", tools)
	}
	for _, tool := range tools {
		if tool == OtherToolOption {
			t.Fatalf("escape token leaked into tools: %v", tools)
		}
	}
}

func TestMergeTools_DropsTokenWithoutFreeText(t *testing.T) {
	tools := MergeTools([]string{"Jira", OtherToolOption}, "   ")
	if len(tools) != 1 || tools[0] != "Jira" {
		t.Fatalf("unexpected tools: %v", tools)
	}
}

func TestRestore_ClampsStep(t *testing.T) {
	c := Restore(ports.FormSessionState{Step: 99, Answers: map[string]any{"fullName": "Jean"}})
	if c.Step() != StepCount()-1 {
		t.Fatalf("expected clamp to final step, got %d", c.Step())
	}

	c = Restore(ports.FormSessionState{Step: -3})
	if c.Step() != 0 {
		t.Fatalf("expected clamp to 0, got %d", c.Step())
	}
}

func TestCatalog_EveryQuestionHasARule(t *testing.T) {
	schema := DefaultSchema()
	for _, q := range Questions() {
		if _, ok := schema[q.ID]; !ok {
			t.Fatalf("question %q has no validation rule", q.ID)
		}
	}
}
