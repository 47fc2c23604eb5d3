package domain

// QuestionKind is the closed set of input variants a question can take.
// Rendering and validation both dispatch on it; adding a kind means adding
// a template branch and a rule constructor, nothing else.
type QuestionKind string

const (
	KindText          QuestionKind = "text"
	KindEmail         QuestionKind = "email"
	KindNumber        QuestionKind = "number"
	KindSingleChoice  QuestionKind = "single_choice"
	KindMultiChoice   QuestionKind = "multi_choice"
	KindLongText      QuestionKind = "long_text"
	KindCheckboxGroup QuestionKind = "checkbox_group"
)

// Question is one field of the recruitment form. The catalog ordering
// defines the step sequence; ids are stable keys into the answer set.
type Question struct {
	ID       string       `json:"id"`
	Kind     QuestionKind `json:"kind"`
	Prompt   string       `json:"prompt"`
	HelpText string       `json:"help_text,omitempty"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// HasOptions reports whether the question kind carries a fixed option set.
func (q Question) HasOptions() bool {
	switch q.Kind {
	case KindSingleChoice, KindMultiChoice, KindCheckboxGroup:
		return true
	}
	return false
}
