package ports

import "context"

// FormSessionState is the server-side home of one in-flight form: the
// current step index plus everything the applicant has answered so far.
// Values use the loosely-typed JSON representation (string, float64, []any).
type FormSessionState struct {
	Step    int            `json:"step"`
	Answers map[string]any `json:"answers"`
}

// FormSessionStore keeps in-flight form state under an opaque session id with
// a TTL. Abandoned forms expire; Delete is called on successful submit.
type FormSessionStore interface {
	Save(ctx context.Context, id string, state FormSessionState) error
	Load(ctx context.Context, id string) (*FormSessionState, error)
	Delete(ctx context.Context, id string) error
}
