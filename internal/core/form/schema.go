package form

import (
	"net/mail"
	"net/url"
	"strconv"
	"strings"
)

// AnswerSet holds the collected field values, keyed by question id. Values
// arrive either from HTML form posts or from a JSON body, so every rule
// coerces from the loosely-typed representation (string, float64, []string,
// []any) instead of assuming an exact Go type.
type AnswerSet map[string]any

// FieldErrors maps a question id to a human-readable validation message.
// An empty map means the checked fields all passed.
type FieldErrors map[string]string

// Schema is the declarative rule table: one predicate per question id,
// returning an empty string on pass or the field message on failure.
// Adding a question needs a catalog entry and a schema entry, never new
// control flow.
type Schema map[string]func(v any) string

// DefaultSchema builds the rule table for the recruitment form.
func DefaultSchema() Schema {
	return Schema{
		"fullName":   nonEmpty("Merci d’indiquer ton nom complet."),
		"email":      validEmail("Merci d’indiquer une adresse email valide."),
		"role":       nonEmpty("Merci de sélectionner un rôle."),
		"motivation": nonEmpty("Merci d’expliquer ce qui te motive."),
		"availability": positiveNumber(
			"Merci d’entrer un nombre.",
			"Indique un nombre d’heures supérieur à zéro.",
		),
		"skills":     nonEmptyList("Sélectionne au moins une technologie."),
		"tools":      optionalList(),
		"githubRepo": optionalURL("L’URL du dépôt GitHub n’est pas valide."),
	}
}

// Validate checks the given question ids against the rule table. With no ids
// it checks every rule (whole-form validation before submit).
func (s Schema) Validate(answers AnswerSet, ids ...string) FieldErrors {
	if len(ids) == 0 {
		ids = make([]string, 0, len(s))
		for id := range s {
			ids = append(ids, id)
		}
	}

	errs := FieldErrors{}
	for _, id := range ids {
		rule, ok := s[id]
		if !ok {
			continue
		}
		if msg := rule(answers[id]); msg != "" {
			errs[id] = msg
		}
	}
	return errs
}

// FirstError returns the message of the first failing field in catalog
// order, or "" when the set is empty. Map iteration order would make the
// reported message flap between requests.
func (e FieldErrors) FirstError() string {
	for _, q := range questions {
		if msg, ok := e[q.ID]; ok {
			return msg
		}
	}
	for _, msg := range e {
		return msg
	}
	return ""
}

// --- rule constructors ---

func nonEmpty(msg string) func(any) string {
	return func(v any) string {
		if strings.TrimSpace(asString(v)) == "" {
			return msg
		}
		return ""
	}
}

func validEmail(msg string) func(any) string {
	return func(v any) string {
		addr := strings.TrimSpace(asString(v))
		if addr == "" {
			return msg
		}
		if _, err := mail.ParseAddress(addr); err != nil {
			return msg
		}
		return ""
	}
}

func positiveNumber(notANumber, notPositive string) func(any) string {
	return func(v any) string {
		n, ok := asNumber(v)
		if !ok {
			return notANumber
		}
		if n <= 0 {
			return notPositive
		}
		return ""
	}
}

func nonEmptyList(msg string) func(any) string {
	return func(v any) string {
		if len(asStringSlice(v)) == 0 {
			return msg
		}
		return ""
	}
}

func optionalList() func(any) string {
	return func(any) string { return "" }
}

func optionalURL(msg string) func(any) string {
	return func(v any) string {
		raw := strings.TrimSpace(asString(v))
		if raw == "" {
			return ""
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return msg
		}
		return ""
	}
}

// TextValue returns the answer for id as a display string.
func TextValue(answers AnswerSet, id string) string {
	return asString(answers[id])
}

// SelectedValues returns the answer for id as a string list.
func SelectedValues(answers AnswerSet, id string) []string {
	return asStringSlice(answers[id])
}

// --- coercion helpers ---

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func asStringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
