// Package form implements the multi-step recruitment form: the question
// catalog, the declarative validation schema, and the step controller that
// walks an applicant through one question per step.
package form

import "github.com/antigaspi/recruitment-system/internal/core/domain"

// OtherToolOption is the escape option of the tools question. When selected
// together with a non-empty CustomToolField value, the free text replaces the
// literal token before submission; the token itself is never persisted.
const OtherToolOption = "Autre"

// CustomToolField is the free-text sibling of the tools question. It is not a
// catalog entry of its own: it is rendered alongside the tools step and only
// read when OtherToolOption is selected.
const CustomToolField = "customTool"

// questions is the static catalog. Ordering defines the step sequence.
var questions = []domain.Question{
	{
		ID:       "fullName",
		Kind:     domain.KindText,
		Prompt:   "Quel est ton nom complet ?",
		HelpText: "Pour pouvoir te contacter de manière personnalisée.",
		Required: true,
	},
	{
		ID:       "email",
		Kind:     domain.KindEmail,
		Prompt:   "Quelle est ton adresse email ?",
		HelpText: "On ne l’utilisera que pour te répondre.",
		Required: true,
	},
	{
		ID:       "availability",
		Kind:     domain.KindNumber,
		Prompt:   "Combien d’heures par semaine peux-tu consacrer au projet ?",
		HelpText: "Estimation honnête, même si c’est peu !",
		Required: true,
	},
	{
		ID:       "role",
		Kind:     domain.KindSingleChoice,
		Prompt:   "Quel rôle veux-tu occuper ?",
		HelpText: "Choisis celui qui te correspond le mieux.",
		Options:  []string{"Développeur Frontend", "Développeur Backend", "Designer UX/UI"},
		Required: true,
	},
	{
		ID:       "skills",
		Kind:     domain.KindMultiChoice,
		Prompt:   "Quelles sont les technologies que tu maîtrises ?",
		HelpText: "Les langages/technologies que tu connais.",
		Options:  []string{"React Native", "Tailwind CSS", "Figma", "Supabase", "PostgreSQL", "JAVA"},
		Required: true,
	},
	{
		ID:       "motivation",
		Kind:     domain.KindLongText,
		Prompt:   "Pourquoi souhaites-tu rejoindre ce projet anti-gaspi ?",
		HelpText: "Dis-nous ce qui te motive !",
		Required: true,
	},
	{
		ID:       "githubRepo",
		Kind:     domain.KindText,
		Prompt:   "Ton repo GitHub",
		HelpText: "Partage un lien vers un de tes dépôts si tu veux.",
		Required: false,
	},
	{
		ID:       "tools",
		Kind:     domain.KindCheckboxGroup,
		Prompt:   "Quels outils de gestion préfères-tu ?",
		HelpText: "Tu peux en choisir plusieurs. Si tu en utilises un autre, indique-le.",
		Options:  []string{"Notion", "Trello", "Jira", "Monday", OtherToolOption},
		Required: false,
	},
}

// Questions returns the ordered question catalog.
func Questions() []domain.Question {
	return questions
}

// StepCount returns the number of steps in the form (one question per step).
func StepCount() int {
	return len(questions)
}
