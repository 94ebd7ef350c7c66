// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import (
	"github.com/studio-revy/revy-brief/models"
	"github.com/studio-revy/revy-brief/style"
)

// QuestionType distinguishes the two rendering modes.
type QuestionType string

const (
	SingleImage QuestionType = "single-image"
	MultiImage  QuestionType = "multi-image"
)

// Layout hints how a client should arrange the options.
type Layout string

const (
	LayoutStack Layout = "stack"
	LayoutGrid  Layout = "grid"
)

// PredicateKind tags the visibility conditions an option can carry.
// Conditions are data, not callbacks, so catalogs stay serializable
// and the rules for showing an option are inspectable.
type PredicateKind string

const (
	// PredicateSpaceVisible shows a gallery space when any of its
	// archetype weights is supported by the chosen exterior.
	PredicateSpaceVisible PredicateKind = "space_visible"
	// PredicateArchetypeSupported shows an option when the named
	// archetype is supported by the chosen exterior.
	PredicateArchetypeSupported PredicateKind = "archetype_supported"
)

// Predicate is an option visibility condition. The zero value is
// always visible.
type Predicate struct {
	Kind      PredicateKind
	SpaceID   string
	Archetype style.Archetype
}

// Visible evaluates the predicate against the current answers.
func (p Predicate) Visible(answers models.Answers) bool {
	switch p.Kind {
	case PredicateSpaceVisible:
		return ShouldShowSpace(p.SpaceID, answers)
	case PredicateArchetypeSupported:
		return IsArchetypeSupported(answers, p.Archetype)
	}
	return true
}

// Option is one selectable answer.
type Option struct {
	ID       string
	Label    string
	Subtitle string
	ImageURL string
	ShowIf   Predicate
}

// Question is one quiz question.
type Question struct {
	ID            string
	Title         string
	Subtitle      string
	Type          QuestionType
	Layout        Layout
	AllowMultiple bool
	Required      bool
	Options       []Option
}

// VisibleOptions filters a question's options against the answers so
// far.
func (q Question) VisibleOptions(answers models.Answers) []Option {
	out := make([]Option, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt.ShowIf.Visible(answers) {
			out = append(out, opt)
		}
	}
	return out
}

// supportedArchetypesByExterior narrows which archetypes make sense
// for a given exterior architecture. Exteriors missing from the table
// support everything.
var supportedArchetypesByExterior = map[string][]style.Archetype{
	"french_provincial":     {style.Parisian, style.Provincial},
	"mediterranean_spanish": {style.Mediterranean, style.Provincial},
	"cape_cod":              {style.Parisian, style.Provincial},
	"colonial":              {style.Parisian, style.Provincial},
	"craftsman":             {style.Provincial, style.Mediterranean},
	"modern_farmhouse":      {style.Provincial, style.Parisian},
	"ranch":                 {style.Mediterranean, style.Provincial},
	"midcentury_modern":     {style.Parisian, style.Mediterranean},
	"contemporary_modern":   {style.Parisian, style.Mediterranean},
	"tudor_english_cottage": {style.Parisian, style.Provincial},
	"victorian":             {style.Parisian},
}

// SupportedArchetypes returns the archetype set the chosen exterior
// supports. Before the exterior question is answered, everything is
// supported.
func SupportedArchetypes(answers models.Answers) map[style.Archetype]bool {
	supported := make(map[style.Archetype]bool, len(style.Archetypes))
	exterior := answers.First("home_exterior_style")
	if list, ok := supportedArchetypesByExterior[exterior]; ok && exterior != "" {
		for _, a := range list {
			supported[a] = true
		}
		return supported
	}
	for _, a := range style.Archetypes {
		supported[a] = true
	}
	return supported
}

// IsArchetypeSupported reports whether the archetype is reachable for
// the chosen exterior.
func IsArchetypeSupported(answers models.Answers, a style.Archetype) bool {
	return SupportedArchetypes(answers)[a]
}

// ShouldShowSpace reports whether a gallery space should show given
// the chosen exterior. A space shows when any of its archetype weights
// lands in the supported set; spaces with no tag data default to
// visible rather than hiding the gallery on bad data.
func ShouldShowSpace(spaceID string, answers models.Answers) bool {
	weights := style.SpaceArchetypes(spaceID)
	if len(weights) == 0 {
		return true
	}
	supported := SupportedArchetypes(answers)
	for a, w := range weights {
		if w > 0 && supported[a] {
			return true
		}
	}
	return false
}
