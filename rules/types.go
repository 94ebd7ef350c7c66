// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rules

import (
	"github.com/studio-revy/revy-brief/trigger"
)

// Badge is a short callout attached to a rule.
type Badge struct {
	Tone  string `yaml:"tone" json:"tone"` // positive, warning, info
	Icon  string `yaml:"icon" json:"icon"` // check, warning, info
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
}

// Subsection is a titled bullet list inside a rule section. When
// VisibleWhen is set, the subsection only renders for contexts where
// the trigger fires.
type Subsection struct {
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Bullets     []string `yaml:"bullets" json:"bullets"`
	VisibleWhen string   `yaml:"visible_when,omitempty" json:"-"`
}

// Section groups subsections under a heading.
type Section struct {
	ID             string       `yaml:"id" json:"id"`
	Title          string       `yaml:"title" json:"title"`
	WhyThisMatters string       `yaml:"why_this_matters,omitempty" json:"why_this_matters,omitempty"`
	Subsections    []Subsection `yaml:"subsections,omitempty" json:"subsections,omitempty"`
	Advisory       string       `yaml:"advisory,omitempty" json:"advisory,omitempty"`
}

// Rule is one guidance rule from the catalog.
type Rule struct {
	ID             string    `yaml:"id" json:"id"`
	Family         string    `yaml:"family" json:"family"`
	Name           string    `yaml:"name" json:"name"`
	Category       string    `yaml:"category" json:"category"`
	Trigger        string    `yaml:"trigger,omitempty" json:"-"`
	Recommendation string    `yaml:"recommendation" json:"recommendation"`
	WhyShowing     string    `yaml:"why_showing,omitempty" json:"why_showing,omitempty"`
	LightScopeNote string    `yaml:"light_scope_note,omitempty" json:"light_scope_note,omitempty"`
	Badges         []Badge   `yaml:"badges,omitempty" json:"badges,omitempty"`
	Constraints    []string  `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	Sections       []Section `yaml:"sections,omitempty" json:"sections,omitempty"`
}

// forContext returns a copy of the rule with conditionally visible
// subsections resolved against the context. Sections left with no
// subsections and no advisory drop out entirely.
func (r Rule) forContext(ctx trigger.Context) Rule {
	if len(r.Sections) == 0 {
		return r
	}
	sections := make([]Section, 0, len(r.Sections))
	for _, sec := range r.Sections {
		subs := make([]Subsection, 0, len(sec.Subsections))
		for _, sub := range sec.Subsections {
			if sub.VisibleWhen != "" && !trigger.Evaluate(sub.VisibleWhen, ctx) {
				continue
			}
			subs = append(subs, sub)
		}
		if len(subs) == 0 && sec.Advisory == "" {
			continue
		}
		sec.Subsections = subs
		sections = append(sections, sec)
	}
	r.Sections = sections
	return r
}
