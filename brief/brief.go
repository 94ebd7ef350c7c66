// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package brief

import (
	"github.com/studio-revy/revy-brief/budget"
	"github.com/studio-revy/revy-brief/models"
	"github.com/studio-revy/revy-brief/questions"
	"github.com/studio-revy/revy-brief/resulttext"
	"github.com/studio-revy/revy-brief/rules"
	"github.com/studio-revy/revy-brief/style"
)

// Snapshot is the answers section of a brief rendered as display
// labels. Empty strings mean the question was not answered.
type Snapshot struct {
	ProjectFor          string   `json:"project_for,omitempty"`
	Occupancy           string   `json:"occupancy,omitempty"`
	StartTiming         string   `json:"start_timing,omitempty"`
	CompletionTiming    string   `json:"completion_timing,omitempty"`
	TimelineFlexibility string   `json:"timeline_flexibility,omitempty"`
	PermitRequired      string   `json:"permit_required,omitempty"`
	ScopeLevel          string   `json:"scope_level,omitempty"`
	ScopeLevelDetail    string   `json:"scope_level_detail,omitempty"`
	Rooms               []string `json:"rooms,omitempty"`

	InvestmentRange  string   `json:"investment_range,omitempty"`
	RangeFlexibility string   `json:"range_flexibility,omitempty"`
	SpendPhilosophy  string   `json:"spend_philosophy,omitempty"`
	FinishLevel      string   `json:"finish_level,omitempty"`
	SplurgeAreas     []string `json:"splurge_areas,omitempty"`

	ColorMood string `json:"color_mood,omitempty"`
}

// BudgetSection is the budget read on a brief. Capacity and fit are
// omitted when the client declined to share an investment range.
type BudgetSection struct {
	Complexity int        `json:"remodel_complexity_score"`
	Capacity   int        `json:"capacity_points,omitempty"`
	Fit        budget.Fit `json:"budget_fit,omitempty"`
}

// Brief is the full generated project brief.
type Brief struct {
	Snapshot Snapshot `json:"snapshot"`

	ExteriorLabel   string `json:"exterior_label,omitempty"`
	DesignDirection string `json:"design_direction,omitempty"`

	Style   style.Result      `json:"style"`
	Text    resulttext.Result `json:"text"`
	Profile style.Profile     `json:"profile"`

	Budget BudgetSection `json:"budget"`

	Rules []rules.Rule `json:"rules"`
}

var labelIndex = questions.BuildLabelIndex(questions.All())

func buildSnapshot(answers models.Answers) Snapshot {
	one := func(qid string) string {
		return labelIndex.ResolveOne(answers, qid).Label
	}
	scope := labelIndex.ResolveOne(answers, "scope_level")
	return Snapshot{
		ProjectFor:          one("project_for"),
		Occupancy:           one("occupancy"),
		StartTiming:         one("start_timing"),
		CompletionTiming:    one("completion_timing"),
		TimelineFlexibility: one("timeline_flexibility"),
		PermitRequired:      one("permit_required"),
		ScopeLevel:          scope.Label,
		ScopeLevelDetail:    scope.Subtitle,
		Rooms:               labelIndex.ResolveMany(answers, "rooms"),

		InvestmentRange:  one("investment_range"),
		RangeFlexibility: one("range_flexibility"),
		SpendPhilosophy:  one("spend_philosophy"),
		FinishLevel:      one("finish_level"),
		SplurgeAreas:     labelIndex.ResolveMany(answers, "splurge_areas"),

		ColorMood: one("color_mood"),
	}
}

// Build generates the complete brief for a set of answers: the answer
// snapshot, the exterior design direction, the scored style with its
// narrative and profile, the budget read, and the applicable guidance
// rules.
func Build(answers models.Answers) Brief {
	styleResult := style.Score(answers)
	assessment := budget.Assess(answers)

	b := Brief{
		Snapshot: buildSnapshot(answers),

		ExteriorLabel:   labelIndex.ResolveOne(answers, "home_exterior_style").Label,
		DesignDirection: DesignDirection(answers.First("home_exterior_style")),

		Style:   styleResult,
		Text:    resulttext.Generate(styleResult, answers),
		Profile: style.BuildProfile(styleResult),

		Budget: BudgetSection{Complexity: assessment.Complexity},

		Rules: rules.Select(rules.BuildContext(answers, assessment)),
	}
	if assessment.HasCapacity {
		b.Budget.Capacity = assessment.Capacity
		b.Budget.Fit = assessment.Fit
	}
	return b
}
