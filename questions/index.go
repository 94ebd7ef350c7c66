// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import "github.com/studio-revy/revy-brief/models"

// OptionText is the display copy for one option.
type OptionText struct {
	Label    string
	Subtitle string
}

// LabelIndex resolves question and option ids to display copy.
type LabelIndex map[string]map[string]OptionText

// BuildLabelIndex indexes the given questions by question id and
// option id.
func BuildLabelIndex(qs []Question) LabelIndex {
	idx := make(LabelIndex, len(qs))
	for _, q := range qs {
		opts := make(map[string]OptionText, len(q.Options))
		for _, o := range q.Options {
			opts[o.ID] = OptionText{Label: o.Label, Subtitle: o.Subtitle}
		}
		idx[q.ID] = opts
	}
	return idx
}

// ResolveOne returns the display copy for a single-select answer, or a
// zero OptionText when unanswered or unknown.
func (idx LabelIndex) ResolveOne(answers models.Answers, qid string) OptionText {
	id := answers.First(qid)
	if id == "" {
		return OptionText{}
	}
	return idx[qid][id]
}

// ResolveMany returns the labels for a multi-select answer, skipping
// ids the catalog does not know.
func (idx LabelIndex) ResolveMany(answers models.Answers, qid string) []string {
	var labels []string
	opts := idx[qid]
	for _, id := range answers.List(qid) {
		if hit, ok := opts[id]; ok {
			labels = append(labels, hit.Label)
		}
	}
	return labels
}
