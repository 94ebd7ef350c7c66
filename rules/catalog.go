// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rules

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// baseOrder fixes the presentation order of the always-considered rule
// families. Finish-strategy variants (FN-01) are selected separately
// and appended after the base rules.
var baseOrder = []string{"fs-01", "fs-02", "bu-01", "bu-02", "bu-03", "fn-02"}

const finishStrategyFile = "fn-01"

var (
	baseRules   []Rule
	finishRules []Rule
)

func init() {
	for _, name := range baseOrder {
		baseRules = append(baseRules, mustLoad(name)...)
	}
	finishRules = mustLoad(finishStrategyFile)
	for _, r := range finishRules {
		if r.Trigger == "" {
			panic(fmt.Sprintf("rules: finish-strategy rule %s has no trigger", r.ID))
		}
	}
}

func mustLoad(name string) []Rule {
	raw, err := catalogFS.ReadFile("catalog/" + name + ".yaml")
	if err != nil {
		panic(fmt.Sprintf("rules: missing catalog file %s: %v", name, err))
	}
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("rules: bad catalog file %s: %v", name, err))
	}
	if len(doc.Rules) == 0 {
		panic(fmt.Sprintf("rules: empty catalog file %s", name))
	}
	return doc.Rules
}

// Base returns the always-considered rules in presentation order.
func Base() []Rule {
	out := make([]Rule, len(baseRules))
	copy(out, baseRules)
	return out
}

// FinishStrategies returns the opt-in finish-strategy variants.
func FinishStrategies() []Rule {
	out := make([]Rule, len(finishRules))
	copy(out, finishRules)
	return out
}
