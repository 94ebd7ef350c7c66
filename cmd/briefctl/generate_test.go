// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studio-revy/revy-brief/brief"
)

func writeAnswersFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write answers file: %v", err)
	}
	return path
}

func TestGenerateBriefSummary(t *testing.T) {
	path := writeAnswersFile(t, `{
		"home_exterior_style": ["craftsman"],
		"rooms": ["kitchen", "primary_bath"],
		"scope_level": ["full"],
		"investment_range": ["100_200"]
	}`)

	var out bytes.Buffer
	if err := generateBrief(path, false, &out); err != nil {
		t.Fatalf("generateBrief() error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Budget:") {
		t.Error("Expected budget section in summary output")
	}
	if !strings.Contains(text, "Guidance:") {
		t.Error("Expected guidance section in summary output")
	}
	if !strings.Contains(text, "FN-02") {
		t.Errorf("Expected always-on rule in guidance list, got:\n%s", text)
	}
}

func TestGenerateBriefJSON(t *testing.T) {
	path := writeAnswersFile(t, `{"rooms": ["kitchen"], "scope_level": ["full"]}`)

	var out bytes.Buffer
	if err := generateBrief(path, true, &out); err != nil {
		t.Fatalf("generateBrief() error: %v", err)
	}

	var b brief.Brief
	if err := json.Unmarshal(out.Bytes(), &b); err != nil {
		t.Fatalf("Output is not valid brief JSON: %v", err)
	}
	if b.Text.Title == "" {
		t.Error("Expected non-empty title in JSON output")
	}
	if b.Budget.Complexity == 0 {
		t.Error("Expected non-zero complexity score")
	}
}

func TestGenerateBriefMissingFile(t *testing.T) {
	var out bytes.Buffer
	if err := generateBrief(filepath.Join(t.TempDir(), "nope.json"), false, &out); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestGenerateBriefInvalidJSON(t *testing.T) {
	path := writeAnswersFile(t, "{not json")

	var out bytes.Buffer
	if err := generateBrief(path, false, &out); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestListRules(t *testing.T) {
	var out bytes.Buffer
	if err := listRules(&out); err != nil {
		t.Fatalf("listRules() error: %v", err)
	}

	for _, id := range []string{"FS-01", "BU-01", "FN-02", "FN-01A2"} {
		if !strings.Contains(out.String(), id) {
			t.Errorf("Expected rule %s in output", id)
		}
	}
}

func TestListQuestions(t *testing.T) {
	var out bytes.Buffer
	if err := listQuestions(&out, true); err != nil {
		t.Fatalf("listQuestions() error: %v", err)
	}

	for _, id := range []string{"home_exterior_style", "rooms", "investment_range"} {
		if !strings.Contains(out.String(), id) {
			t.Errorf("Expected question %s in output", id)
		}
	}
	if !strings.Contains(out.String(), "kitchen") {
		t.Error("Expected options to be listed")
	}
}
