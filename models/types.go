// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Answers maps a question id to the list of selected option ids.
// An absent key is equivalent to an empty selection. For single-select
// questions callers read the first element.
type Answers map[string][]string

// First returns the first selected option for a question, or "" when
// the question is unanswered.
func (a Answers) First(key string) string {
	v := a[key]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// List returns all selected options for a question. Never nil.
func (a Answers) List(key string) []string {
	v := a[key]
	if v == nil {
		return []string{}
	}
	return v
}

// Has reports whether the given option is selected for the question.
func (a Answers) Has(key, option string) bool {
	for _, v := range a[key] {
		if v == option {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, dropping nil entries.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		if v == nil {
			continue
		}
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// Request types

type LoginRequest struct {
	Code string `json:"code"`
}

type PutAnswersRequest struct {
	Answers Answers `json:"answers"`
}

type BriefRequest struct {
	Answers Answers `json:"answers"`
}

// Response types

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type CreateSessionResponse struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

type GetAnswersResponse struct {
	Token   string  `json:"token"`
	Answers Answers `json:"answers"`
}

type PutAnswersResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
