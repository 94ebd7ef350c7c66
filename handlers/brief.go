// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/studio-revy/revy-brief/brief"
	"github.com/studio-revy/revy-brief/cliparse"
	"github.com/studio-revy/revy-brief/middleware"
	"github.com/studio-revy/revy-brief/models"
)

type BriefHandler struct {
	db  *sql.DB
	cfg cliparse.Config

	sessions *SessionHandler
}

func NewBriefHandler(db *sql.DB, cfg cliparse.Config) *BriefHandler {
	return &BriefHandler{db: db, cfg: cfg, sessions: NewSessionHandler(db, cfg)}
}

// GenerateBrief handles POST /brief. The answers come straight from
// the request body; nothing is persisted.
func (h *BriefHandler) GenerateBrief(w http.ResponseWriter, r *http.Request) {
	var req models.BriefRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Answers == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers are required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, brief.Build(req.Answers))
}

// GetSessionBrief handles GET /sessions/:token/brief, building the
// brief from the session's stored answers.
func (h *BriefHandler) GetSessionBrief(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	answers, ok := h.sessions.loadAnswers(w, token)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, brief.Build(answers))
}
