// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/studio-revy/revy-brief/cliparse"
	"github.com/studio-revy/revy-brief/middleware"
	"github.com/studio-revy/revy-brief/models"
)

type SessionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	token := uuid.NewString()
	now := time.Now().UTC()

	_, err := h.db.Exec(`
		INSERT INTO quiz_session (token, answers, created_at, updated_at)
		VALUES ($1, '{}', $2, $3)
	`, token, now, now)

	if err != nil {
		slog.Error("failed to insert session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("session created", "token", token)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		Token:     token,
		CreatedAt: now,
	})
}

// GetAnswers handles GET /sessions/:token/answers
func (h *SessionHandler) GetAnswers(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	answers, ok := h.loadAnswers(w, token)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetAnswersResponse{
		Token:   token,
		Answers: answers,
	})
}

// PutAnswers handles PUT /sessions/:token/answers
func (h *SessionHandler) PutAnswers(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	var req models.PutAnswersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Answers == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers are required")
		return
	}

	payload, err := json.Marshal(req.Answers.Clone())
	if err != nil {
		slog.Error("failed to marshal answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save answers")
		return
	}

	result, err := h.db.Exec(`
		UPDATE quiz_session SET answers = $1, updated_at = $2 WHERE token = $3
	`, string(payload), time.Now().UTC(), token)
	if err != nil {
		slog.Error("failed to update answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save answers")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read update result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save answers")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	slog.Info("answers saved", "token", token, "questions", len(req.Answers))

	middleware.JSONResponse(w, http.StatusOK, models.PutAnswersResponse{
		Token:   token,
		Message: "Answers saved",
	})
}

// DeleteSession handles DELETE /sessions/:token
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	result, err := h.db.Exec("DELETE FROM quiz_session WHERE token = $1", token)
	if err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read delete result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	slog.Info("session deleted", "token", token)

	w.WriteHeader(http.StatusNoContent)
}

// loadAnswers fetches and decodes the stored answers for a session,
// writing the error response itself on failure.
func (h *SessionHandler) loadAnswers(w http.ResponseWriter, token string) (models.Answers, bool) {
	var raw string
	err := h.db.QueryRow("SELECT answers FROM quiz_session WHERE token = $1", token).Scan(&raw)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to query session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}

	var answers models.Answers
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		slog.Error("failed to decode stored answers", "token", token, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Corrupt session data")
		return nil, false
	}
	if answers == nil {
		answers = models.Answers{}
	}
	return answers, true
}
