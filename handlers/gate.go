// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/studio-revy/revy-brief/auth"
	"github.com/studio-revy/revy-brief/cliparse"
	"github.com/studio-revy/revy-brief/middleware"
	"github.com/studio-revy/revy-brief/models"
)

type GateHandler struct {
	cfg cliparse.Config
}

func NewGateHandler(cfg cliparse.Config) *GateHandler {
	return &GateHandler{cfg: cfg}
}

// Login handles POST /login
func (h *GateHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.ValidateAccessCode(req.Code, h.cfg.AccessCode); err != nil {
		slog.Info("login rejected", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid access code")
		return
	}

	slog.Info("login accepted", "remote", r.RemoteAddr)

	token := auth.GenerateGateToken(h.cfg.GateSalt)

	// Browser clients ride on the cookie; API clients use the token
	// from the body in the X-Gate-Token header.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.GateCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Message: "Welcome",
		Token:   token,
	})
}
