// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/studio-revy/revy-brief/cliparse"
	"github.com/studio-revy/revy-brief/handlers"
	"github.com/studio-revy/revy-brief/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	gateHandler := handlers.NewGateHandler(cfg)
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	briefHandler := handlers.NewBriefHandler(db, cfg)

	gate := middleware.WithGate(cfg.GateSalt)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Access gate (the only route reachable without a gate token)
	mux.HandleFunc("POST /login", middleware.WithLogging(gateHandler.Login))

	// Quiz sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(gate(sessionHandler.CreateSession)))
	mux.HandleFunc("GET /sessions/{token}/answers", middleware.WithLogging(gate(sessionHandler.GetAnswers)))
	mux.HandleFunc("PUT /sessions/{token}/answers", middleware.WithLogging(gate(sessionHandler.PutAnswers)))
	mux.HandleFunc("DELETE /sessions/{token}", middleware.WithLogging(gate(sessionHandler.DeleteSession)))

	// Brief generation
	mux.HandleFunc("POST /brief", middleware.WithLogging(gate(briefHandler.GenerateBrief)))
	mux.HandleFunc("GET /sessions/{token}/brief", middleware.WithLogging(gate(briefHandler.GetSessionBrief)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("revy-brief API v1"))
	})

	return mux
}
