// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studio-revy/revy-brief/auth"
	"github.com/studio-revy/revy-brief/middleware"
	"github.com/studio-revy/revy-brief/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "revy-brief API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestGateEnforcement(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// Every gated route rejects requests without a token
	gated := []struct {
		method string
		path   string
	}{
		{"POST", "/sessions"},
		{"GET", "/sessions/test-token/answers"},
		{"PUT", "/sessions/test-token/answers"},
		{"DELETE", "/sessions/test-token"},
		{"POST", "/brief"},
		{"GET", "/sessions/test-token/brief"},
	}

	for _, tc := range gated {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401 without gate token, got %d", w.Code)
			}
		})
	}
}

func TestGatedRouteWithToken(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	token := auth.GenerateGateToken(cfg.GateSalt)

	req := httptest.NewRequest("POST", "/sessions", nil)
	req.Header.Set(middleware.GateTokenHeader, token)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201 with valid gate token, got %d. Body: %s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},   // Only GET is defined
		{"GET", "/login"},     // Only POST is defined
		{"POST", "/sessions/test-token/answers"}, // Only GET and PUT are defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	sessionToken := testutil.CreateTestSession(t, db, nil)

	mux := NewRouter(db, cfg)
	gateToken := auth.GenerateGateToken(cfg.GateSalt)

	req := httptest.NewRequest("GET", "/sessions/"+sessionToken+"/answers", nil)
	req.Header.Set(middleware.GateTokenHeader, gateToken)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for existing session, got %d. Body: %s", w.Code, w.Body.String())
	}
}
