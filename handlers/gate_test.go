// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studio-revy/revy-brief/auth"
	"github.com/studio-revy/revy-brief/middleware"
	"github.com/studio-revy/revy-brief/models"
	"github.com/studio-revy/revy-brief/testutil"
)

func TestLogin(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewGateHandler(cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid access code",
			requestBody:    models.LoginRequest{Code: cfg.AccessCode},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong access code",
			requestBody:    models.LoginRequest{Code: "wrong"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty access code",
			requestBody:    models.LoginRequest{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			var err error

			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Login(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK {
				var resp models.LoginResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if resp.Token == "" {
					t.Error("Expected non-empty gate token")
				}
				if err := auth.ValidateGateToken(resp.Token, cfg.GateSalt); err != nil {
					t.Errorf("Returned token failed validation: %v", err)
				}

				// Gate cookie is set alongside the body token
				var found bool
				for _, c := range w.Result().Cookies() {
					if c.Name == middleware.GateCookieName && c.Value == resp.Token {
						found = true
					}
				}
				if !found {
					t.Error("Expected gate cookie to be set on login")
				}
			}
		})
	}
}
