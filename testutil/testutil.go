// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/studio-revy/revy-brief/cliparse"
	"github.com/studio-revy/revy-brief/db"
	"github.com/studio-revy/revy-brief/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// Each call gets its own database, so tests don't see each other's rows.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// The in-memory database vanishes when the last connection closes.
	conn.SetMaxIdleConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3424,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AccessCode:   "test-access-code",
		GateSalt:     "test-gate-salt",
	}
}

// CreateTestSession inserts a session with the given answers and
// returns its token.
func CreateTestSession(t *testing.T, conn *sql.DB, answers models.Answers) string {
	t.Helper()

	if answers == nil {
		answers = models.Answers{}
	}
	payload, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("Failed to marshal answers: %v", err)
	}

	token := uuid.NewString()
	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO quiz_session (token, answers, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, token, string(payload), now, now)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
