// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the brief API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Access gate (no token required):

	POST /login - Exchange the access code for a gate token

Quiz sessions (require X-Gate-Token):

	POST   /sessions                  - Create session
	GET    /sessions/{token}/answers  - Read stored answers
	PUT    /sessions/{token}/answers  - Replace stored answers
	DELETE /sessions/{token}          - Delete session

Brief generation (require X-Gate-Token):

	POST /brief                   - Build a brief from posted answers
	GET  /sessions/{token}/brief  - Build a brief from stored answers
*/
package router
