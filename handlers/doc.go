// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP API.

Each handler struct wraps the shared *sql.DB and server config:

	GateHandler    POST /login
	SessionHandler POST /sessions, GET/PUT /sessions/{token}/answers,
	               DELETE /sessions/{token}
	BriefHandler   POST /brief, GET /sessions/{token}/brief

Sessions store the raw answer map as JSON in a single row keyed by an
opaque token. The brief itself is never persisted; it's recomputed from
answers on every request, so rule and copy changes take effect
immediately for stored sessions too.
*/
package handlers
