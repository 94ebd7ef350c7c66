// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

Handlers are wrapped as plain http.HandlerFunc decorators:

	mux.HandleFunc("POST /sessions", middleware.WithLogging(gate(h.CreateSession)))

WithGate enforces the access gate on everything except /login and
/health; it checks the X-Gate-Token header (or the revy_gate cookie
for browser clients) against the configured salt.
JSONResponse and ErrorResponse keep the response shape uniform across
handlers.
*/
package middleware
