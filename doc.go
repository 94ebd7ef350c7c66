// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Revy brief API server.

Revy Brief turns a design-preference quiz into a renovation project
brief: a scored style archetype with narrative copy, a budget
complexity read, and a set of applicable planning guidance rules.

# Starting the Server

The server requires environment variables or CLI flags for
configuration:

	DATABASE_URL=brief.db ACCESS_CODE=... GATE_SALT=... go run .

Or with flags:

	go run . -p 3424 -d brief.db -access-code ... -gate-salt ...

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or postgres connection string
  - ACCESS_CODE (-access-code): Shared code that opens the quiz gate
  - GATE_SALT (-gate-salt): Secret for gate token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3424)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (gate, sessions, brief)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Gate enforcement, CORS, logging, JSON helpers
  - models: Request/response types and the raw answer map
  - auth: Access code and gate token validation
  - db: Connection and schema creation
  - cliparse: Configuration parsing

The quiz domain itself lives in its own packages, usable without the
server (see cmd/briefctl):

  - questions: Question catalog, option visibility, display labels
  - style: Archetype scoring, style axes, the design profile
  - budget: Complexity score, capacity points, budget fit
  - trigger: Boolean trigger-expression evaluation
  - rules: Guidance rule catalog and selection
  - resulttext: Generated titles, descriptions, room design lines
  - brief: Assembles everything into the final brief

See package documentation for each component.
*/
package main
