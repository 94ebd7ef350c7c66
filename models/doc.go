// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models contains the shared data types for the Revy brief API.

# Answers

Answers is the one type every layer agrees on: a map from question id to
the selected option ids. It is deliberately loose — the engines tolerate
unknown question ids and unknown option ids by treating them as zero
weight, so an Answers value never needs validation before use.

	answers := models.Answers{
		"rooms":       {"kitchen", "primary_bath"},
		"scope_level": {"full"},
	}

Helpers First, List and Has cover the three access patterns the engines
use (single-select read, multi-select read, membership check).

# Request/Response types

The remaining types are plain JSON request and response shapes for the
HTTP handlers. Domain results (style, budget, rules, brief) live with
their engines; this package stays free of engine imports.
*/
package models
