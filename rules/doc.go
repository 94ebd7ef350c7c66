// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rules holds the guidance rule catalog and the selection logic
that decides which rules a brief should carry.

The catalog lives in embedded YAML under catalog/ and is parsed once at
startup; a malformed catalog is a programming error and panics. Rules
fall in two groups with opposite defaults. Base rules (feasibility and
budget guardrails plus the core finish philosophy) show unless their
trigger says otherwise, and an empty trigger means always. The FN-01
finish-strategy variants are mutually exclusive alternatives, so they
are opt-in: no trigger, no show.

Selection evaluates trigger strings against a Context built from the
quiz answers and the budget assessment, then resolves per-subsection
visibility conditions inside each selected rule.
*/
package rules
