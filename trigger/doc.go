// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package trigger evaluates the small boolean expression language used in
rule trigger strings.

An expression is whitespace-separated three-token comparisons joined by
AND and OR, with AND binding tighter:

	scope_level != refresh AND rooms include kitchen OR budget_fit == mismatch

Left and right tokens resolve against a Context first, then as numeric
literals, then as bare string literals. Equality compares string forms,
ordering compares numeric forms (non-numbers never match), and the
include/includes/contains operators test list membership. The evaluator
never errors: malformed fragments are dropped and evaluate as absent.
*/
package trigger
