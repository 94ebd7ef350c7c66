// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package trigger

import (
	"math"
	"strconv"
	"strings"
)

// Context is the flat variable environment a trigger evaluates
// against. Values are strings, numbers (float64 or int), or string
// lists; anything else stringifies to "".
type Context map[string]any

// Operators, in the order the evaluator recognizes them.
const (
	opEq       = "=="
	opEqAlias  = "="
	opNe       = "!="
	opGe       = ">="
	opLe       = "<="
	opGt       = ">"
	opLt       = "<"
	opInclude  = "include"
	opIncludes = "includes"
	opContains = "contains"
)

func isOperator(tok string) bool {
	switch tok {
	case opEq, opEqAlias, opNe, opGe, opLe, opGt, opLt, opInclude, opIncludes, opContains:
		return true
	}
	return false
}

// Evaluate runs a trigger expression against a context and returns
// whether it fires. The grammar is deliberately small: three-token
// comparisons joined by AND and OR, AND binding tighter. Malformed
// fragments drop out instead of failing; a trigger that parses to
// nothing is false. Callers decide what an empty trigger means.
func Evaluate(expr string, ctx Context) bool {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return false
	}

	// First pass: fold comparisons into booleans, keep connectors.
	type item struct {
		conn string // "AND" or "OR" when set
		val  bool
	}
	var items []item
	for i := 0; i < len(fields); {
		if i+2 < len(fields) && isOperator(fields[i+1]) {
			items = append(items, item{val: compare(fields[i], fields[i+1], fields[i+2], ctx)})
			i += 3
			continue
		}
		switch fields[i] {
		case "AND", "OR":
			items = append(items, item{conn: fields[i]})
		}
		// Anything else is a stray token from a malformed clause.
		i++
	}

	// Second pass: collapse AND runs left to right. A connector with a
	// missing operand on either side collapses to false.
	var ored []item
	for i := 0; i < len(items); i++ {
		it := items[i]
		if it.conn != "AND" {
			ored = append(ored, it)
			continue
		}
		left := false
		if n := len(ored); n > 0 && ored[n-1].conn == "" {
			left = ored[n-1].val
			ored = ored[:n-1]
		}
		right := false
		if i+1 < len(items) && items[i+1].conn == "" {
			right = items[i+1].val
			i++
		}
		ored = append(ored, item{val: left && right})
	}

	// Final pass: any remaining boolean true wins the OR reduction.
	for _, it := range ored {
		if it.conn == "" && it.val {
			return true
		}
	}
	return false
}

func compare(leftTok, op, rightTok string, ctx Context) bool {
	left := resolve(leftTok, ctx)
	right := resolve(rightTok, ctx)

	switch op {
	case opEq, opEqAlias:
		return stringify(left) == stringify(right)
	case opNe:
		return stringify(left) != stringify(right)
	case opGe, opLe, opGt, opLt:
		l, r := numberOf(left), numberOf(right)
		if math.IsNaN(l) || math.IsNaN(r) {
			return false
		}
		switch op {
		case opGe:
			return l >= r
		case opLe:
			return l <= r
		case opGt:
			return l > r
		default:
			return l < r
		}
	case opInclude, opIncludes, opContains:
		return includes(listOf(left), rightTok, right)
	}
	return false
}

// resolve turns a token into a value: a context variable if the name
// is bound, otherwise a numeric literal if it parses, otherwise the
// token itself as a string literal.
func resolve(tok string, ctx Context) any {
	if v, ok := ctx[tok]; ok {
		return v
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	return tok
}

// stringify renders a value the way equality comparisons see it.
// Numbers drop trailing zeros, lists join on commas.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []string:
		return strings.Join(t, ",")
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return ""
	}
	return ""
}

func numberOf(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
		return math.NaN()
	case []string:
		if f, err := strconv.ParseFloat(strings.Join(t, ","), 64); err == nil {
			return f
		}
		return math.NaN()
	case bool:
		if t {
			return 1
		}
		return 0
	}
	return math.NaN()
}

// listOf coerces a value to a list for membership checks. Scalars
// become one-element lists, nil becomes empty.
func listOf(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case nil:
		return nil
	default:
		return []string{stringify(v)}
	}
}

// includes checks list membership. The bare token "bathroom" is a
// category match: it fires when any element mentions a bath of any
// kind rather than requiring an exact id.
func includes(list []string, rightTok string, right any) bool {
	if strings.ToLower(rightTok) == "bathroom" {
		for _, el := range list {
			if strings.Contains(strings.ToLower(el), "bath") {
				return true
			}
		}
		return false
	}
	want := stringify(right)
	for _, el := range list {
		if el == want {
			return true
		}
	}
	return false
}
