// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package budget implements the point-based budget heuristics.

Complexity is a room-points sum scaled by scope and finish multipliers;
capacity maps the investment-range answer onto the same point scale.
FitForScores compares the two into comfortable/tight/mismatch, and
Assess runs the whole read directly from quiz answers.

These are coarse heuristics for conversation framing, not estimates.
*/
package budget
