// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package brief assembles the final project brief from a completed set of
quiz answers.

Build is the composition root of the engines: it scores style, runs the
budget heuristics, generates the narrative text and profile, resolves
the answer snapshot to display labels, maps the exterior to a design
direction, and selects the applicable guidance rules. It never errors;
missing answers simply leave their sections empty.
*/
package brief
