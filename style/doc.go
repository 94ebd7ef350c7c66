// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package style scores quiz answers into a style result and renders the
outward-facing style profile.

# Scoring

Score walks the answers, accumulates archetype weights and axis
positions from the static weight table, and returns a Result: a primary
archetype, an optional close-second archetype, and three axis values in
[0,1] (modern to rustic, minimal to layered, bright to moody). Axis
values are unweighted means over the options that speak to that axis;
an axis nobody spoke to rests at 0.5.

# Bands and profile

BandForValue buckets an axis value at 0.34 and 0.67 into low/mid/high.
BuildProfile projects a Result onto the three presentation axes
(rustic-refined, minimal-maximal, organic-structured), attaching band
copy and designer signals from the axis schema. Axes without a scored
counterpart fall back to the primary archetype's DNA defaults.
*/
package style
