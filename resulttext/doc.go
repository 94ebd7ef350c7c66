// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package resulttext turns a style result into the client-facing words on
a brief: an algorithmic title, a description paragraph, and a bathroom
configuration summary.

All copy lives in locked lookup tables keyed by archetype (or
archetype pair for blends) and by three-way axis buckets cut at 0.4 and
0.6. Blend tables are stored in one direction and looked up
symmetrically, so "parisian × provincial" and "provincial × parisian"
read the same line.
*/
package resulttext
