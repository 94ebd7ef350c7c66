// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package questions holds the quiz catalogs and option visibility logic.

The catalog is split in three steps: StyleQuestions (exterior plus the
image-driven taste questions), ScopeQuestions, and BudgetQuestions.
Option visibility conditions are tagged Predicate values rather than
callbacks, so a catalog can be serialized and the conditions reasoned
about: gallery spaces show only when their archetype weights overlap
what the chosen exterior supports, and the feels-like-home options show
only for supported archetypes.

BuildLabelIndex turns catalogs into an id-to-label index for rendering
answer snapshots.
*/
package questions
