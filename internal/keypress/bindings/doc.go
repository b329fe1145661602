// Package bindings holds the keybinding table: the ordered collection of
// default and user bindings with the indexes resolution depends on.
//
// A command may carry several bindings with different mode sets or
// when-clauses. When two bindings share an identical chord sequence, an
// overlapping mode set and the same when text, the later insertion
// replaces the earlier one, which is how user overrides shadow defaults.
// Tie-breaking between distinct matching bindings is deterministic: user
// bindings beat defaults, then most-recently-inserted wins.
package bindings
