// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, lists)
//
// Not allowed here:
// - key handling, panel state, bridge access
package widgets
