// Package measure provides layout.Backend implementations.
//
// Fixed reports a constant height and is meant for tests. Monospace wraps
// text on Unicode line-break opportunities in a fixed-pitch grid. Terminal
// wraps text the way lipgloss renders it into terminal cells.
//
// Monospace and Terminal also expose Wrap, so a painter can break lines
// exactly where the measurement did.
package measure
