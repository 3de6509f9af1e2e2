// Package history keeps the bounded, newest-first log of past
// translations and persists it through an injected keyed storage
// backend. Loading is fail-soft: missing or corrupt persisted state
// resets to an empty log instead of surfacing an error.
package history
