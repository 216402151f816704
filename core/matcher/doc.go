// Package matcher compiles fzf-style patterns and scores candidate lines
// against them.
//
// ParsePattern runs once per process and the result is shared read-only by
// every scoring thread. Score is called once per line with a Slab that is
// private to the calling thread.
package matcher
