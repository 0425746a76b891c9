// Package render implements the feature-flagged markdown pipeline. The
// pipeline is an explicit ordered list of named stages; the order is a
// correctness invariant (code fences must be lifted out before anything
// else, images before links, tables before the inline passes) and each
// stage documents the contract it relies on.
package render
