// Package catalog derives presentation state from the static portfolio data.
//
// Every function in this package is pure: inputs are never mutated, results
// are freshly allocated, and no function blocks or fails. The catalog itself
// is owned by the caller and passed in explicitly.
package catalog
