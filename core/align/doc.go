// Package align is the alignment engine: a linear-space local-alignment scan
// that finds every best-scoring window between two sequences, and a
// Hirschberg divide-and-conquer aligner that rebuilds an explicit gapped
// alignment for each window.
//
// Scoring is fixed: +1 match, -1 mismatch, -1 per gap position. Symbols are
// bytes compared only for equality, so any alphabet works.
//
// The package is pure and synchronous. It does no I/O, keeps no state between
// calls, and is safe to call from many goroutines at once. Keep it that way:
// corpus handling, sorting and output belong to the callers.
package align
