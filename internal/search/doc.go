// Package search runs the alignment engine over a whole corpus: it fans the
// query out across worker goroutines, one target per job, then ranks the hits
// by score and keeps the top N.
//
// The engine stays a pure function of (query, target); everything that needs
// the whole corpus (ordering, truncation, cancellation) lives here.
package search
