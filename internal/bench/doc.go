// Package bench measures the search engine and the tools it is compared
// against: wall time and peak memory for the in-process engine, an in-process
// WFA global aligner, and an external blastn run.
package bench
