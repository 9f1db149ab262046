// Package seqdb reads and writes the sequence corpora searched by localign:
// (gzipped) FASTA through fastx, and the two-column Description/Sequence CSV
// the corpus is distributed as. It also scrubs a raw corpus down to complete
// records.
package seqdb
