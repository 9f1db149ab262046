// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves the --threads flag: values <= 0 mean all CPUs.
// The result never exceeds jobs when jobs > 0, so short corpora don't spin
// idle workers.
func EffectiveThreads(threads, jobs int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if jobs > 0 && threads > jobs {
		threads = jobs
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}

// NeedAlignments tells the search whether alignment strings are consumed
// downstream. Every format carries them except a plain, non-pretty TSV.
func NeedAlignments(output string, pretty bool) bool {
	return output != "text" || pretty
}
