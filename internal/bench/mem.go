package bench

import (
	"runtime"
	"sync/atomic"
	"time"
)

// MemSampler polls the Go heap and remembers the largest value seen.
type MemSampler struct {
	peak atomic.Uint64
	stop chan struct{}
	done chan struct{}
}

// StartMemSampler samples HeapAlloc every interval until Stop.
func StartMemSampler(interval time.Duration) *MemSampler {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	s := &MemSampler{stop: make(chan struct{}), done: make(chan struct{})}
	s.sample()
	go func() {
		defer close(s.done)
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-tk.C:
				s.sample()
			}
		}
	}()
	return s
}

func (s *MemSampler) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	for {
		old := s.peak.Load()
		if m.HeapAlloc <= old || s.peak.CompareAndSwap(old, m.HeapAlloc) {
			return
		}
	}
}

// Peak returns the largest heap size observed so far, in bytes.
func (s *MemSampler) Peak() uint64 { return s.peak.Load() }

// Stop takes a final sample, ends polling and returns the peak.
func (s *MemSampler) Stop() uint64 {
	close(s.stop)
	<-s.done
	s.sample()
	return s.Peak()
}
