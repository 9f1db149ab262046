// Package progress draws a per-target progress bar with an ETA while a
// corpus search runs.
package progress

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar is a running progress bar. A nil *Bar is valid and does nothing.
type Bar struct {
	pbs     *mpb.Progress
	bar     *mpb.Bar
	ch      chan time.Duration
	done    chan struct{}
	threads float64
}

// Start draws a bar of total steps on w. threads scales the per-target
// durations fed to the ETA estimator, since targets finish in parallel.
func Start(w io.Writer, label string, total, threads int) *Bar {
	if threads < 1 {
		threads = 1
	}
	pbs := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := pbs.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label), C: decor.DindentRight}),
			decor.Name("", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.EwmaETA(decor.ET_STYLE_GO, 1024),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)

	b := &Bar{
		pbs:     pbs,
		bar:     bar,
		ch:      make(chan time.Duration, threads),
		done:    make(chan struct{}),
		threads: float64(threads),
	}
	go func() {
		for d := range b.ch {
			b.bar.EwmaIncrBy(1, d)
		}
		close(b.done)
	}()
	return b
}

// Observe records one finished target. Safe for concurrent use.
func (b *Bar) Observe(d time.Duration) {
	if b == nil {
		return
	}
	b.ch <- time.Duration(float64(d) / b.threads)
}

// OnTarget returns Observe as a hook, or nil for a nil bar.
func (b *Bar) OnTarget() func(time.Duration) {
	if b == nil {
		return nil
	}
	return b.Observe
}

// Finish stops the bar and waits for the last frame. A bar that did not
// reach its total (canceled run) is aborted in place.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	close(b.ch)
	<-b.done
	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.pbs.Wait()
}
