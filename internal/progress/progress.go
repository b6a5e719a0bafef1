// Package progress implements the throttled stderr scan indicator: TTY runs
// overwrite a single line, piped runs print coarser full lines, and both
// modes end with exactly one timing line.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// updateInterval caps TTY redraws to roughly 10 per second.
const updateInterval = 100 * time.Millisecond

// pipeLineEvery throttles pipe-mode updates to avoid log spam.
const pipeLineEvery = 200

// Progress renders scan progress to an io.Writer (normally os.Stderr).
// Safe for concurrent use from the aggregator's progress callback.
type Progress struct {
	mu       sync.Mutex
	w        io.Writer
	tty      bool
	start    time.Time
	last     time.Time
	suppress bool
}

// New constructs a Progress writing to w. TTY-vs-pipe mode is detected via
// go-isatty against the underlying file descriptor when w is an *os.File;
// any other writer is treated as pipe mode. If w cannot be written to at
// all, Progress is suppressed entirely.
func New(w io.Writer) *Progress {
	tty := false
	suppress := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		if _, err := f.Stat(); err != nil {
			suppress = true
		}
	}
	return &Progress{
		w:        w,
		tty:      tty,
		suppress: suppress,
		start:    now(),
	}
}

// now is split out so tests can't depend on wall-clock ordering beyond
// what time.Now already guarantees.
func now() time.Time { return time.Now() }

// Update reports the current files-seen count. Call this as the
// aggregator's onProgress callback.
func (p *Progress) Update(filesSeen int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.suppress {
		return
	}

	n := now()
	if p.tty {
		if n.Sub(p.last) < updateInterval {
			return
		}
		p.last = n
		if _, err := fmt.Fprintf(p.w, "\rscanning... %d files", filesSeen); err != nil {
			p.suppress = true
		}
		return
	}

	if filesSeen%pipeLineEvery != 0 {
		return
	}
	p.last = n
	if _, err := fmt.Fprintf(p.w, "scanning... %d files\n", filesSeen); err != nil {
		p.suppress = true
	}
}

// Done prints the single final timing line and, in TTY mode, erases the
// in-progress line first.
func (p *Progress) Done(filesSeen int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.suppress {
		return
	}

	elapsed := now().Sub(p.start)
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	rate := float64(filesSeen) / elapsed.Seconds()

	if p.tty {
		fmt.Fprint(p.w, "\r\033[K")
	}
	fmt.Fprintf(p.w, "%s (%s files/s)\n", elapsed.Round(time.Millisecond), humanize.Comma(int64(rate)))
}
