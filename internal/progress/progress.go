// Package progress provides a cosmetic console spinner for long-running calls.
package progress

import (
	"fmt"
	"io"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Indicator repaints a single status line on a background goroutine while a
// blocking call is outstanding. It carries no data back into the pipeline.
// Stop must be called before any further output is written so that writes to
// the stream never interleave.
type Indicator struct {
	w       io.Writer
	message string
	quiet   bool
	stop    chan struct{}
	done    chan struct{}
}

// NewIndicator creates an indicator that writes to w. A quiet indicator
// ignores Start and Stop entirely, which keeps piped and MCP output clean.
func NewIndicator(w io.Writer, message string, quiet bool) *Indicator {
	return &Indicator{
		w:       w,
		message: message,
		quiet:   quiet,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the repaint loop at ten frames per second.
func (p *Indicator) Start() {
	if p.quiet {
		close(p.done)
		return
	}
	go p.animate()
}

// Stop signals the repaint loop to exit, waits for it to finish, and paints
// the final message over the status line. Safe to call exactly once.
func (p *Indicator) Stop(finalMessage string) {
	if !p.quiet {
		close(p.stop)
	}
	<-p.done
	if p.quiet {
		return
	}
	_, _ = fmt.Fprintf(p.w, "\r✅ %s%s\n", finalMessage, clearPadding)
}

const clearPadding = "                    " // wipes spinner leftovers on shorter final lines

func (p *Indicator) animate() {
	defer close(p.done)

	start := time.Now()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	idx := 0
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			elapsed := int(time.Since(start).Seconds())
			_, _ = fmt.Fprintf(p.w, "\r%s %s... %ds ", spinnerFrames[idx], p.message, elapsed)
			idx = (idx + 1) % len(spinnerFrames)
		}
	}
}
