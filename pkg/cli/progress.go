package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Indicator shows an animated "waiting" line while a request is in flight.
type Indicator struct {
	mu      sync.Mutex
	writer  io.Writer
	label   string
	frames  []string
	tick    time.Duration
	stop    chan struct{}
	done    chan struct{}
	started time.Time
}

// NewIndicator creates an indicator that writes label to w. If w is nil,
// it defaults to os.Stderr.
func NewIndicator(w io.Writer, label string) *Indicator {
	if w == nil {
		w = os.Stderr
	}
	return &Indicator{
		writer: w,
		label:  label,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		tick:   120 * time.Millisecond,
	}
}

// Start begins the animation. Calling Start on a running indicator does
// nothing.
func (p *Indicator) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.started = time.Now()

	go p.run(p.stop, p.done)
}

// Stop ends the animation and clears the line.
func (p *Indicator) Stop() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	fmt.Fprint(p.writer, "\r\033[K")
}

// Running reports whether the animation is active.
func (p *Indicator) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

func (p *Indicator) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for i := 0; ; i++ {
		p.render(i)
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (p *Indicator) render(frame int) {
	elapsed := time.Since(p.started).Truncate(time.Second)
	fmt.Fprintf(p.writer, "\r%s %s %s", p.frames[frame%len(p.frames)], p.label, elapsed)
}
