package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Braille dot spinner frames.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner displays an animated spinner with a message in the terminal.
type Spinner struct {
	mu      sync.Mutex
	out     io.Writer
	message string
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a spinner that draws on out. A nil out means stderr,
// so the spinner never mixes with output piped from stdout.
func NewSpinner(out io.Writer, message string) *Spinner {
	if out == nil {
		out = os.Stderr
	}
	return &Spinner{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the spinner animation. Call Stop() to end it.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		i := 0
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				// Clear the spinner line.
				fmt.Fprint(s.out, "\r\033[K")
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.out, "\r  %s %s", StylePurple.Render(frame), Dim(s.message))
				i++
			}
		}
	}()
}

// Stop ends the spinner animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.stop:
		// Already stopped.
		return
	default:
		close(s.stop)
	}
	<-s.done
}
