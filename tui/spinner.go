package tui

import (
	"fmt"
	"os"
	"time"

	ansi "github.com/jhunt/go-ansi"
)

// Spinner is the little progress indicator shown while a long-running
// external operation does its thing.  The caller still blocks until the
// operation finishes; this is strictly cosmetic.
type Spinner struct {
	message string
	done    chan struct{}
	stopped chan struct{}
}

var frames = []string{"|", "/", "-", `\`}

func Spin(message string) *Spinner {
	s := &Spinner{
		message: message,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go func() {
		defer close(s.stopped)
		tick := time.NewTicker(125 * time.Millisecond)
		defer tick.Stop()

		i := 0
		for {
			select {
			case <-s.done:
				fmt.Fprintf(os.Stdout, "\r\033[K")
				return
			case <-tick.C:
				ansi.Printf("\r  @C{%s} %s ", frames[i%len(frames)], s.message)
				i++
			}
		}
	}()

	return s
}

// Done stops the spinner and clears its line.  It blocks until the
// spinner goroutine has actually quit, so nothing races the next prompt.
func (s *Spinner) Done() {
	close(s.done)
	<-s.stopped
}
