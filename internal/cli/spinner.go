package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner shows a one-line progress indicator on stderr while a layout or
// render runs. Off a terminal it prints nothing.
type Spinner struct {
	label   string
	out     io.Writer
	parent  context.Context
	ctx     context.Context
	halt    context.CancelFunc
	once    sync.Once
	stopped chan struct{}
	animate bool
	width   int
}

func newSpinner(label string) *Spinner {
	return newSpinnerWithContext(context.Background(), label)
}

// newSpinnerWithContext returns a spinner that also stops when ctx ends.
func newSpinnerWithContext(ctx context.Context, label string) *Spinner {
	fd := os.Stderr.Fd()
	inner, halt := context.WithCancel(ctx)
	return &Spinner{
		label:   label,
		out:     os.Stderr,
		parent:  ctx,
		ctx:     inner,
		halt:    halt,
		stopped: make(chan struct{}),
		animate: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (s *Spinner) Start() {
	if !s.animate {
		close(s.stopped)
		return
	}
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.stopped)
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for i := 0; ; i++ {
		s.draw(spinnerFrames[i%len(spinnerFrames)])
		select {
		case <-s.ctx.Done():
			return
		case <-tick.C:
		}
	}
}

func (s *Spinner) draw(frame string) {
	line := styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.label)
	fmt.Fprint(s.out, "\r"+line)
	s.width = lipgloss.Width(line)
}

// Stop halts the animation and erases the line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.halt()
		<-s.stopped
		if s.width > 0 {
			fmt.Fprint(s.out, "\r"+strings.Repeat(" ", s.width)+"\r")
		}
	})
}

func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the context the spinner was started under has
// ended, as opposed to the spinner being stopped.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
