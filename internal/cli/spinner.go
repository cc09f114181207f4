package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// Spinner redraws a single status line while a run is in progress.
// The line is cleared when the spinner is stopped or ctx ends.
type Spinner struct {
	label string
	out   io.Writer
	ctx   context.Context

	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
	mu   sync.Mutex // serializes writes to out
}

func newSpinnerWithContext(ctx context.Context, label string) *Spinner {
	return &Spinner{
		label: label,
		out:   os.Stderr,
		ctx:   ctx,
		quit:  make(chan struct{}),
	}
}

// Start launches the redraw loop.
func (s *Spinner) Start() {
	s.wg.Add(1)
	go s.loop()
}

func (s *Spinner) loop() {
	defer s.wg.Done()
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for n := 0; ; n++ {
		select {
		case <-s.quit:
			return
		case <-s.ctx.Done():
			s.clear()
			return
		case <-tick.C:
			s.write("\r" + s.frame(n))
		}
	}
}

func (s *Spinner) frame(n int) string {
	r := spinnerFrames[n%len(spinnerFrames)]
	return styleIconSpinner.Render(string(r)) + " " + StyleDim.Render(s.label)
}

func (s *Spinner) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.out, text)
}

func (s *Spinner) clear() {
	s.write("\r" + strings.Repeat(" ", len(s.label)+4) + "\r")
}

// Stop waits for the loop to exit and clears the line. Later calls are no-ops,
// and calling it on a spinner that never started is fine.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.quit)
		s.wg.Wait()
		s.clear()
	})
}

// StopWithError stops the spinner and prints message as a failure.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context has ended.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
