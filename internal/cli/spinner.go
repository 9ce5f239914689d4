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

// spinnerOut receives spinner frames. Kept off stdout so piped output stays clean.
var spinnerOut io.Writer = os.Stderr

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// counter is a spinner that tracks progress through a known number of files:
//
//	⠹ Rasterizing 12/40 app-icon-ios-180.png
//
// It stops drawing when its context ends, so an interrupted export does not
// leave a frame on the terminal.
type counter struct {
	ctx   context.Context
	verb  string
	total int

	mu      sync.Mutex
	done    int
	current string
	drawn   int // width of the widest frame, for clearing

	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func newCounter(ctx context.Context, verb string, total int) *counter {
	return &counter{
		ctx:   ctx,
		verb:  verb,
		total: total,
		quit:  make(chan struct{}),
	}
}

// start begins drawing frames in the background.
func (c *counter) start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()

		for i := 0; ; i++ {
			select {
			case <-c.quit:
				return
			case <-c.ctx.Done():
				c.clear()
				return
			case <-tick.C:
				c.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// advance records one finished file.
func (c *counter) advance(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done++
	c.current = name
}

// status returns the text drawn next to the frame.
func (c *counter) status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := fmt.Sprintf("%s %d/%d", c.verb, c.done, c.total)
	if c.current != "" {
		s += " " + c.current
	}
	return s
}

func (c *counter) draw(frame string) {
	text := c.status()
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(text) + 2; n > c.drawn {
		c.drawn = n
	}
	fmt.Fprintf(spinnerOut, "\r%s %s", styleSpinner.Render(frame), StyleDim.Render(text))
}

func (c *counter) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drawn > 0 {
		fmt.Fprintf(spinnerOut, "\r%s\r", strings.Repeat(" ", c.drawn))
	}
}

// stop halts drawing and erases the line. Safe to call more than once, and
// without a prior start.
func (c *counter) stop() {
	c.once.Do(func() {
		close(c.quit)
		c.wg.Wait()
		c.clear()
	})
}

// succeed stops the counter and prints a success line.
func (c *counter) succeed(format string, args ...any) {
	c.stop()
	printSuccess(format, args...)
}

// fail stops the counter and prints an error line.
func (c *counter) fail(format string, args ...any) {
	c.stop()
	printError(format, args...)
}

// interrupted reports whether the context ended while the counter ran.
func (c *counter) interrupted() bool {
	return c.ctx.Err() != nil
}
