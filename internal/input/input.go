// Package input provides the sources the menus read answers from.
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Input asks a question and returns the raw answer.
// No format validation happens here; callers get the trimmed line as typed.
type Input interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Console reads answers line by line from a reader, printing prompts to a writer.
// Lines are read by a background goroutine so that Ask can return as soon
// as its context is cancelled, even while the reader is blocked.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
	quiet  bool

	lines     chan lineResult
	startOnce sync.Once
	err       error // sticky read error, set once the reader fails
}

type lineResult struct {
	text string
	err  error
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithQuiet suppresses prompts.
func WithQuiet(quiet bool) ConsoleOption {
	return func(c *Console) {
		c.quiet = quiet
	}
}

// NewConsole creates a console input. Nil arguments fall back to stdin/stdout.
func NewConsole(r io.Reader, w io.Writer, opts ...ConsoleOption) *Console {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	c := &Console{
		reader: bufio.NewReader(r),
		writer: w,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ask implements Input.
// A final line without a trailing newline is still returned; io.EOF is
// reported only when nothing was read. A cancelled context returns
// ctx.Err() immediately; a line that arrives later goes to the next Ask.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.quiet && prompt != "" {
		fmt.Fprint(c.writer, prompt, " ")
	}
	if c.err != nil {
		return "", c.err
	}

	c.startPump()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-c.lines:
		if r.err != nil {
			c.err = r.err
			if r.err == io.EOF && r.text != "" {
				return strings.TrimSpace(r.text), nil
			}
			return "", r.err
		}
		return strings.TrimSpace(r.text), nil
	}
}

// startPump reads lines until the reader fails, handing each one to Ask.
func (c *Console) startPump() {
	c.startOnce.Do(func() {
		c.lines = make(chan lineResult)
		go func() {
			for {
				text, err := c.reader.ReadString('\n')
				c.lines <- lineResult{text: text, err: err}
				if err != nil {
					return
				}
			}
		}()
	})
}

// Scripted replays preset answers in order. It records the prompts it was asked.
type Scripted struct {
	answers []string
	next    int
	Prompts []string
}

// NewScripted creates a scripted input returning answers in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

// Ask implements Input. Returns io.EOF once all answers are used.
func (s *Scripted) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Prompts = append(s.Prompts, prompt)
	if s.next >= len(s.answers) {
		return "", io.EOF
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

// Remaining returns the number of unused answers.
func (s *Scripted) Remaining() int {
	return len(s.answers) - s.next
}
