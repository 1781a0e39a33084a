package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"tracker/internal/counter"
	"tracker/internal/input"
	"tracker/internal/logging"
	"tracker/internal/output"
)

var (
	// ErrEmptyMenu is returned by Build when no actions are given.
	ErrEmptyMenu = errors.New("menu has no actions")

	// ErrDuplicateKey is returned by Build when two actions share a key.
	ErrDuplicateKey = errors.New("duplicate menu key")
)

// Controller holds the active registry of a menu and dispatches keys to it.
// It borrows the store; it never owns it.
type Controller struct {
	mu      sync.RWMutex
	actions []Action

	store    TaskStore
	in       input.Input
	out      *output.Printer
	logger   *slog.Logger
	executed counter.Counter
	submenu  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// AsSubmenu marks a controller that runs inside another menu's action.
// A closed input at its selection prompt is then an error of that action
// instead of the end of the session.
func AsSubmenu() Option {
	return func(c *Controller) {
		c.submenu = true
	}
}

// New creates a controller with an empty registry.
func New(store TaskStore, in input.Input, out *output.Printer, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		in:    in,
		out:   out,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c
}

// Build replaces the registry with actions, in order.
// On error the previous registry is kept.
func (c *Controller) Build(actions ...Action) error {
	if len(actions) == 0 {
		return ErrEmptyMenu
	}
	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		if seen[a.Key()] {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, a.Key())
		}
		seen[a.Key()] = true
	}

	registry := make([]Action, len(actions))
	copy(registry, actions)

	c.mu.Lock()
	c.actions = registry
	c.mu.Unlock()
	return nil
}

// Actions returns a copy of the active registry.
func (c *Controller) Actions() []Action {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Action, len(c.actions))
	copy(result, c.actions)
	return result
}

// Render writes one "{key}. {label}" line per action, in registry order.
func (c *Controller) Render() {
	for _, a := range c.Actions() {
		output.FormatMenuItem(c.out.Writer(), a.Key(), a.Label())
	}
}

// Dispatch runs the action at the position given by key.
// Valid positions are 0 <= n < len(registry)-1: the last slot belongs to
// the terminal action and is never dispatched. A non-numeric or out of
// range key returns false and a nil error. A non-nil error means the action
// ran but its input source failed.
func (c *Controller) Dispatch(ctx context.Context, key string) (bool, error) {
	actions := c.Actions()

	idx, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || idx < 0 || idx >= len(actions)-1 {
		c.logger.Debug("selection rejected", "key", key, "size", len(actions))
		return false, nil
	}

	a := actions[idx]
	c.logger.Debug("dispatching", "key", key, "action", a.Label())
	c.executed.Increment()
	if err := a.Execute(ctx, c.store, c.in, c.out); err != nil {
		return true, fmt.Errorf("%s: %w", strings.ToLower(a.Label()), err)
	}
	return true, nil
}

// Run drives the menu until a terminal action is selected.
// Each round renders the registry, asks for a key and dispatches it;
// unknown selections are reported and asked again. On a top-level menu a
// closed input at the selection prompt ends the loop like the terminal
// action does; a submenu reports it as an error.
func (c *Controller) Run(ctx context.Context, prompt string) error {
	defer func() {
		c.logger.Debug("menu closed", "executed", c.executed.Value())
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.Render()
		key, err := c.in.Ask(ctx, prompt)
		if err != nil {
			if errors.Is(err, io.EOF) && !c.submenu {
				return nil
			}
			return fmt.Errorf("read selection: %w", err)
		}

		if c.isTerminalKey(key) {
			return nil
		}

		done, err := c.Dispatch(ctx, key)
		if err != nil {
			return err
		}
		if !done {
			c.out.Noticef("Unknown menu item: %s", key)
		}
	}
}

// Executed returns how many actions this controller has run.
func (c *Controller) Executed() int64 {
	return c.executed.Value()
}

func (c *Controller) isTerminalKey(key string) bool {
	key = strings.TrimSpace(key)
	for _, a := range c.Actions() {
		if a.Key() == key && IsTerminal(a) {
			return true
		}
	}
	return false
}
