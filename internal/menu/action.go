// Package menu implements numbered console menus that dispatch a selected
// key to one action operating on the task store.
package menu

import (
	"context"

	"tracker/internal/input"
	"tracker/internal/output"
	"tracker/internal/tracker"
)

// TaskStore is the store surface the actions operate on.
type TaskStore interface {
	Add(task tracker.Task) tracker.Task
	FindByID(id string) (tracker.Task, bool)
	FindByName(name string) []tracker.Task
	FindAll() []tracker.Task
	Update(task tracker.Task) bool
	Delete(id string) bool
}

// Action defines one selectable menu entry.
type Action interface {
	// Key returns the key shown in the menu; unique within a registry.
	Key() string

	// Label returns the text shown next to the key.
	Label() string

	// Execute runs the action.
	// Missing tasks are reported on out; the returned error only carries
	// failures of the input source.
	Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error
}

// terminal is implemented by actions whose selection ends the menu loop.
type terminal interface {
	Terminal() bool
}

// IsTerminal reports whether selecting a ends the loop that shows it.
func IsTerminal(a Action) bool {
	t, ok := a.(terminal)
	return ok && t.Terminal()
}

// ExecFunc is the operation of a Func action.
type ExecFunc func(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error

type funcAction struct {
	key   string
	label string
	fn    ExecFunc
}

// Func builds an action from a key, a label and an operation.
func Func(key, label string, fn ExecFunc) Action {
	return &funcAction{key: key, label: label, fn: fn}
}

func (a *funcAction) Key() string   { return a.key }
func (a *funcAction) Label() string { return a.label }

func (a *funcAction) Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
	return a.fn(ctx, store, in, out)
}

// Exit is a no-op action that ends the loop of the menu it belongs to.
// It is meant to occupy the last slot of a registry.
type Exit struct {
	key   string
	label string
}

// NewExit creates an exit action.
func NewExit(key, label string) *Exit {
	return &Exit{key: key, label: label}
}

func (a *Exit) Key() string    { return a.key }
func (a *Exit) Label() string  { return a.label }
func (a *Exit) Terminal() bool { return true }

func (a *Exit) Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
	return nil
}
