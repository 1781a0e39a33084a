package menu

import (
	"context"
	"log/slog"

	"tracker/internal/input"
	"tracker/internal/output"
	"tracker/internal/tracker"
)

// Main menu keys.
const (
	KeyAdd        = "0"
	KeyShowAll    = "1"
	KeyEdit       = "2"
	KeyDelete     = "3"
	KeyFindByID   = "4"
	KeyFindByName = "5"
	KeyExit       = "6"
)

// MainMenu returns the top-level tracker actions in menu order.
// The logger is handed to nested menus.
func MainMenu(logger *slog.Logger) []Action {
	return []Action{
		AddItem{},
		ShowAllItems{},
		&EditItem{logger: logger},
		DeleteItem{},
		FindByID{},
		FindByName{},
		NewExit(KeyExit, "Exit program"),
	}
}

// AddItem asks for a name and a description and stores a new task.
type AddItem struct{}

func (AddItem) Key() string   { return KeyAdd }
func (AddItem) Label() string { return "Add new item" }

func (AddItem) Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
	name, err := in.Ask(ctx, "Enter name of task:")
	if err != nil {
		return err
	}
	desc, err := in.Ask(ctx, "Enter description:")
	if err != nil {
		return err
	}
	store.Add(tracker.Task{Name: name, Description: desc})
	out.Line("New item was added.")
	return nil
}

// ShowAllItems prints every task in insertion order.
type ShowAllItems struct{}

func (ShowAllItems) Key() string   { return KeyShowAll }
func (ShowAllItems) Label() string { return "Show all items" }

func (ShowAllItems) Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
	tasks := store.FindAll()
	if len(tasks) == 0 {
		out.Notice("No items.")
		return nil
	}
	out.Tasks(tasks)
	return nil
}

// DeleteItem removes a task by id. An unknown id is reported, not an error.
type DeleteItem struct{}

func (DeleteItem) Key() string   { return KeyDelete }
func (DeleteItem) Label() string { return "Delete item" }

func (DeleteItem) Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
	id, err := in.Ask(ctx, "Enter task id:")
	if err != nil {
		return err
	}
	if !store.Delete(id) {
		out.Noticef("Task with id %s not found.", id)
		return nil
	}
	out.Linef("Task №%s was deleted.", id)
	return nil
}

// FindByID prints the task with the given id.
type FindByID struct{}

func (FindByID) Key() string   { return KeyFindByID }
func (FindByID) Label() string { return "Find item by id" }

func (FindByID) Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
	id, err := in.Ask(ctx, "Enter task id:")
	if err != nil {
		return err
	}
	task, ok := store.FindByID(id)
	if !ok {
		out.Noticef("Task with id %s not found.", id)
		return nil
	}
	out.Task(task)
	return nil
}

// FindByName prints every task with exactly the given name.
type FindByName struct{}

func (FindByName) Key() string   { return KeyFindByName }
func (FindByName) Label() string { return "Find item by name" }

func (FindByName) Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
	name, err := in.Ask(ctx, "Enter task name:")
	if err != nil {
		return err
	}
	tasks := store.FindByName(name)
	if len(tasks) == 0 {
		out.Noticef("Tasks with name %s not found.", name)
		return nil
	}
	out.Tasks(tasks)
	return nil
}
