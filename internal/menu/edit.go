package menu

import (
	"context"
	"log/slog"

	"tracker/internal/input"
	"tracker/internal/output"
)

// Edit sub-menu keys.
const (
	KeyEditName        = "0"
	KeyEditDescription = "1"
	KeyEditBack        = "2"
)

// EditPrompt is the selection prompt of the edit sub-menu.
const EditPrompt = "Select field:"

// EditItem looks up a task and runs a nested menu for changing its fields.
// The nested menu owns the prompt until its back action is chosen.
type EditItem struct {
	logger *slog.Logger
}

func (*EditItem) Key() string   { return KeyEdit }
func (*EditItem) Label() string { return "Edit item" }

func (e *EditItem) Execute(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
	id, err := in.Ask(ctx, "Enter task id:")
	if err != nil {
		return err
	}
	if _, ok := store.FindByID(id); !ok {
		out.Noticef("Task with id %s not found.", id)
		return nil
	}

	sub := New(store, in, out, WithLogger(e.logger), AsSubmenu())
	if err := sub.Build(EditMenu(id)...); err != nil {
		return err
	}
	return sub.Run(ctx, EditPrompt)
}

// EditMenu returns the field actions for the task with the given id.
func EditMenu(id string) []Action {
	return []Action{
		Func(KeyEditName, "Edit name", func(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
			name, err := in.Ask(ctx, "Enter new name:")
			if err != nil {
				return err
			}
			task, ok := store.FindByID(id)
			if !ok {
				out.Noticef("Task with id %s not found.", id)
				return nil
			}
			task.Name = name
			store.Update(task)
			out.Line("Name was changed.")
			return nil
		}),
		Func(KeyEditDescription, "Edit description", func(ctx context.Context, store TaskStore, in input.Input, out *output.Printer) error {
			desc, err := in.Ask(ctx, "Enter new description:")
			if err != nil {
				return err
			}
			task, ok := store.FindByID(id)
			if !ok {
				out.Noticef("Task with id %s not found.", id)
				return nil
			}
			task.Description = desc
			store.Update(task)
			out.Line("Description was changed.")
			return nil
		}),
		NewExit(KeyEditBack, "Back to main menu"),
	}
}
