package menu_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/input"
	"tracker/internal/menu"
	"tracker/internal/output"
	"tracker/internal/testutil"
	"tracker/internal/tracker"
)

// runAction executes a single action against store with scripted answers.
func runAction(t *testing.T, a menu.Action, store menu.TaskStore, answers ...string) string {
	t.Helper()
	var buf bytes.Buffer
	in := input.NewScripted(answers...)
	require.NoError(t, a.Execute(context.Background(), store, in, output.NewPrinter(&buf)))
	assert.Equal(t, 0, in.Remaining(), "unused answers")
	return buf.String()
}

func TestMainMenu_KeysMatchPositions(t *testing.T) {
	actions := menu.MainMenu(nil)
	require.Len(t, actions, 7)
	for i, a := range actions {
		assert.Equal(t, string(rune('0'+i)), a.Key())
	}
	assert.True(t, menu.IsTerminal(actions[6]))
	for _, a := range actions[:6] {
		assert.False(t, menu.IsTerminal(a), a.Label())
	}
}

func TestAddItem(t *testing.T) {
	store := testutil.NewStore()

	out := runAction(t, menu.AddItem{}, store, "Fix bug", "NPE on save")

	assert.Equal(t, "New item was added.\n", out)
	all := store.FindAll()
	require.Len(t, all, 1)
	assert.Equal(t, tracker.Task{ID: "1", Name: "Fix bug", Description: "NPE on save", CreatedAt: testutil.FixedTime}, all[0])
}

func TestShowAllItems(t *testing.T) {
	store := testutil.NewStore()
	store.Add(tracker.Task{Name: "Fix bug", Description: "NPE on save"})
	store.Add(tracker.Task{Name: "Write docs"})

	out := runAction(t, menu.ShowAllItems{}, store)

	expected := "[1] Fix bug: NPE on save (created 2024-03-01 12:00:00)\n" +
		"[2] Write docs (created 2024-03-01 12:00:00)\n"
	assert.Equal(t, expected, out)
}

func TestShowAllItems_Empty(t *testing.T) {
	out := runAction(t, menu.ShowAllItems{}, testutil.NewStore())
	assert.Equal(t, "No items.\n", out)
}

func TestDeleteItem(t *testing.T) {
	store := testutil.NewStore()
	store.Add(tracker.Task{Name: "Fix bug"})

	out := runAction(t, menu.DeleteItem{}, store, "1")
	assert.Equal(t, "Task №1 was deleted.\n", out)
	_, ok := store.FindByID("1")
	assert.False(t, ok)

	out = runAction(t, menu.DeleteItem{}, store, "1")
	assert.Equal(t, "Task with id 1 not found.\n", out)
}

func TestFindByID(t *testing.T) {
	store := testutil.NewStore()
	store.Add(tracker.Task{Name: "Fix bug", Description: "NPE on save"})

	out := runAction(t, menu.FindByID{}, store, "1")
	assert.Equal(t, "[1] Fix bug: NPE on save (created 2024-03-01 12:00:00)\n", out)

	out = runAction(t, menu.FindByID{}, store, "42")
	assert.Equal(t, "Task with id 42 not found.\n", out)
}

func TestFindByName(t *testing.T) {
	store := testutil.NewStore()
	store.Add(tracker.Task{Name: "Review PR", Description: "backend"})
	store.Add(tracker.Task{Name: "Write docs"})
	store.Add(tracker.Task{Name: "Review PR", Description: "frontend"})

	out := runAction(t, menu.FindByName{}, store, "Review PR")
	expected := "[1] Review PR: backend (created 2024-03-01 12:00:00)\n" +
		"[3] Review PR: frontend (created 2024-03-01 12:00:00)\n"
	assert.Equal(t, expected, out)

	out = runAction(t, menu.FindByName{}, store, "Nonexistent")
	assert.Equal(t, "Tasks with name Nonexistent not found.\n", out)
}

func TestEditItem_UnknownID(t *testing.T) {
	store := testutil.NewStore()
	edit := menu.MainMenu(nil)[2]

	out := runAction(t, edit, store, "7")
	assert.Equal(t, "Task with id 7 not found.\n", out)
}

func TestEditItem_NameAndDescription(t *testing.T) {
	store := testutil.NewStore()
	store.Add(tracker.Task{Name: "Fix bug", Description: "NPE on save"})
	edit := menu.MainMenu(nil)[2]

	out := runAction(t, edit, store, "1", "0", "Fix NPE", "5", "1", "Null check in save()", "2")

	task, ok := store.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "Fix NPE", task.Name)
	assert.Equal(t, "Null check in save()", task.Description)
	assert.Equal(t, testutil.FixedTime, task.CreatedAt)

	subMenu := "0. Edit name\n1. Edit description\n2. Back to main menu\n"
	expected := subMenu +
		"Name was changed.\n" +
		subMenu +
		"Unknown menu item: 5\n" +
		subMenu +
		"Description was changed.\n" +
		subMenu
	assert.Equal(t, expected, out)
}

func TestEditMenu_TaskDeletedMeanwhile(t *testing.T) {
	store := testutil.NewStore()
	actions := menu.EditMenu("9")

	out := runAction(t, actions[0], store, "whatever")
	assert.Equal(t, "Task with id 9 not found.\n", out)
}

func TestExit_IsNoop(t *testing.T) {
	store := testutil.NewStore()
	store.Add(tracker.Task{Name: "keep"})

	out := runAction(t, menu.NewExit("6", "Exit program"), store)
	assert.Empty(t, out)
	assert.Len(t, store.FindAll(), 1)
}
