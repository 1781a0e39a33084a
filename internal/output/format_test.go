package output_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tracker/internal/output"
	"tracker/internal/tracker"
)

var created = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		task tracker.Task
		want string
	}{
		{
			name: "with description",
			task: tracker.Task{ID: "1-0", Name: "Fix bug", Description: "NPE on save", CreatedAt: created},
			want: "[1-0] Fix bug: NPE on save (created 2024-03-01 12:30:00)\n",
		},
		{
			name: "blank description",
			task: tracker.Task{ID: "1-1", Name: "Write docs", Description: "  ", CreatedAt: created},
			want: "[1-1] Write docs (created 2024-03-01 12:30:00)\n",
		},
		{
			name: "untitled",
			task: tracker.Task{ID: "1-2", CreatedAt: created},
			want: "[1-2] (untitled) (created 2024-03-01 12:30:00)\n",
		},
		{
			name: "multiline name",
			task: tracker.Task{ID: "1-3", Name: "line one\nline two", CreatedAt: created},
			want: "[1-3] line one line two (created 2024-03-01 12:30:00)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.FormatTask(&buf, tt.task)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormatMenuItem(t *testing.T) {
	var buf bytes.Buffer
	output.FormatMenuItem(&buf, "0", "Add new item")
	assert.Equal(t, "0. Add new item\n", buf.String())
}

func TestPrinter_NoticeIsPlainOnBuffers(t *testing.T) {
	var buf bytes.Buffer
	p := output.NewPrinter(&buf)

	p.Noticef("Task with id %s not found.", "42")
	p.Line("done")

	assert.Equal(t, "Task with id 42 not found.\ndone\n", buf.String())
}

func TestPrinter_Tasks(t *testing.T) {
	var buf bytes.Buffer
	p := output.NewPrinter(&buf)

	p.Tasks([]tracker.Task{
		{ID: "a", Name: "first", CreatedAt: created},
		{ID: "b", Name: "second", CreatedAt: created},
	})

	assert.Equal(t,
		"[a] first (created 2024-03-01 12:30:00)\n[b] second (created 2024-03-01 12:30:00)\n",
		buf.String())
}
