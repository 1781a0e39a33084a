// Package output provides line-oriented printing for the tracker menus.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"tracker/internal/tracker"
)

// TimeLayout is the layout used for task creation times.
const TimeLayout = "2006-01-02 15:04:05"

// Printer writes user-visible results, one line per item.
// Notices are styled only when the writer is a color terminal.
type Printer struct {
	w    io.Writer
	term *termenv.Output
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:    w,
		term: termenv.NewOutput(w),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Line writes s followed by a newline.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.w, s)
}

// Linef formats and writes a single line.
func (p *Printer) Linef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Notice writes a status message such as a "not found" report.
func (p *Printer) Notice(s string) {
	fmt.Fprintln(p.w, p.term.String(s).Italic())
}

// Noticef formats and writes a notice.
func (p *Printer) Noticef(format string, args ...any) {
	p.Notice(fmt.Sprintf(format, args...))
}

// Task writes one task line.
func (p *Printer) Task(t tracker.Task) {
	FormatTask(p.w, t)
}

// Tasks writes one line per task.
func (p *Printer) Tasks(tasks []tracker.Task) {
	for _, t := range tasks {
		FormatTask(p.w, t)
	}
}

// FormatMenuItem formats a menu line.
// Format: "{KEY}. {LABEL}\n"
func FormatMenuItem(w io.Writer, key, label string) {
	fmt.Fprintf(w, "%s. %s\n", key, label)
}

// FormatTask formats a task line.
// Format: "[{ID}] {NAME}: {DESCRIPTION} (created {TIME})\n"; the
// ": {DESCRIPTION}" part is omitted when the description is blank.
func FormatTask(w io.Writer, t tracker.Task) {
	name := normalizeText(t.Name)
	if name == "" {
		name = "(untitled)"
	}
	created := t.CreatedAt.Format(TimeLayout)
	desc := normalizeText(t.Description)
	if desc == "" {
		fmt.Fprintf(w, "[%s] %s (created %s)\n", t.ID, name, created)
		return
	}
	fmt.Fprintf(w, "[%s] %s: %s (created %s)\n", t.ID, name, desc, created)
}

// normalizeText keeps a value on one line.
// - Newlines are replaced with spaces
// - Whitespace-only values become ""
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
