// Package tracker holds the in-memory task store.
package tracker

import "time"

// Task represents a single tracked item.
type Task struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
