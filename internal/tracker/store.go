package tracker

import (
	"sync"
	"time"
)

// Store is an in-memory, insertion-ordered task collection.
// Lookups report absence with a boolean or an empty slice; nothing in here
// treats "not found" as an error.
type Store struct {
	mu    sync.RWMutex
	tasks []Task
	ids   IDGenerator
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		s.ids = g
	}
}

// WithClock overrides the clock used for CreatedAt and the default id source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewTimeIDs(s.now)
	}
	return s
}

// Add stores a copy of task and returns it as stored.
// An empty or already used ID is replaced by a generated one; a zero
// CreatedAt is set from the store clock.
func (s *Store) Add(task Task) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == "" || s.indexLocked(task.ID) >= 0 {
		task.ID = s.nextIDLocked()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.now()
	}
	s.tasks = append(s.tasks, task)
	return task
}

// FindByID returns the task with the given id.
func (s *Store) FindByID(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// FindByName returns all tasks whose name equals name exactly, in insertion order.
func (s *Store) FindByName(name string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Task{}
	for _, t := range s.tasks {
		if t.Name == name {
			result = append(result, t)
		}
	}
	return result
}

// FindAll returns every task in insertion order.
// The returned slice is a copy.
func (s *Store) FindAll() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Update replaces the name and description of the task with task.ID.
// ID and CreatedAt are kept. Returns false if no such task exists.
func (s *Store) Update(task Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(task.ID)
	if i < 0 {
		return false
	}
	s.tasks[i].Name = task.Name
	s.tasks[i].Description = task.Description
	return true
}

// Delete removes the task with the given id.
// Deleting an unknown id is a no-op and returns false.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *Store) indexLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextIDLocked keeps drawing until the id is unused. This only loops when a
// caller-supplied id happens to collide with a generated one.
func (s *Store) nextIDLocked() string {
	for {
		id := s.ids.NextID()
		if s.indexLocked(id) < 0 {
			return id
		}
	}
}
