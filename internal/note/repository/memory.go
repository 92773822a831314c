package repository

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/notehub/notes-backend/internal/note"
)

var (
	ErrNotFound = errors.New("note not found")
)

// MemoryRepo is the in-memory note repository. State is process-local and not
// durable; it is lost on restart.
//
// The repo owns the stored notes exclusively: callers always receive copies,
// never pointers into the map.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*note.Note
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*note.Note)}
}

// Create stores a new note with a fresh id and both timestamps set to now.
func (m *MemoryRepo) Create(title, content string) (*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	n := &note.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.store[n.ID] = n
	out := *n
	return &out, nil
}

func (m *MemoryRepo) Get(id string) (*note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *n
	return &out, nil
}

// List returns all notes ordered by creation time ascending (id breaks ties so
// the order is deterministic).
func (m *MemoryRepo) List() ([]*note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*note.Note, 0, len(m.store))
	for _, n := range m.store {
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Update overwrites only the supplied fields and refreshes UpdatedAt.
// CreatedAt is never touched.
func (m *MemoryRepo) Update(id string, title, content *string) (*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if title != nil {
		n.Title = *title
	}
	if content != nil {
		n.Content = *content
	}
	n.UpdatedAt = time.Now().UTC()
	out := *n
	return &out, nil
}

func (m *MemoryRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
