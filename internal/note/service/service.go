package service

import (
	"errors"
	"unicode/utf8"

	"github.com/notehub/notes-backend/internal/note"
	"github.com/notehub/notes-backend/internal/note/repository"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrNoFields is returned when an update supplies neither title nor content.
	ErrNoFields = errors.New("at least one of 'title' or 'content' must be provided")
	// ErrInvalidTitle is returned when an update supplies an empty or oversized title.
	ErrInvalidTitle = errors.New("title must be between 1 and 200 characters")
)

// Service defines the note business operations used by the handler layer.
type Service interface {
	Create(title, content string) (*note.Note, error)
	Get(id string) (*note.Note, error)
	List() ([]*note.Note, error)
	Update(id string, title, content *string) (*note.Note, error)
	Delete(id string) error
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return &memoryService{repo: repository.NewMemoryRepo()}
}

type memoryService struct {
	repo *repository.MemoryRepo
}

func (m *memoryService) Create(title, content string) (*note.Note, error) {
	return m.repo.Create(title, content)
}

func (m *memoryService) Get(id string) (*note.Note, error) {
	n, err := m.repo.Get(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return n, nil
}

func (m *memoryService) List() ([]*note.Note, error) {
	return m.repo.List()
}

// Update resolves the id before validating the payload: a nonexistent id is
// always NotFound, whatever the payload looks like.
func (m *memoryService) Update(id string, title, content *string) (*note.Note, error) {
	if _, err := m.repo.Get(id); err != nil {
		return nil, ErrNotFound
	}
	if title == nil && content == nil {
		return nil, ErrNoFields
	}
	if title != nil && (*title == "" || utf8.RuneCountInString(*title) > 200) {
		return nil, ErrInvalidTitle
	}
	n, err := m.repo.Update(id, title, content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (m *memoryService) Delete(id string) error {
	if err := m.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
