package repository

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"personal-notes/models"
)

type Option func(*MemoryRepository)

// WithClock replaces time.Now as the source of note timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *MemoryRepository) {
		r.now = now
	}
}

// MemoryRepository keeps notes in process memory for the lifetime of the instance.
// One mutex guards both the id counter and the note map, so allocating an id and
// storing the note under it happen as a single step.
type MemoryRepository struct {
	mu     sync.Mutex
	notes  map[int64]models.Note
	lastID int64
	now    func() time.Time
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(opts ...Option) *MemoryRepository {
	r := &MemoryRepository{
		notes: make(map[int64]models.Note),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryRepository) Create(title, content, ownerID string) models.Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	now := r.now()
	note := models.Note{
		ID:        r.lastID,
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes[note.ID] = note
	return note
}

func (r *MemoryRepository) List() []models.Note {
	return r.collect(func(models.Note) bool { return true })
}

func (r *MemoryRepository) ListByOwner(ownerID string) []models.Note {
	return r.collect(func(n models.Note) bool { return n.OwnerID == ownerID })
}

func (r *MemoryRepository) collect(keep func(models.Note) bool) []models.Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Note, 0, len(r.notes))
	for _, n := range r.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b models.Note) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func (r *MemoryRepository) Get(id int64) (models.Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	return n, ok
}

func (r *MemoryRepository) Update(id int64, upd models.NoteUpdate) (models.Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok {
		return models.Note{}, false
	}
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	// updated_at never moves backwards, even if the wall clock does
	if now := r.now(); now.After(n.UpdatedAt) {
		n.UpdatedAt = now
	}
	r.notes[id] = n
	return n, true
}

func (r *MemoryRepository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return false
	}
	delete(r.notes, id)
	return true
}

func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}
