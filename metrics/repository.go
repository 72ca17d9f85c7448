package metrics

import (
	"personal-notes/models"
	"personal-notes/repository"
)

// InstrumentedRepository counts repository calls and tracks the number of stored notes.
type InstrumentedRepository struct {
	next    repository.Repository
	metrics *Metrics
}

var _ repository.Repository = (*InstrumentedRepository)(nil)

func NewInstrumentedRepository(next repository.Repository, m *Metrics) *InstrumentedRepository {
	m.NotesStored.Set(float64(next.Len()))
	return &InstrumentedRepository{next: next, metrics: m}
}

func (r *InstrumentedRepository) Create(title, content, ownerID string) models.Note {
	note := r.next.Create(title, content, ownerID)
	r.metrics.observeOperation("create", true)
	r.metrics.NotesStored.Inc()
	return note
}

func (r *InstrumentedRepository) List() []models.Note {
	notes := r.next.List()
	r.metrics.observeOperation("list", true)
	return notes
}

func (r *InstrumentedRepository) ListByOwner(ownerID string) []models.Note {
	notes := r.next.ListByOwner(ownerID)
	r.metrics.observeOperation("list", true)
	return notes
}

func (r *InstrumentedRepository) Get(id int64) (models.Note, bool) {
	note, ok := r.next.Get(id)
	r.metrics.observeOperation("get", ok)
	return note, ok
}

func (r *InstrumentedRepository) Update(id int64, upd models.NoteUpdate) (models.Note, bool) {
	note, ok := r.next.Update(id, upd)
	r.metrics.observeOperation("update", ok)
	return note, ok
}

func (r *InstrumentedRepository) Delete(id int64) bool {
	ok := r.next.Delete(id)
	r.metrics.observeOperation("delete", ok)
	if ok {
		r.metrics.NotesStored.Dec()
	}
	return ok
}

func (r *InstrumentedRepository) Len() int {
	return r.next.Len()
}
