package repository

import "personal-notes/models"

type (
	// Repository is the store behind the notes handlers. Lookups on unknown ids report
	// absence through the boolean result; no operation returns an error.
	Repository interface {
		Create(title, content, ownerID string) models.Note
		List() []models.Note
		ListByOwner(ownerID string) []models.Note
		Get(id int64) (models.Note, bool)
		Update(id int64, upd models.NoteUpdate) (models.Note, bool)
		Delete(id int64) bool
		Len() int
	}
)
