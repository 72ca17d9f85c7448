package models

import "time"

type Note struct {
	ID        int64
	Title     string
	Content   string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteUpdate carries the fields of a partial update. A nil field is left unchanged.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// Empty reports whether the update names no field at all.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// NoteResponse is the wire form of a note. Timestamps are epoch seconds.
type NoteResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	OwnerID   string  `json:"owner_id"`
	CreatedAt float64 `json:"created_at"`
	UpdatedAt float64 `json:"updated_at"`
}

func NewNoteResponse(n Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		OwnerID:   n.OwnerID,
		CreatedAt: epochSeconds(n.CreatedAt),
		UpdatedAt: epochSeconds(n.UpdatedAt),
	}
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
