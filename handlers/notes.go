package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"personal-notes/middleware"
	"personal-notes/models"
	"personal-notes/repository"
	"personal-notes/validator"
)

const errNoteNotFound = "Note not found"

// NotesHandler serves the /notes routes. Any caller may read, update or delete any
// note by id; only listing is scoped to the caller identity.
type NotesHandler struct {
	repo     repository.Repository
	validate *validator.Validator
	logger   *slog.Logger
}

func NewNotesHandler(repo repository.Repository, validate *validator.Validator, logger *slog.Logger) *NotesHandler {
	return &NotesHandler{repo: repo, validate: validate, logger: logger}
}

func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if !h.check(w, r, &req) {
		return
	}

	note := h.repo.Create(req.Title, req.Content, middleware.UserID(r.Context()))
	h.logger.Debug("note created", "note_id", note.ID, "owner_id", note.OwnerID)
	created(w, models.NewNoteResponse(note))
}

func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	notes := h.repo.ListByOwner(middleware.UserID(r.Context()))

	out := make([]models.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, models.NewNoteResponse(n))
	}
	success(w, out)
}

func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	note, found := h.repo.Get(id)
	if !found {
		notFound(w, errNoteNotFound)
		return
	}
	success(w, models.NewNoteResponse(note))
}

func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	var req models.UpdateNoteRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.Title = trimPtr(req.Title)
	req.Content = trimPtr(req.Content)
	if !h.check(w, r, &req) {
		return
	}

	upd := models.NoteUpdate{Title: req.Title, Content: req.Content}
	if upd.Empty() {
		badRequest(w, "No fields to update")
		return
	}

	note, found := h.repo.Update(id, upd)
	if !found {
		notFound(w, errNoteNotFound)
		return
	}
	success(w, models.NewNoteResponse(note))
}

func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	if !h.repo.Delete(id) {
		notFound(w, errNoteNotFound)
		return
	}
	noContent(w)
}

func (h *NotesHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		badRequest(w, "Invalid request body")
		return false
	}
	return true
}

func (h *NotesHandler) check(w http.ResponseWriter, r *http.Request, req any) bool {
	err := h.validate.Validate(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		validationFailed(w, verrs)
		return false
	}
	serverErrorWithDetails(w, r, h.logger, "Failed to validate request", err)
	return false
}

// noteID parses the {id} URL parameter. Ids are positive integers.
func noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		badRequest(w, "Invalid note id")
		return 0, false
	}
	return id, true
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
