package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"personal-notes/middleware"
	"personal-notes/validator"
)

type errorResponse struct {
	Detail string                     `json:"detail"`
	Errors validator.ValidationErrors `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func success(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, v)
}

func created(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusCreated, v)
}

func noContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Detail: message})
}

func validationFailed(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Validation error", Errors: errs})
}

func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Detail: message})
}

func serverErrorWithDetails(w http.ResponseWriter, r *http.Request, logger *slog.Logger, message string, err error) {
	logger.Error("server error",
		"request_id", middleware.GetRequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"message", message,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: message})
}
