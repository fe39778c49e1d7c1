// internal/api/handler/roster.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"campus-roster/internal/api/types"
	"campus-roster/internal/domain"
	"campus-roster/internal/service"
	"campus-roster/internal/util" // For custom errors
)

// DefaultTimeout bounds every request handled by the router.
const DefaultTimeout = 30 * time.Second

// RosterHandler handles read-only HTTP requests for students and courses.
type RosterHandler struct {
	service service.RosterService
	logger  *slog.Logger
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(svc service.RosterService, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func (h *RosterHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *RosterHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrOperationFailed):
		statusCode = http.StatusServiceUnavailable
		message = "Database operation failed"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.ErrInvalidInput
	}
	return id, nil
}

// GetStudent handles the student lookup request.
// GET /students/{studentID}
func (h *RosterHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := parseID(r, "studentID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	students, err := h.service.GetStudent(r.Context(), studentID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	if len(students) == 0 {
		h.respondWithError(w, util.ErrNotFound)
		return
	}
	h.respondWithJSON(w, http.StatusOK, students[0])
}

// GetCourseStudents handles the course roster request.
// GET /courses/{courseID}/students
func (h *RosterHandler) GetCourseStudents(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseID(r, "courseID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	entries, err := h.service.GetStudents(r.Context(), courseID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.ListResponse[domain.RosterEntry]{
		Data:  entries,
		Count: len(entries),
	})
}
