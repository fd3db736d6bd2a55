package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/registroapp/conciliador/pkg/common"
	"github.com/registroapp/conciliador/pkg/reconcile"
	"github.com/registroapp/conciliador/pkg/suggest"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type Handler struct {
	service ReconcileService
	logger  zerolog.Logger
}

func NewHandler(
	service ReconcileService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Register(r *mux.Router) {
	api := r.PathPrefix("/api/reconciliation").Subrouter()
	api.Use(h.requestLogger)

	api.HandleFunc("/movements", h.ListMovements).Methods(http.MethodGet)
	api.HandleFunc("/movements/unreconciled", h.ListUnreconciled).Methods(http.MethodGet)
	api.HandleFunc("/movements/{id}/suggestions", h.Suggestions).Methods(http.MethodGet)
	api.HandleFunc("/link", h.Link).Methods(http.MethodPost)
	api.HandleFunc("/unlink/{id}", h.Unlink).Methods(http.MethodPost)
	api.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
}

// requestLogger attaches a per-request logger with a request id, so every
// downstream log line can be correlated.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger.With().
			Str("request_id", uuid.NewString()).
			Str("path", r.URL.Path).
			Logger()

		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

func (h *Handler) ListMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.service.ListAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, paginate(movements, r))
}

func (h *Handler) ListUnreconciled(w http.ResponseWriter, r *http.Request) {
	movements, err := h.service.ListUnreconciled(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, paginate(movements, r))
}

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	movementID := mux.Vars(r)["id"]

	suggestions, err := h.service.Suggest(r.Context(), movementID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if suggestions == nil {
		suggestions = []suggest.Suggestion{}
	}

	h.writeJSON(w, r, SuggestionsResponse{
		MovementID:  movementID,
		Suggestions: suggestions,
		Total:       len(suggestions),
	})
}

func (h *Handler) Link(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request LinkRequest
	if err = json.Unmarshal(b, &request); err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	if request.MovementID == "" || request.DocumentID == "" {
		h.writeStatus(w, http.StatusBadRequest, "movementId and documentId are required")
		return
	}

	movement, err := h.service.Link(r.Context(), request.MovementID, request.DocumentID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, movement)
}

func (h *Handler) Unlink(w http.ResponseWriter, r *http.Request) {
	movement, err := h.service.Unlink(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, movement)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, stats)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Err(err).Msg("failed to write response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrMovementNotFound) || errors.Is(err, common.ErrDocumentNotFound) {
		h.writeStatus(w, http.StatusNotFound, err.Error())
		return
	}

	zerolog.Ctx(r.Context()).Err(err).Msg("request failed")
	h.writeStatus(w, http.StatusInternalServerError, err.Error())
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// paginate windows a listing with page and size query params. Page numbering
// starts at 1; out-of-range pages return an empty slice, not an error.
func paginate(movements []reconcile.MovementView, r *http.Request) []reconcile.MovementView {
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", defaultPageSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	start := (page - 1) * size
	if start >= len(movements) {
		return []reconcile.MovementView{}
	}

	end := start + size
	if end > len(movements) {
		end = len(movements)
	}

	return movements[start:end]
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
