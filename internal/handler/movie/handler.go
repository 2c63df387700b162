package movie

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zhouzirui/movies-api/internal/model/movie"
	"github.com/zhouzirui/movies-api/internal/validation"
	"github.com/zhouzirui/movies-api/pkg/utils"
)

const maxBodyBytes = 1 << 20

// Response messages.
const (
	MsgNotFoundOnGet = "Movie not Found"
	MsgNotFound      = "Movie not found"
	MsgDeleted       = "Movie deleted"
)

// Handler serves the movies collection.
type Handler struct {
	movies    movie.Store
	validator *validation.Validator
	logger    *slog.Logger
	newID     func() string
}

// New creates a movie handler.
func New(movies movie.Store, validator *validation.Validator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		movies:    movies,
		validator: validator,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// RegisterRoutes registers the movie routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Delete("/{id}", h.handleDelete)
		r.Patch("/{id}", h.handleUpdate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	movies := h.movies.List()

	genre := r.URL.Query().Get("genre")
	if genre == "" {
		utils.RespondJSON(w, http.StatusOK, movies)
		return
	}

	filtered := make([]movie.Movie, 0, len(movies))
	for _, m := range movies {
		if m.HasGenre(genre) {
			filtered = append(filtered, m)
		}
	}
	utils.RespondJSON(w, http.StatusOK, filtered)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	m, ok := h.movies.FindByID(chi.URLParam(r, "id"))
	if !ok {
		utils.RespondMessage(w, http.StatusNotFound, MsgNotFoundOnGet)
		return
	}
	utils.RespondJSON(w, http.StatusOK, m)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	m, err := h.validator.Full(body)
	if err != nil {
		h.respondInvalid(w, r, err)
		return
	}

	m.ID = h.newID()
	h.movies.Append(m)
	h.logger.Info("movie created", "id", m.ID, "title", m.Title)

	utils.RespondJSON(w, http.StatusCreated, m)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.movies.Remove(id) {
		utils.RespondMessage(w, http.StatusNotFound, MsgNotFound)
		return
	}

	h.logger.Info("movie deleted", "id", id)
	utils.RespondMessage(w, http.StatusOK, MsgDeleted)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	patch, err := h.validator.Partial(body)
	if err != nil {
		h.respondInvalid(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	updated, ok := h.movies.Update(id, func(m movie.Movie) movie.Movie {
		return m.Apply(patch)
	})
	if !ok {
		utils.RespondMessage(w, http.StatusNotFound, MsgNotFound)
		return
	}

	h.logger.Info("movie updated", "id", id)
	utils.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		h.logger.Warn("failed to read request body", "path", r.URL.Path, "error", err)
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return body, true
}

func (h *Handler) respondInvalid(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		h.logger.Error("unexpected validation failure", "path", r.URL.Path, "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.logger.Debug("rejected movie payload", "method", r.Method, "path", r.URL.Path, "issues", len(verr.Issues))
	utils.RespondError(w, http.StatusBadRequest, verr.Issues)
}
