package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	movieHandler "github.com/zhouzirui/movies-api/internal/handler/movie"
	middlewarePkg "github.com/zhouzirui/movies-api/internal/middleware"
	movieModel "github.com/zhouzirui/movies-api/internal/model/movie"
	"github.com/zhouzirui/movies-api/internal/validation"
	"github.com/zhouzirui/movies-api/pkg/utils"
)

// NewRouter wires HTTP routes to the movie store.
func NewRouter(movies movieModel.Store, validator *validation.Validator, guard *middlewarePkg.OriginGuard, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(middlewarePkg.CORS(guard))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "route not found")
	})

	movieHandler.New(movies, validator, logger).RegisterRoutes(r)

	return r
}
