// Package middleware holds the HTTP middleware shared by the API router.
package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"

	"github.com/zhouzirui/movies-api/pkg/utils"
)

// NotAllowedMessage is returned to requests from origins outside the allow-list.
const NotAllowedMessage = "Not allowed by CORS"

// OriginGuard decides whether a request origin may access the API.
type OriginGuard struct {
	allowed map[string]struct{}
}

// NewOriginGuard builds a guard over a fixed set of origins. Entries are
// compared verbatim after trimming surrounding whitespace.
func NewOriginGuard(origins []string) *OriginGuard {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = struct{}{}
		}
	}
	return &OriginGuard{allowed: allowed}
}

// IsAllowed reports whether origin may access the API. Requests without an
// origin (same-origin or non-browser clients) are always allowed.
func (g *OriginGuard) IsAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	_, ok := g.allowed[origin]
	return ok
}

// CORS rejects requests whose Origin is not allowed by guard and answers
// preflight requests for the allowed ones.
func CORS(guard *OriginGuard) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: guard.IsAllowed,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	})

	return func(next http.Handler) http.Handler {
		h := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.IsAllowed(r.Header.Get("Origin")) {
				utils.RespondError(w, http.StatusForbidden, NotAllowedMessage)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
