package middlewares

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// Cors allows cross-origin calls from the given origins. A "*" entry allows
// every origin; the request origin is echoed back so credentials still work.
func Cors(origins []string) func(http.Handler) http.Handler {
	allowAll := slices.Contains(origins, "*")

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return allowAll || slices.Contains(origins, origin)
		},
		AllowedMethods: []string{
			http.MethodDelete, http.MethodGet, http.MethodHead, http.MethodOptions,
			http.MethodPatch, http.MethodPost, http.MethodPut,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	})
}
