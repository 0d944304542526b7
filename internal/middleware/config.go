package middleware

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/config"
	"github.com/startbeyond/startbeyond/internal/ctxkeys"
)

// Config puts the app config into every request context.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), cfg)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
