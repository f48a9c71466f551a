package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ostech/hrconsole/pkg/composables"
	"github.com/ostech/hrconsole/pkg/configuration"
)

// RequestParams exposes per-request metadata to downstream handlers via the
// context.
func RequestParams() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := composables.WithParams(r.Context(), &composables.Params{
				IP:        getRealIP(r, conf),
				UserAgent: r.UserAgent(),
				Request:   r,
				Writer:    w,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
