package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fairyhunter13/product-list-ui/internal/render"
)

// NewRouter builds the mux from the app's route table and wraps it with middleware.
// Routes registered on app.Routes after this call are not served.
func NewRouter(app *App) http.Handler {
	r := mux.NewRouter()
	for _, path := range app.Routes.Paths() {
		r.Handle(path, app.Routes.handler(path)).Methods(http.MethodGet, http.MethodHead)
	}
	r.PathPrefix(StaticPrefix).Handler(http.StripPrefix(StaticPrefix, http.FileServer(http.FS(render.Static()))))
	r.NotFoundHandler = http.HandlerFunc(app.notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(app.methodNotAllowedHandler)
	return WithRequestID(WithLogging(r))
}
