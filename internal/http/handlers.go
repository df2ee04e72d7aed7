package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fairyhunter13/product-list-ui/internal/config"
	httpopenapi "github.com/fairyhunter13/product-list-ui/internal/http/openapi"
	"github.com/fairyhunter13/product-list-ui/internal/page"
	"github.com/fairyhunter13/product-list-ui/internal/render"
)

// App carries the dependencies shared by all handlers.
type App struct {
	Cfg      config.Config
	Loader   page.Loader
	Renderer *render.Renderer
	Locales  *render.LocaleResolver
	Routes   *Routes
	started  time.Time
}

// NewApp wires the default route table: /products plus the operational endpoints.
// Further routes may be added through app.Routes before NewRouter is called.
func NewApp(cfg config.Config, loader page.Loader) (*App, error) {
	rr, err := render.NewRenderer()
	if err != nil {
		return nil, err
	}
	a := &App{
		Cfg:      cfg,
		Loader:   loader,
		Renderer: rr,
		Locales:  render.NewLocaleResolver(cfg.DefaultLocale),
		Routes:   NewRoutes(),
		started:  time.Now(),
	}
	for path, h := range map[string]http.HandlerFunc{
		ProductsPath: a.productListHandler,
		HealthPath:   a.healthHandler,
		OpenAPIPath:  a.openapiHandler,
		DocsPath:     a.docsHandler,
	} {
		if err := a.Routes.Register(path, h); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// productListHandler mounts a page for the lifetime of the request, waits for its single
// load, and renders whatever state it ended in.
func (a *App) productListHandler(w http.ResponseWriter, r *http.Request) {
	log := LoggerFromContext(r.Context())
	loc := a.Locales.Resolve(r.Header.Get("Accept-Language"))

	pg := page.New(a.Loader, log)
	pg.Mount(r.Context())
	defer pg.Unmount()
	st := pg.Wait(r.Context())

	view, err := page.View(st, loc)
	if err != nil {
		log.Error("product_grid_invalid", "error", err)
		writeHTMLError(w, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := a.Renderer.ProductList(&buf, view); err != nil {
		log.Error("template_error", "template", "products", "error", err)
		writeHTMLError(w, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", view.Lang)
	_, _ = buf.WriteTo(w)
	log.Debug("product_list_rendered", "status", st.Status.String(), "cards", len(view.Cards), "locale", view.Lang)
}

func (a *App) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := a.Renderer.NotFound(&buf, render.NotFoundPage{Path: r.URL.Path}); err != nil {
		LoggerFromContext(r.Context()).Error("template_error", "template", "notfound", "error", err)
		writeHTMLError(w, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = buf.WriteTo(w)
}

func (a *App) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	writeHTMLError(w, http.StatusMethodNotAllowed)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":     "ok",
		"uptime_sec": time.Since(a.started).Seconds(),
	})
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(httpopenapi.DocsHTML)
}
