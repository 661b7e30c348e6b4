// Package server is a small content host that edits and publishes items
// built from declared templates through registered field types.
package server

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-gridfield/internal/store"
	"github.com/goliatone/go-gridfield/pkg/declaration"
	"github.com/goliatone/go-gridfield/pkg/fieldtype"
	"github.com/goliatone/go-gridfield/pkg/render/template"
	"github.com/goliatone/go-gridfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-gridfield/pkg/tabular"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Config wires the server collaborators.
type Config struct {
	Store        *store.Store
	Declarations *declaration.Store
	Registry     *fieldtype.Registry
	// AssetPath is where the tabular stylesheet is mounted. Empty skips the
	// asset route.
	AssetPath string
	Logger    *slog.Logger
}

// Server is an http.Handler.
type Server struct {
	router   *chi.Mux
	store    *store.Store
	decls    *declaration.Store
	registry *fieldtype.Registry
	pages    template.TemplateRenderer
	logger   *slog.Logger
}

// New validates cfg and builds the router.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("server: store is required")
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("server: registry is required")
	}
	if cfg.Declarations.Empty() {
		return nil, fmt.Errorf("server: no templates declared")
	}
	if err := cfg.Declarations.Check(cfg.Registry); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pagesFS, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("server: templates: %w", err)
	}
	pages, err := gotemplate.New(gotemplate.WithFS(pagesFS))
	if err != nil {
		return nil, fmt.Errorf("server: template engine: %w", err)
	}

	s := &Server{
		router:   chi.NewRouter(),
		store:    cfg.Store,
		decls:    cfg.Declarations,
		registry: cfg.Registry,
		pages:    pages,
		logger:   logger,
	}
	s.setupMiddleware()
	s.setupRoutes(cfg.AssetPath)
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(s.logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes(assetPath string) {
	s.router.Get("/", s.handle(s.handleIndex))
	s.router.Post("/admin/items", s.handle(s.handleCreate))
	s.router.Get("/admin/items/{id}", s.handle(s.handleEdit))
	s.router.Post("/admin/items/{id}", s.handle(s.handleSave))
	s.router.Get("/items/{id}", s.handle(s.handleView))

	if prefix := strings.TrimRight(strings.TrimSpace(assetPath), "/"); prefix != "" {
		s.router.Handle(prefix+"/*", tabular.AssetsHandler(prefix))
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
