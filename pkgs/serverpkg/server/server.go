package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/profilerepo"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/serverrepo"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/todorepo"
	"github.com/WangWilly/xGuild/pkgs/sidebar"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

// Server renders server sidebars over HTTP
type Server struct {
	db        *sqlx.DB
	templates *template.Template
	port      string
	http      *http.Server

	loader     SidebarLoader
	viewers    ViewerResolver
	serverRepo ServerRepo
	todoRepo   TodoRepo
}

// NewServerWithConfig creates a new server instance backed by db
func NewServerWithConfig(db *sqlx.DB, port string) (*Server, error) {
	servers := serverrepo.New()
	return NewServer(
		db,
		port,
		sidebar.New(db, servers),
		NewProfileViewerResolver(db, profilerepo.New()),
		servers,
		todorepo.New(),
	)
}

// NewServer creates a server from explicit collaborators
func NewServer(
	db *sqlx.DB,
	port string,
	loader SidebarLoader,
	viewers ViewerResolver,
	serverRepo ServerRepo,
	todoRepo TodoRepo,
) (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	log.WithField("caller", "server.NewServer").Debugf("templates: %s", templates.DefinedTemplates())

	return &Server{
		db:        db,
		templates: templates,
		port:      port,

		loader:     loader,
		viewers:    viewers,
		serverRepo: serverRepo,
		todoRepo:   todoRepo,
	}, nil
}

////////////////////////////////////////////////////////////////////////////////

// Handler returns the router serving every route of the server
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Sidebar routes
	r.HandleFunc("/servers/{serverId}", s.handleSidebar).Methods(http.MethodGet)
	r.HandleFunc("/api/servers/{serverId}/sidebar", s.handleAPISidebar).Methods(http.MethodGet)

	// Static file routes
	r.PathPrefix("/static/").Handler(staticHandler())

	return r
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.WithField("caller", "server.Start").Infof("listening on :%s", s.port)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Close closes the server resources
func (s *Server) Close() {
	if s.db != nil {
		s.db.Close()
	}
}
