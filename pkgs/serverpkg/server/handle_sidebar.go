package server

import (
	"bytes"
	"context"
	"net/http"

	"github.com/WangWilly/xGuild/pkgs/serverpkg/serverdto"
	"github.com/WangWilly/xGuild/pkgs/sidebar"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// handleSidebar renders the sidebar page of a server. Requests without a
// viewer and unknown servers are sent back to the root page.
func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	serverId := mux.Vars(r)["serverId"]
	logger := log.WithFields(log.Fields{
		"caller":   "server.handleSidebar",
		"serverId": serverId,
	})

	viewer, err := s.viewers.Resolve(r)
	if err != nil {
		logger.WithError(err).Error("failed to resolve viewer")
		http.Error(w, "Failed to resolve viewer", http.StatusInternalServerError)
		return
	}

	result, err := s.loader.Load(r.Context(), viewer, serverId)
	if err != nil {
		logger.WithError(err).Error("failed to load sidebar")
		http.Error(w, "Failed to load sidebar", http.StatusInternalServerError)
		return
	}
	if result.Status != sidebar.StatusReady {
		logger.Debugf("redirecting: %s", result.Status)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	progress, err := s.progressFor(r.Context(), result.View)
	if err != nil {
		logger.WithError(err).Error("failed to get progress")
		http.Error(w, "Failed to get progress", http.StatusInternalServerError)
		return
	}

	page := &serverdto.SidebarPage{
		Viewer:   viewer,
		View:     result.View,
		Progress: progress,
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "sidebar.html", page); err != nil {
		logger.WithError(err).Error("failed to render template")
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// handleAPISidebar serves the sidebar of a server as JSON
func (s *Server) handleAPISidebar(w http.ResponseWriter, r *http.Request) {
	serverId := mux.Vars(r)["serverId"]
	logger := log.WithFields(log.Fields{
		"caller":   "server.handleAPISidebar",
		"serverId": serverId,
	})

	viewer, err := s.viewers.Resolve(r)
	if err != nil {
		logger.WithError(err).Error("failed to resolve viewer")
		writeError(w, http.StatusInternalServerError, "failed to resolve viewer")
		return
	}

	result, err := s.loader.Load(r.Context(), viewer, serverId)
	if err != nil {
		logger.WithError(err).Error("failed to load sidebar")
		writeError(w, http.StatusInternalServerError, "failed to load sidebar")
		return
	}
	switch result.Status {
	case sidebar.StatusNotAuthenticated:
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	case sidebar.StatusNotFound:
		writeError(w, http.StatusNotFound, "server not found")
		return
	}

	progress, err := s.progressFor(r.Context(), result.View)
	if err != nil {
		logger.WithError(err).Error("failed to get progress")
		writeError(w, http.StatusInternalServerError, "failed to get progress")
		return
	}

	writeJSON(w, http.StatusOK, &serverdto.SidebarResponse{
		View:     result.View,
		Progress: progress,
	})
}

// progressFor returns nil unless the view shows the progress widget
func (s *Server) progressFor(ctx context.Context, view *sidebar.View) (*serverdto.ProgressData, error) {
	if !view.ShowProgress {
		return nil, nil
	}
	progress, err := s.todoRepo.ProgressByServer(ctx, s.db, view.Header.ServerId)
	if err != nil {
		return nil, err
	}
	return serverdto.NewProgressData(progress), nil
}
