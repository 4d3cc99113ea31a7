package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/WangWilly/xGuild/pkgs/serverpkg/serverdto"
	log "github.com/sirupsen/logrus"
)

// handleHome serves the root page listing the viewer's servers
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	logger := log.WithField("caller", "server.handleHome")

	viewer, err := s.viewers.Resolve(r)
	if err != nil {
		logger.WithError(err).Error("failed to resolve viewer")
		http.Error(w, "Failed to resolve viewer", http.StatusInternalServerError)
		return
	}

	page := &serverdto.HomePage{Viewer: viewer}
	if viewer != nil {
		page.Servers, err = s.serverRepo.ListByProfileId(r.Context(), s.db, viewer.Id)
		if err != nil {
			logger.WithError(err).Error("failed to list servers")
			http.Error(w, "Failed to list servers", http.StatusInternalServerError)
			return
		}
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "home.html", page); err != nil {
		logger.WithError(err).Error("failed to render template")
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// handleHealth reports whether the database answers
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "no database")
		return
	}
	if err := s.db.PingContext(r.Context()); err != nil {
		log.WithField("caller", "server.handleHealth").WithError(err).Warn("database ping failed")
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

////////////////////////////////////////////////////////////////////////////////

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithField("caller", "server.writeJSON").WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &serverdto.ErrorResponse{Error: msg})
}
