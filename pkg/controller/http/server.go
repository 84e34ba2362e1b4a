// Package http exposes a read-only JSON view of the store for the UI
// collaborator, plus a health check and a refresh trigger. Rendering is out
// of scope; this surface only serves values the store exposes.
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/app"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
	"github.com/lakecity-club/clubstate/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	store  *store.Store
}

func New(st *store.Store) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		store:  st,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthHandler)
	r.Route("/api/state", func(r chi.Router) {
		r.Get("/", s.stateHandler)
		r.Get("/loading", s.loadingHandler)
	})
	r.Post("/api/refresh", s.refreshHandler)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "ok"})
}

// stateHandler serves a snapshot of the full tree. The slice types control
// their own JSON shape, so transient image URLs never leave the process.
func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	writeJSON(w, r, map[string]any{
		"appState":      snap.App,
		"articlesState": snap.Articles,
		"authState":     snap.Auth,
		"eventsState":   snap.Events,
		"imagesState":   snap.Images,
		"membersState":  snap.Members,
	})
}

func (s *Server) loadingHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	writeJSON(w, r, map[string]bool{"isLoading": snap.IsLoading()})
}

func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	s.store.Dispatch(app.RefreshRequested{})
	w.WriteHeader(http.StatusAccepted)
	writeJSON(w, r, map[string]string{"status": "accepted"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	raw, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	safe.Write(r.Context(), w, raw)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
