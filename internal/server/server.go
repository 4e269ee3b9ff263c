// Package server exposes the level catalog and the execution engine over
// HTTP. Levels are served as JSON for the browser front end; programs are
// posted back and answered with the full execution trace.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/blockhop/internal/engine"
	"github.com/vovakirdan/blockhop/internal/levels"
	"github.com/vovakirdan/blockhop/internal/storage"
)

// Server is the HTTP API server.
type Server struct {
	catalog *levels.Catalog
	store   *storage.Store
	logger  *log.Logger
	router  *mux.Router
}

// New creates a new API server. staticDir optionally points at a directory
// of front-end assets to serve at the root; empty disables it.
func New(catalog *levels.Catalog, store *storage.Store, logger *log.Logger, staticDir string) *Server {
	s := &Server{
		catalog: catalog,
		store:   store,
		logger:  logger,
		router:  mux.NewRouter(),
	}

	s.setupRoutes(staticDir)
	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes(staticDir string) {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/levels", s.handleListLevels).Methods("GET")
	api.HandleFunc("/levels/{id}", s.handleGetLevel).Methods("GET")
	api.HandleFunc("/levels/{id}/run", s.handleRun).Methods("POST")
	api.HandleFunc("/levels/{id}/stream", s.handleStream).Methods("GET")
	api.HandleFunc("/progress", s.handleProgress).Methods("GET")

	if staticDir != "" {
		s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.router.ServeHTTP(w, r)
	s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// LevelSummary is one catalog entry in the list response.
type LevelSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Tiles      int    `json:"tiles"`
	Locked     bool   `json:"locked"`
	Completed  bool   `json:"completed"`
	BestBlocks int    `json:"best_blocks,omitempty"`
}

// LevelJSON is the full wire form of a level.
type LevelJSON struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Track []string `json:"track"`
	Start int      `json:"start"`
	Goal  int      `json:"goal"`
}

func levelToJSON(level engine.Level) LevelJSON {
	track := make([]string, len(level.Track))
	for i, tile := range level.Track {
		track[i] = tile.String()
	}
	return LevelJSON{
		ID:    level.ID,
		Name:  level.Name,
		Track: track,
		Start: level.Start,
		Goal:  level.Goal,
	}
}

// unlocked reports whether the player may play the given level.
// The first catalog level is always available.
func (s *Server) unlocked(levelID string) bool {
	if first, ok := s.catalog.First(); ok && first == levelID {
		return true
	}
	isUnlocked, err := s.store.Unlocked(levelID)
	if err != nil {
		s.logger.Warn("unlock lookup failed", "level", levelID, "error", err)
		return false
	}
	return isUnlocked
}

// Handlers

func (s *Server) handleListLevels(w http.ResponseWriter, r *http.Request) {
	progress, err := s.store.AllProgress()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	first, _ := s.catalog.First()
	summaries := make([]LevelSummary, 0, s.catalog.Len())
	for _, level := range s.catalog.All() {
		p := progress[level.ID]
		summaries = append(summaries, LevelSummary{
			ID:         level.ID,
			Name:       level.Name,
			Tiles:      len(level.Track),
			Locked:     level.ID != first && !p.Unlocked,
			Completed:  p.Completed,
			BestBlocks: p.BestBlocks,
		})
	}

	respondJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	level, ok := s.catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "level not found")
		return
	}
	if !s.unlocked(id) {
		respondError(w, http.StatusForbidden, "level is locked")
		return
	}

	respondJSON(w, http.StatusOK, levelToJSON(level))
}

// RunRequest is the body of a run call: the ordered block program.
type RunRequest struct {
	Program engine.Program `json:"program"`
}

// RunResponse carries the full trace of one run plus its outcome.
type RunResponse struct {
	LevelID  string       `json:"level_id"`
	Trace    engine.Trace `json:"trace"`
	Success  bool         `json:"success"`
	Position int          `json:"position"`
	Reason   string       `json:"reason,omitempty"`
	Unlocked string       `json:"unlocked,omitempty"` // Next level ID, set on first completion
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	level, ok := s.catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "level not found")
		return
	}
	if !s.unlocked(id) {
		respondError(w, http.StatusForbidden, "level is locked")
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	trace := engine.Run(level, req.Program)
	resp := RunResponse{
		LevelID:  id,
		Trace:    trace,
		Position: level.Start,
	}

	if last, ok := trace.Terminal(); ok {
		resp.Success = last.Status == engine.StatusSuccess
		resp.Position = last.Position
		resp.Reason = last.Reason
	}

	// An empty program means nothing ran; nothing to persist.
	if len(trace) > 0 {
		if _, err := s.store.RecordRun(id, len(req.Program), resp.Success, resp.Reason); err != nil {
			s.logger.Warn("recording run failed", "level", id, "error", err)
		}
		if resp.Success {
			resp.Unlocked = s.completeAndUnlockNext(id, len(req.Program))
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// completeAndUnlockNext persists a completion and unlocks the next catalog
// level, returning the newly unlocked ID when this completion opened it.
func (s *Server) completeAndUnlockNext(levelID string, blocks int) string {
	if err := s.store.Complete(levelID, blocks); err != nil {
		s.logger.Warn("persisting completion failed", "level", levelID, "error", err)
	}

	next, ok := s.catalog.Next(levelID)
	if !ok {
		return ""
	}

	wasUnlocked, err := s.store.Unlocked(next)
	if err != nil {
		s.logger.Warn("unlock lookup failed", "level", next, "error", err)
	}
	if err := s.store.Unlock(next); err != nil {
		s.logger.Warn("unlocking level failed", "level", next, "error", err)
		return ""
	}
	if wasUnlocked {
		return ""
	}
	return next
}

// ProgressResponse is the persisted progress across the catalog.
type ProgressResponse struct {
	Levels  map[string]ProgressEntry `json:"levels"`
	Summary SummaryJSON              `json:"summary"`
}

// ProgressEntry is the wire form of one level's progress.
type ProgressEntry struct {
	Unlocked   bool `json:"unlocked"`
	Completed  bool `json:"completed"`
	BestBlocks int  `json:"best_blocks,omitempty"`
}

// SummaryJSON is the wire form of aggregated run statistics.
type SummaryJSON struct {
	TotalRuns int `json:"total_runs"`
	Successes int `json:"successes"`
	Completed int `json:"completed"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.store.AllProgress()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	stats, err := s.store.Stats()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ProgressResponse{
		Levels: make(map[string]ProgressEntry, len(progress)),
		Summary: SummaryJSON{
			TotalRuns: stats.TotalRuns,
			Successes: stats.Successes,
			Completed: stats.Completed,
		},
	}
	for id, p := range progress {
		resp.Levels[id] = ProgressEntry{
			Unlocked:   p.Unlocked,
			Completed:  p.Completed,
			BestBlocks: p.BestBlocks,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
