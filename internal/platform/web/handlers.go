package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-wezzle/internal/registry"
	"github.com/vovakirdan/tui-wezzle/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ModeJSON is one entry of GET /api/modes.
type ModeJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ScoreJSON is one entry of GET /api/scores/{gameID}.
type ScoreJSON struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// RunJSON is one entry of GET /api/runs/{gameID}.
type RunJSON struct {
	ID        int64     `json:"id"`
	Score     int       `json:"score"`
	Level     int       `json:"level"`
	Lines     int       `json:"lines"`
	Moves     int       `json:"moves"`
	Seed      int64     `json:"seed"`
	Ticks     uint64    `json:"ticks"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsJSON is one entry of GET /api/stats.
type StatsJSON struct {
	GameID     string    `json:"game_id"`
	Games      int       `json:"games"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	MaxLevel   int       `json:"max_level"`
	TotalLines int64     `json:"total_lines"`
	LastPlayed time.Time `json:"last_played"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // client went away
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorJSON{Error: msg})
}

// parseLimit reads ?limit=N, clamped to [1, maxLimit].
func parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return min(n, maxLimit), true
}

// modeParam returns the registered mode named in the path.
func modeParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "gameID")
	if !registry.Exists(id) {
		writeError(w, http.StatusNotFound, "unknown mode "+strconv.Quote(id))
		return "", false
	}
	return id, true
}

func (s *Server) storeReady(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "score database unavailable")
		return false
	}
	return true
}

func (s *Server) handleModes(w http.ResponseWriter, _ *http.Request) {
	modes := registry.List()
	out := make([]ModeJSON, len(modes))
	for i, m := range modes {
		out[i] = ModeJSON{ID: m.ID, Title: m.Title, Description: m.Description}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	id, ok := modeParam(w, r)
	if !ok || !s.storeReady(w) {
		return
	}
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	scores, err := s.store.TopScores(id, limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	out := make([]ScoreJSON, len(scores))
	for i, e := range scores {
		out[i] = ScoreJSON{Rank: i + 1, Score: e.Score, CreatedAt: e.CreatedAt}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	id, ok := modeParam(w, r)
	if !ok || !s.storeReady(w) {
		return
	}
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	var runs []storage.Run
	var err error
	if r.URL.Query().Get("order") == "best" {
		runs, err = s.store.TopRuns(id, limit)
	} else {
		runs, err = s.store.RecentRuns(id, limit)
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	out := make([]RunJSON, len(runs))
	for i, run := range runs {
		out[i] = RunJSON{
			ID:        run.ID,
			Score:     run.Score,
			Level:     run.Level,
			Lines:     run.Lines,
			Moves:     run.Moves,
			Seed:      run.Seed,
			Ticks:     run.Ticks,
			CreatedAt: run.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	if !s.storeReady(w) {
		return
	}
	all, err := s.store.GetAllGamesStats()
	if err != nil {
		s.fail(w, err)
		return
	}

	out := make([]StatsJSON, 0, len(all))
	for _, m := range registry.List() {
		st, ok := all[m.ID]
		if !ok {
			continue
		}
		out = append(out, StatsJSON{
			GameID:     m.ID,
			Games:      st.GamesCount,
			HighScore:  st.HighScore,
			AvgScore:   st.AvgScore,
			MaxLevel:   st.MaxLevel,
			TotalLines: st.TotalLines,
			LastPlayed: st.LastPlayed,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	if s.logger != nil {
		s.logger.Error("query failed", "err", err)
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
