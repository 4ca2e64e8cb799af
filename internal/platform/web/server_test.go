package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-wezzle/internal/storage"
	_ "github.com/vovakirdan/tui-wezzle/internal/wezzle" // registers the modes
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ts := httptest.NewServer(NewServer(":0", store, nil).Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
}

func TestModes(t *testing.T) {
	ts, _ := newTestServer(t)

	var modes []ModeJSON
	getJSON(t, ts.URL+"/api/modes", http.StatusOK, &modes)
	if len(modes) != 2 || modes[0].ID != "wezzle" || modes[1].ID != "wezzle_tutorial" {
		t.Errorf("modes = %+v", modes)
	}
}

func TestScores(t *testing.T) {
	ts, store := newTestServer(t)
	for _, s := range []int{300, 100, 200} {
		store.SaveScore("wezzle", s)
	}

	var scores []ScoreJSON
	getJSON(t, ts.URL+"/api/scores/wezzle?limit=2", http.StatusOK, &scores)
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	if scores[0].Rank != 1 || scores[0].Score != 300 || scores[1].Score != 200 {
		t.Errorf("scores = %+v", scores)
	}
}

func TestRuns(t *testing.T) {
	ts, store := newTestServer(t)
	store.SaveRun(storage.Run{GameID: "wezzle", Score: 500, Level: 3, Seed: 1})
	store.SaveRun(storage.Run{GameID: "wezzle", Score: 200, Level: 2, Seed: 2})

	var recent []RunJSON
	getJSON(t, ts.URL+"/api/runs/wezzle", http.StatusOK, &recent)
	if len(recent) != 2 || recent[0].Seed != 2 {
		t.Errorf("recent runs = %+v, want newest first", recent)
	}

	var best []RunJSON
	getJSON(t, ts.URL+"/api/runs/wezzle?order=best&limit=1", http.StatusOK, &best)
	if len(best) != 1 || best[0].Score != 500 || best[0].Level != 3 {
		t.Errorf("best runs = %+v", best)
	}
}

func TestStats(t *testing.T) {
	ts, store := newTestServer(t)
	store.SaveRun(storage.Run{GameID: "wezzle", Score: 100, Level: 2, Lines: 5})
	store.SaveRun(storage.Run{GameID: "wezzle", Score: 300, Level: 4, Lines: 7})

	var stats []StatsJSON
	getJSON(t, ts.URL+"/api/stats", http.StatusOK, &stats)
	if len(stats) != 1 {
		t.Fatalf("got %d stats, want 1", len(stats))
	}
	st := stats[0]
	if st.GameID != "wezzle" || st.Games != 2 || st.HighScore != 300 || st.MaxLevel != 4 || st.TotalLines != 12 {
		t.Errorf("stats = %+v", st)
	}
}

func TestErrors(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown mode", "/api/scores/tetris", http.StatusNotFound},
		{"unknown mode runs", "/api/runs/tetris", http.StatusNotFound},
		{"bad limit", "/api/scores/wezzle?limit=abc", http.StatusBadRequest},
		{"negative limit", "/api/runs/wezzle?limit=-3", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e errorJSON
			getJSON(t, ts.URL+tt.path, tt.status, &e)
			if e.Error == "" {
				t.Error("error body is empty")
			}
		})
	}
}

func TestNoStore(t *testing.T) {
	ts := httptest.NewServer(NewServer(":0", nil, nil).Handler())
	defer ts.Close()

	getJSON(t, ts.URL+"/api/stats", http.StatusServiceUnavailable, nil)
	getJSON(t, ts.URL+"/api/modes", http.StatusOK, nil)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
		ok    bool
	}{
		{"", defaultLimit, true},
		{"limit=5", 5, true},
		{"limit=5000", maxLimit, true},
		{"limit=0", 0, false},
		{"limit=x", 0, false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/scores/wezzle?"+tt.query, nil)
		got, ok := parseLimit(r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseLimit(%q) = %d, %v; want %d, %v", tt.query, got, ok, tt.want, tt.ok)
		}
	}
}
