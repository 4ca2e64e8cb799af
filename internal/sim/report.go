package sim

import (
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

// Report aggregates a simulation batch.
type Report struct {
	Games     int
	Results   []GameResult
	MeanScore float64
	StdScore  float64
	MaxScore  int
	MaxLevel  int
	GameOvers int
	Moves     int
	Lines     int
	Batches   int // drop batches placed
	DropTiles int // tiles placed by drops
	Specials  int
	CapHits   int
	Elapsed   time.Duration
}

// NewReport aggregates results.
func NewReport(results []GameResult, elapsed time.Duration) *Report {
	r := &Report{Games: len(results), Results: results, Elapsed: elapsed}
	scores := make([]float64, len(results))
	for i, g := range results {
		scores[i] = float64(g.Score)
		r.MaxScore = max(r.MaxScore, g.Score)
		r.MaxLevel = max(r.MaxLevel, g.Level)
		r.Moves += g.Moves
		r.Lines += g.Lines
		r.Batches += g.Drops.Batches
		r.DropTiles += g.Drops.Tiles
		r.Specials += g.Drops.Specials
		r.CapHits += g.Drops.CapHits
		if g.GameOver {
			r.GameOvers++
		}
	}

	switch len(scores) {
	case 0:
	case 1:
		r.MeanScore = scores[0]
	default:
		r.MeanScore, r.StdScore = stat.MeanStdDev(scores, nil)
	}
	return r
}

// Write prints the report as a two-column table.
func (r *Report) Write(w io.Writer) error {
	p := message.NewPrinter(language.English)
	rows := [][2]string{
		{"Games", p.Sprintf("%d", r.Games)},
		{"Mean score", p.Sprintf("%.1f", r.MeanScore)},
		{"Score stddev", p.Sprintf("%.1f", r.StdScore)},
		{"Best score", p.Sprintf("%d", r.MaxScore)},
		{"Max level", p.Sprintf("%d", r.MaxLevel)},
		{"Game overs", p.Sprintf("%d", r.GameOvers)},
		{"Moves", p.Sprintf("%d", r.Moves)},
		{"Lines", p.Sprintf("%d", r.Lines)},
		{"Drop batches", p.Sprintf("%d", r.Batches)},
		{"Dropped tiles", p.Sprintf("%d", r.DropTiles)},
		{"Special tiles", p.Sprintf("%d", r.Specials)},
		{"Correction caps", p.Sprintf("%d", r.CapHits)},
		{"Elapsed", r.Elapsed.Round(time.Millisecond).String()},
	}
	_, err := io.WriteString(w, formatTable("SIMULATION", rows))
	return err
}

// formatTable draws rows in a box, measuring cells by display width.
func formatTable(title string, rows [][2]string) string {
	keyW, valW := 0, 0
	for _, row := range rows {
		keyW = max(keyW, runewidth.StringWidth(row[0]))
		valW = max(valW, runewidth.StringWidth(row[1]))
	}
	keyW += 2
	valW += 2
	inner := keyW + 1 + valW
	if tw := runewidth.StringWidth(title) + 2; tw > inner {
		valW += tw - inner
		inner = tw
	}

	var b strings.Builder
	top := "+" + strings.Repeat("-", inner) + "+\n"
	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"

	left := (inner - runewidth.StringWidth(title)) / 2
	b.WriteString(top)
	b.WriteString("|" + blank(left) + title + blank(inner-left-runewidth.StringWidth(title)) + "|\n")
	b.WriteString(divider)
	for _, row := range rows {
		b.WriteString("| " + runewidth.FillRight(row[0], keyW-2) + " | " + runewidth.FillLeft(row[1], valW-2) + " |\n")
	}
	b.WriteString(divider)
	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
