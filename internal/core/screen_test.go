package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != '●' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red ●", cell)
	}

	// Out of bounds must be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0) != blankCell {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawTextColored(0, 1, "XXXX", ColorBlue)

	s.Clear()

	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("after Clear got %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'A', ColorGreen)
	s.SetColored(3, 3, 'B', ColorGreen)

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if got := s.GetCell(1, 1); got.Rune != 'A' || got.Color != ColorGreen {
		t.Errorf("cell (1,1) = %+v, expected green A", got)
	}

	s.Resize(5, 5)
	if s.Get(1, 1) != 'A' {
		t.Error("growing should keep existing content")
	}
	if s.Get(4, 4) != ' ' {
		t.Error("new area should be blank")
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "日a")

	if s.Get(0, 0) != '日' {
		t.Errorf("Get(0,0) = %q", s.Get(0, 0))
	}
	if s.Get(2, 0) != 'a' {
		t.Errorf("wide rune should take two columns, Get(2,0) = %q", s.Get(2, 0))
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorYellow)

	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should carry its color")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	want := strings.Join([]string{
		"┌──┐",
		"│  │",
		"└──┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("DrawBox got\n%s\nwant\n%s", got, want)
	}
}

func TestRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Error("default color should have no ANSI code")
	}
	if ColorRed.ANSI() == "" {
		t.Error("red should map to an ANSI code")
	}
}
