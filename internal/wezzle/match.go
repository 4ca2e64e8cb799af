package wezzle

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// minLine is the shortest run of equal colors that counts as a line.
const minLine = 3

// IndexSet is a set of board cell indices.
type IndexSet struct {
	m *intmap.Map[int, struct{}]
}

// NewIndexSet creates an empty set.
func NewIndexSet() *IndexSet {
	return &IndexSet{m: intmap.New[int, struct{}](16)}
}

// Add inserts i into the set.
func (s *IndexSet) Add(i int) {
	s.m.Put(i, struct{}{})
}

// Has reports whether i is in the set.
func (s *IndexSet) Has(i int) bool {
	return s.m.Has(i)
}

// Len returns the number of indices in the set.
func (s *IndexSet) Len() int {
	return s.m.Len()
}

// Clear empties the set.
func (s *IndexSet) Clear() {
	s.m.Clear()
}

// Sorted returns the indices in ascending order.
func (s *IndexSet) Sorted() []int {
	out := make([]int, 0, s.m.Len())
	s.m.ForEach(func(i int, _ struct{}) bool {
		out = append(out, i)
		return true
	})
	sort.Ints(out)
	return out
}

// FindXMatch adds every tile of a horizontal line to set and returns the
// number of lines found. A nil set only counts.
func (b *Board) FindXMatch(set *IndexSet) int {
	lines := 0
	for row := 0; row < b.rows; row++ {
		lines += b.scanRun(set, b.cols, func(k int) int { return b.Index(k, row) })
	}
	return lines
}

// FindYMatch adds every tile of a vertical line to set and returns the
// number of lines found. A nil set only counts.
func (b *Board) FindYMatch(set *IndexSet) int {
	lines := 0
	for col := 0; col < b.cols; col++ {
		lines += b.scanRun(set, b.rows, func(k int) int { return b.Index(col, k) })
	}
	return lines
}

// scanRun walks n cells addressed by at and records runs of equal colors.
func (b *Board) scanRun(set *IndexSet, n int, at func(int) int) int {
	lines := 0
	for k := 0; k < n; {
		t := b.cells[at(k)]
		if t == nil {
			k++
			continue
		}
		end := k + 1
		for end < n {
			u := b.cells[at(end)]
			if u == nil || u.Color != t.Color {
				break
			}
			end++
		}
		if end-k >= minLine {
			lines++
			if set != nil {
				for j := k; j < end; j++ {
					set.Add(at(j))
				}
			}
		}
		k = end
	}
	return lines
}
