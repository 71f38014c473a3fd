package core

import "strings"

// Screen is a fixed-size grid of colored character cells. Games draw into
// it; the platform layer styles and prints it. Writes outside the grid are
// dropped, reads outside it return a blank.
type Screen struct {
	w, h  int
	cells []Cell // row-major, len w*h
}

func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// Resize changes the grid size. The overlapping top-left part is kept and
// new cells are blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.w && height == s.h {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	keepW, keepH := min(s.w, width), min(s.h, height)
	for y := range keepH {
		copy(cells[y*width:y*width+keepW], s.cells[y*s.w:y*s.w+keepW])
	}
	s.w, s.h, s.cells = width, height, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.w+x]
}

// DrawText writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text on row y, centered by rune count.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.w-len([]rune(text)))/2, y, text)
}

// DrawRect fills r with an uncolored rune; overlays use it to blank
// their background.
func (s *Screen) DrawRect(r Rect, fill rune) {
	s.FillRect(r, fill, ColorDefault)
}

func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox outlines r with light box-drawing runes.
func (s *Screen) DrawBox(r Rect) {
	x0, y0, x1, y1 := r.X, r.Y, r.Right()-1, r.Bottom()-1
	for x := x0 + 1; x < x1; x++ {
		s.Set(x, y0, '─')
		s.Set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		s.Set(x0, y, '│')
		s.Set(x1, y, '│')
	}
	s.Set(x0, y0, '┌')
	s.Set(x1, y0, '┐')
	s.Set(x0, y1, '└')
	s.Set(x1, y1, '┘')
}

// Row returns row y as plain text, or blanks when y is off the grid.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String is the whole grid as plain text, rows joined by newlines.
// Screenshots and tests use it.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
