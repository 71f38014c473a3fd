package core

import (
	"strings"
	"testing"
)

func grid(rows ...string) string {
	return strings.Join(rows, "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got, want := s.String(), grid("    ", "    "); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "text clipped at the right edge",
			draw: func(s *Screen) { s.DrawText(4, 0, "frog") },
			want: grid("    fr", "      ", "      "),
		},
		{
			name: "text starting left of the grid",
			draw: func(s *Screen) { s.DrawText(-2, 1, "▬▬log") },
			want: grid("      ", "log   ", "      "),
		},
		{
			name: "centered by runes",
			draw: func(s *Screen) { s.DrawTextCentered(2, "ßü") },
			want: grid("      ", "      ", "  ßü  "),
		},
		{
			name: "set outside is dropped",
			draw: func(s *Screen) {
				s.Set(-1, 0, 'x')
				s.Set(6, 0, 'x')
				s.Set(0, 3, 'x')
				s.Set(5, 2, '@')
			},
			want: grid("      ", "      ", "     @"),
		},
		{
			name: "rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 5), '~') },
			want: grid("      ", " ~~~  ", " ~~~  "),
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3)) },
			want: grid("┌──┐  ", "│  │  ", "└──┘  "),
		},
		{
			name: "clear",
			draw: func(s *Screen) {
				s.DrawText(0, 0, "splash")
				s.Clear()
			},
			want: grid("      ", "      ", "      "),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 3)
			tt.draw(s)
			if got := s.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawTextColored(0, 0, "car", ColorBrightRed)
	s.FillRect(NewRect(1, 1, 3, 1), '▓', ColorBrown)

	for x := range 3 {
		if c := s.GetCell(x, 0); c.Color != ColorBrightRed {
			t.Errorf("cell (%d,0) color = %d, want bright red", x, c.Color)
		}
		if c := s.GetCell(x+1, 1); c.Rune != '▓' || c.Color != ColorBrown {
			t.Errorf("cell (%d,1) = %+v, want brown log", x+1, c)
		}
	}
	if c := s.GetCell(0, 1); c != blankCell {
		t.Errorf("untouched cell = %+v", c)
	}
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("outside cell = %+v, want blank", c)
	}

	s.Set(0, 0, 'C')
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Error("Set should reset the color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got, want := s.String(), grid("ab", "ef", "  "); got != want {
		t.Errorf("after shrink width: %q, want %q", got, want)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after second resize: %q", got)
	}

	s.Resize(-1, 5)
	if s.Width() != 0 || s.Height() != 5 {
		t.Errorf("negative width should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(1, 1, "hop")

	if got := s.Row(1); got != " hop " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(7); got != "     " {
		t.Errorf("Row(7) = %q, want blanks", got)
	}
}
