package core

import "testing"

// Boxes below use the 50 px field cell: a frog is one cell, a truck three.
func TestIntersects(t *testing.T) {
	frog := NewRect(200, 300, 50, 50)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same cell", NewRect(200, 300, 50, 50), true},
		{"truck covering the frog", NewRect(150, 300, 150, 50), true},
		{"one pixel into the cell", NewRect(249, 300, 50, 50), true},
		{"touching from the right", NewRect(250, 300, 150, 50), false},
		{"touching from the left", NewRect(50, 300, 150, 50), false},
		{"lane above", NewRect(200, 250, 50, 50), false},
		{"lane below", NewRect(200, 350, 50, 50), false},
		{"half a lane down", NewRect(200, 325, 50, 50), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frog.Intersects(tt.other); got != tt.want {
				t.Errorf("frog.Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(frog); got != tt.want {
				t.Errorf("reverse = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnionSweep(t *testing.T) {
	tests := []struct {
		name       string
		prev, cur  Rect
		want       Rect
		hitsCellAt int // x of a cell in the swept lane, -1 if none expected
	}{
		{
			name:       "car moving right over a cell",
			prev:       NewRect(100, 50, 50, 50),
			cur:        NewRect(160, 50, 50, 50),
			want:       NewRect(100, 50, 110, 50),
			hitsCellAt: 150,
		},
		{
			name:       "truck moving left",
			prev:       NewRect(300, 50, 150, 50),
			cur:        NewRect(240, 50, 150, 50),
			want:       NewRect(240, 50, 210, 50),
			hitsCellAt: 400,
		},
		{
			name:       "entering from off field",
			prev:       NewRect(-150, 50, 150, 50),
			cur:        NewRect(-140, 50, 150, 50),
			want:       NewRect(-150, 50, 160, 50),
			hitsCellAt: -1,
		},
		{
			name:       "standing still",
			prev:       NewRect(0, 50, 50, 50),
			cur:        NewRect(0, 50, 50, 50),
			want:       NewRect(0, 50, 50, 50),
			hitsCellAt: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.prev.Union(tt.cur)
			if got != tt.want {
				t.Fatalf("Union() = %+v, want %+v", got, tt.want)
			}
			if rev := tt.cur.Union(tt.prev); rev != got {
				t.Errorf("Union() is not symmetric: %+v vs %+v", rev, got)
			}
			if tt.hitsCellAt >= 0 && !got.Intersects(NewRect(tt.hitsCellAt, 50, 50, 50)) {
				t.Errorf("sweep should cover the cell at x=%d", tt.hitsCellAt)
			}
			if got.Right() != tt.want.X+tt.want.W || got.Bottom() != 100 {
				t.Errorf("edges = (%d, %d)", got.Right(), got.Bottom())
			}
		})
	}
}

func TestClampAbs(t *testing.T) {
	for _, tt := range []struct{ val, want int }{
		{-50, 0}, {0, 0}, {225, 225}, {450, 450}, {700, 450},
	} {
		if got := Clamp(tt.val, 0, 450); got != tt.want {
			t.Errorf("Clamp(%d, 0, 450) = %d, want %d", tt.val, got, tt.want)
		}
	}

	for _, tt := range []struct{ val, want int }{{15, 15}, {-15, 15}, {0, 0}} {
		if got := Abs(tt.val); got != tt.want {
			t.Errorf("Abs(%d) = %d, want %d", tt.val, got, tt.want)
		}
	}
}
