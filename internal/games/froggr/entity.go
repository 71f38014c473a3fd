package froggr

import (
	"github.com/vovakirdan/tui-froggr/internal/core"
)

// Kind identifies what a moving object is.
type Kind int

const (
	KindNone Kind = iota
	KindCar
	KindTruck
	KindLog
	KindTurtle
	KindLily
)

// Class separates hazards from things the actor can ride.
type Class int

const (
	ClassNone Class = iota
	ClassVehicle
	ClassPlatform
)

type kindInfo struct {
	name  string
	class Class
	glyph rune
	color core.Color
}

// kinds holds everything that differs between kinds of moving objects.
var kinds = [...]kindInfo{
	KindNone:   {name: "none", class: ClassNone, glyph: ' ', color: core.ColorDefault},
	KindCar:    {name: "car", class: ClassVehicle, glyph: '▆', color: core.ColorBrightRed},
	KindTruck:  {name: "truck", class: ClassVehicle, glyph: '█', color: core.ColorBrightYellow},
	KindLog:    {name: "log", class: ClassPlatform, glyph: '▬', color: core.ColorBrown},
	KindTurtle: {name: "turtle", class: ClassPlatform, glyph: '◉', color: core.ColorGreen},
	KindLily:   {name: "lily", class: ClassPlatform, glyph: '✿', color: core.ColorBrightGreen},
}

func parseKind(s string) Kind {
	for k, info := range kinds {
		if info.name == s && s != "none" {
			return Kind(k)
		}
	}
	return KindNone
}

func (k Kind) info() kindInfo {
	if k < 0 || int(k) >= len(kinds) {
		return kinds[KindNone]
	}
	return kinds[k]
}

func (k Kind) String() string    { return k.info().name }
func (k Kind) Class() Class      { return k.info().class }
func (k Kind) Glyph() rune       { return k.info().glyph }
func (k Kind) Color() core.Color { return k.info().color }

// Object is a vehicle or a platform travelling along its lane.
type Object struct {
	X, Y      int
	Length    int // In cells
	Direction Direction
	Kind      Kind
	Removed   bool
	DX        int // Displacement applied by the mover this tick
}

// Span returns the area the object currently occupies.
func (o Object) Span(cell int) core.Rect {
	return core.NewRect(o.X, o.Y, o.Length*cell, cell)
}

// PrevSpan returns the area the object occupied before this tick's move.
func (o Object) PrevSpan(cell int) core.Rect {
	return core.NewRect(o.X-o.DX, o.Y, o.Length*cell, cell)
}

// Swept returns everything the object covered while moving this tick.
func (o Object) Swept(cell int) core.Rect {
	return o.Span(cell).Union(o.PrevSpan(cell))
}

// WinZone is a goal slot on the top row. Each slot can be filled once.
type WinZone struct {
	X, Y     int
	Consumed bool
}

// Actor is the player-controlled frog.
type Actor struct {
	X, Y  int
	Lives int
	Alive bool
}

// Box returns the single cell the actor occupies.
func (a Actor) Box(cell int) core.Rect {
	return core.NewRect(a.X, a.Y, cell, cell)
}
