// Package froggr implements the Froggr arcade simulation: an actor crossing
// a lane-based hazard field of vehicles, floating platforms and water to
// fill the goal zones on the top row.
//
// All positions are field pixels. The actor always sits on a cell boundary;
// vehicles and platforms travel a fixed step per tick that evenly divides
// (or is a multiple of) the cell size.
package froggr

import (
	"github.com/vovakirdan/tui-froggr/internal/config"
)

// Role is the purpose of a lane.
type Role int

const (
	RoleStart Role = iota
	RoleGrass
	RoleWater
	RoleRoad
	RoleGoal
)

var roleNames = map[string]Role{
	"start": RoleStart,
	"grass": RoleGrass,
	"water": RoleWater,
	"road":  RoleRoad,
	"goal":  RoleGoal,
}

// String returns the config name of the role.
func (r Role) String() string {
	for name, role := range roleNames {
		if role == r {
			return name
		}
	}
	return "unknown"
}

// Wet reports whether the actor must stand on a platform or a goal in this lane.
func (r Role) Wet() bool {
	return r == RoleWater || r == RoleGoal
}

// Direction is the horizontal travel direction of a lane. Its value is the
// sign applied to the step.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

func parseDirection(s string) Direction {
	if s == "left" {
		return DirLeft
	}
	return DirRight
}

// Grid is the field geometry.
type Grid struct {
	Width  int
	Height int
	Cell   int
	Step   int
}

func newGrid(f config.FroggrField) Grid {
	return Grid{Width: f.Width, Height: f.Height, Cell: f.CellSize, Step: f.Step}
}

// Cols returns the number of cells across the field.
func (g Grid) Cols() int {
	return g.Width / g.Cell
}

// Rows returns the number of cells down the field.
func (g Grid) Rows() int {
	return g.Height / g.Cell
}

// Row returns the lane index that contains y.
func (g Grid) Row(y int) int {
	return y / g.Cell
}

// Allowed reports whether an actor cell at (x, y) lies inside the field.
func (g Grid) Allowed(x, y int) bool {
	return x >= 0 && x <= g.Width-g.Cell && y >= 0 && y <= g.Height-g.Cell
}
