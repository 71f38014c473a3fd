package froggr

// buttonDeltas is the cell offset of each directional button.
var buttonDeltas = [buttonCount][2]int{
	ButtonLeft:  {-1, 0},
	ButtonRight: {1, 0},
	ButtonUp:    {0, -1},
	ButtonDown:  {0, 1},
}

// control applies the pressed directions to the actor. Each accepted move is
// one cell and consumes its button; a move that would leave the field is
// ignored and the button stays raised.
func (e *Engine) control(in *Input) {
	if in == nil || !e.actor.Alive {
		return
	}

	pressed := in.snapshot()
	cell := e.grid.Cell
	for b := ButtonLeft; b < buttonCount; b++ {
		if !pressed[b] {
			continue
		}
		x := e.actor.X + buttonDeltas[b][0]*cell
		y := e.actor.Y + buttonDeltas[b][1]*cell
		if !e.grid.Allowed(x, y) {
			continue
		}

		e.actor.X, e.actor.Y = x, y
		if buttonDeltas[b][1] != 0 {
			e.carry = 0 // Carry belongs to the row being left
		}
		in.Release(b)
	}
}
