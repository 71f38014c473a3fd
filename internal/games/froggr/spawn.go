package froggr

// advance runs one tick of a lane's regeneration timer and spawns when it
// passes the threshold. Lanes with nothing to spawn keep their timer at zero.
func (e *Engine) advance(l *Lane) {
	if !l.Spawns() {
		return
	}

	l.Elapsed++
	if l.Elapsed <= l.Threshold {
		return
	}
	l.Elapsed = 0
	e.spawn(*l)
}

// spawn places a new object with its leading edge at the field boundary it
// enters from.
func (e *Engine) spawn(l Lane) {
	obj := Object{
		Y:         l.Y,
		Length:    l.Length,
		Direction: l.Direction,
		Kind:      l.Kind,
	}
	if l.Direction == DirLeft {
		obj.X = e.grid.Width
	} else {
		obj.X = -l.Length * e.grid.Cell
	}
	e.add(obj)
}

// add appends an object to the collection matching its class.
func (e *Engine) add(obj Object) {
	switch obj.Kind.Class() {
	case ClassVehicle:
		e.vehicles = append(e.vehicles, obj)
	case ClassPlatform:
		e.platforms = append(e.platforms, obj)
	}
}

// move shifts every live object by one step and flags those that have
// fully left the field on the far side.
func (e *Engine) move() {
	shift(e.vehicles, e.grid)
	shift(e.platforms, e.grid)
}

func shift(objs []Object, g Grid) {
	for i := range objs {
		o := &objs[i]
		if o.Removed {
			continue
		}
		o.DX = int(o.Direction) * g.Step
		o.X += o.DX

		switch o.Direction {
		case DirLeft:
			o.Removed = o.X+o.Length*g.Cell <= 0
		case DirRight:
			o.Removed = o.X >= g.Width
		}
	}
}

// compact drops removed objects, keeping creation order.
func (e *Engine) compact() {
	e.vehicles = compactObjects(e.vehicles)
	e.platforms = compactObjects(e.platforms)
}

func compactObjects(objs []Object) []Object {
	kept := objs[:0]
	for _, o := range objs {
		if !o.Removed {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(objs); i++ {
		objs[i] = Object{}
	}
	return kept
}
