// Package canvas recomputes emitter coordinates when the editor viewport is
// resized, so that an authored layout stays visually centered.
package canvas

import "github.com/decker502/particlestudio/internal/particle"

// shiftFunc translates one absolute-coordinate field of an emitter copy.
type shiftFunc func(e *particle.EmitterConfig, dx, dy float64)

// absoluteCoordShifts maps each emitter variant to the shifts for its
// absolute-canvas-coordinate fields, beyond position (which always shifts).
// Polygon vertices are relative to position, and area/circle fields are
// magnitudes, so none of those appear here. Adding a new absolute field to
// a variant is a one-line edit to this table.
var absoluteCoordShifts = map[particle.EmitterType][]shiftFunc{
	particle.EmitterLine: {shiftStart, shiftEnd},
	particle.EmitterPath: {shiftPath, shiftPoints},
}

// Recenter translates every emitter so the layout follows the canvas centre
// from (oldW/2, oldH/2) to (newW/2, newH/2).
//
// When the centre does not move, or there are no emitters, the input slice
// is returned unchanged — same reference — so callers can skip redundant
// downstream updates. Otherwise the result is a fresh slice of fresh emitter
// values; the inputs, including their nested coordinate objects, are never
// mutated.
func Recenter(emitters []particle.EmitterConfig, oldW, oldH, newW, newH float64) []particle.EmitterConfig {
	dx := newW/2 - oldW/2
	dy := newH/2 - oldH/2
	if (dx == 0 && dy == 0) || len(emitters) == 0 {
		return emitters
	}

	out := make([]particle.EmitterConfig, len(emitters))
	for i, e := range emitters {
		if e.Position != nil {
			p := *e.Position
			p.X += dx
			p.Y += dy
			e.Position = &p
		}
		for _, shift := range absoluteCoordShifts[e.Type] {
			shift(&e, dx, dy)
		}
		out[i] = e
	}
	return out
}

func shiftStart(e *particle.EmitterConfig, dx, dy float64) {
	e.Start = shiftVec(e.Start, dx, dy)
}

func shiftEnd(e *particle.EmitterConfig, dx, dy float64) {
	e.End = shiftVec(e.End, dx, dy)
}

func shiftPath(e *particle.EmitterConfig, dx, dy float64) {
	e.Path = shiftVecs(e.Path, dx, dy)
}

func shiftPoints(e *particle.EmitterConfig, dx, dy float64) {
	e.Points = shiftVecs(e.Points, dx, dy)
}

func shiftVec(v *particle.Vec2, dx, dy float64) *particle.Vec2 {
	if v == nil {
		return nil
	}
	return &particle.Vec2{X: v.X + dx, Y: v.Y + dy}
}

func shiftVecs(vs []particle.Vec2, dx, dy float64) []particle.Vec2 {
	if vs == nil {
		return nil
	}
	out := make([]particle.Vec2, len(vs))
	for i, v := range vs {
		out[i] = particle.Vec2{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}
