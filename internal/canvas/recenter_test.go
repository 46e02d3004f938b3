package canvas

import (
	"reflect"
	"testing"

	"github.com/decker502/particlestudio/internal/particle"
)

func floatPtr(v float64) *float64 { return &v }

func sameSlice(a, b []particle.EmitterConfig) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer() && len(a) == len(b)
}

// TestRecenter_Identity returns the same slice reference when the canvas
// centre does not move or there is nothing to shift, so callers can skip
// redundant downstream updates.
func TestRecenter_Identity(t *testing.T) {
	emitters := []particle.EmitterConfig{
		{Type: particle.EmitterPoint, Position: &particle.Vec2{X: 400, Y: 300}},
	}
	out := Recenter(emitters, 800, 600, 800, 600)
	if !sameSlice(emitters, out) {
		t.Error("expected the same slice reference for an unchanged centre")
	}

	empty := []particle.EmitterConfig{}
	out = Recenter(empty, 800, 600, 1000, 800)
	if !sameSlice(empty, out) {
		t.Error("expected the same slice reference for an empty input")
	}
}

// TestRecenter_PointShift moves a centred emitter to the new centre.
func TestRecenter_PointShift(t *testing.T) {
	emitters := []particle.EmitterConfig{
		{Type: particle.EmitterPoint, Position: &particle.Vec2{X: 400, Y: 300}},
	}
	out := Recenter(emitters, 800, 600, 1000, 800)
	if got := *out[0].Position; got != (particle.Vec2{X: 500, Y: 400}) {
		t.Errorf("expected position (500,400), got (%g,%g)", got.X, got.Y)
	}
}

// TestRecenter_OffCenterPreserved keeps the offset from centre intact.
func TestRecenter_OffCenterPreserved(t *testing.T) {
	emitters := []particle.EmitterConfig{
		{Type: particle.EmitterPoint, Position: &particle.Vec2{X: 500, Y: 300}},
	}
	out := Recenter(emitters, 800, 600, 1000, 800)
	if got := *out[0].Position; got != (particle.Vec2{X: 600, Y: 400}) {
		t.Errorf("expected position (600,400), got (%g,%g)", got.X, got.Y)
	}
}

// TestRecenter_TypeSpecificFields shifts line/path absolute coordinates and
// leaves relative or magnitude fields untouched.
func TestRecenter_TypeSpecificFields(t *testing.T) {
	emitters := []particle.EmitterConfig{
		{
			Type:     particle.EmitterLine,
			Position: &particle.Vec2{X: 400, Y: 300},
			Start:    &particle.Vec2{X: 300, Y: 300},
			End:      &particle.Vec2{X: 500, Y: 300},
		},
		{
			Type:     particle.EmitterPolygon,
			Position: &particle.Vec2{X: 250, Y: 250},
			Vertices: []particle.Vec2{{X: -10, Y: -10}, {X: 10, Y: 12}},
		},
		{
			Type:     particle.EmitterCircle,
			Position: &particle.Vec2{X: 200, Y: 200},
			Radius:   floatPtr(50),
		},
		{
			Type:     particle.EmitterArea,
			Position: &particle.Vec2{X: 100, Y: 100},
			Width:    floatPtr(320),
			Height:   floatPtr(240),
		},
		{
			Type:     particle.EmitterPath,
			Position: &particle.Vec2{X: 0, Y: 0},
			Path:     []particle.Vec2{{X: 100, Y: 100}, {X: 200, Y: 50}},
			Points:   []particle.Vec2{{X: 1, Y: 2}},
		},
	}
	out := Recenter(emitters, 800, 600, 1000, 800)

	line := out[0]
	if *line.Start != (particle.Vec2{X: 400, Y: 400}) || *line.End != (particle.Vec2{X: 600, Y: 400}) {
		t.Errorf("line start/end not shifted: %+v %+v", *line.Start, *line.End)
	}

	polygon := out[1]
	if !reflect.DeepEqual(polygon.Vertices, emitters[1].Vertices) {
		t.Errorf("polygon vertices must not shift, got %+v", polygon.Vertices)
	}
	if *polygon.Position != (particle.Vec2{X: 350, Y: 350}) {
		t.Errorf("polygon position not shifted: %+v", *polygon.Position)
	}

	if *out[2].Radius != 50 {
		t.Errorf("circle radius must not change, got %g", *out[2].Radius)
	}
	if *out[3].Width != 320 || *out[3].Height != 240 {
		t.Errorf("area dimensions must not change, got %g x %g", *out[3].Width, *out[3].Height)
	}

	path := out[4]
	wantPath := []particle.Vec2{{X: 200, Y: 200}, {X: 300, Y: 150}}
	if !reflect.DeepEqual(path.Path, wantPath) {
		t.Errorf("path points not shifted: %+v", path.Path)
	}
	if !reflect.DeepEqual(path.Points, []particle.Vec2{{X: 101, Y: 102}}) {
		t.Errorf("points not shifted: %+v", path.Points)
	}
}

// TestRecenter_MissingLineEnds tolerates absent start/end fields.
func TestRecenter_MissingLineEnds(t *testing.T) {
	emitters := []particle.EmitterConfig{
		{Type: particle.EmitterLine, Position: &particle.Vec2{X: 10, Y: 10}},
	}
	out := Recenter(emitters, 800, 600, 1000, 800)
	if out[0].Start != nil || out[0].End != nil {
		t.Errorf("absent fields must stay absent, got %+v", out[0])
	}
}

// TestRecenter_NoMutation verifies the inputs, including nested coordinate
// objects, are untouched.
func TestRecenter_NoMutation(t *testing.T) {
	pos := &particle.Vec2{X: 400, Y: 300}
	start := &particle.Vec2{X: 300, Y: 300}
	path := []particle.Vec2{{X: 100, Y: 100}}
	emitters := []particle.EmitterConfig{
		{Type: particle.EmitterLine, Position: pos, Start: start},
		{Type: particle.EmitterPath, Position: &particle.Vec2{X: 1, Y: 1}, Path: path},
	}

	out := Recenter(emitters, 800, 600, 1000, 800)
	if sameSlice(emitters, out) {
		t.Fatal("expected a fresh slice when the centre moves")
	}
	if *pos != (particle.Vec2{X: 400, Y: 300}) {
		t.Errorf("input position mutated: %+v", *pos)
	}
	if *start != (particle.Vec2{X: 300, Y: 300}) {
		t.Errorf("input line start mutated: %+v", *start)
	}
	if path[0] != (particle.Vec2{X: 100, Y: 100}) {
		t.Errorf("input path mutated: %+v", path[0])
	}
	if out[0].Position == pos || out[0].Start == start {
		t.Error("shifted sub-objects must be fresh copies")
	}
}
