// Package particle provides the document model, serialization and validation
// for particle effect configurations authored in the studio editor.
//
// The document model round-trips through a YAML interchange format consumed
// by the particle rendering runtime. Emitters and behaviors are tagged unions
// narrowed by a `type` discriminator; variant-specific fields are pointer
// typed so that field presence survives an export/import cycle unchanged.
package particle

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultMaxParticles is substituted during import when system.maxParticles
// is absent or not a number.
const DefaultMaxParticles = 1000

// EmitterType discriminates the emitter variants.
type EmitterType string

// Emitter variants. The first six are geometric shapes; burst, timed and
// triggered are temporal variants (发射时机由时间或触发事件决定).
const (
	EmitterPoint     EmitterType = "point"
	EmitterArea      EmitterType = "area"
	EmitterCircle    EmitterType = "circle"
	EmitterLine      EmitterType = "line"
	EmitterPolygon   EmitterType = "polygon"
	EmitterPath      EmitterType = "path"
	EmitterBurst     EmitterType = "burst"
	EmitterTimed     EmitterType = "timed"
	EmitterTriggered EmitterType = "triggered"
)

// EmitterTypes lists every known emitter variant in declaration order.
var EmitterTypes = []EmitterType{
	EmitterPoint, EmitterArea, EmitterCircle, EmitterLine, EmitterPolygon,
	EmitterPath, EmitterBurst, EmitterTimed, EmitterTriggered,
}

// UsesEmissionRate reports whether the variant emits continuously.
// Burst and triggered emitters are driven by burst counts and external
// triggers instead; a continuous rate is meaningless for them.
func (t EmitterType) UsesEmissionRate() bool {
	return t != EmitterBurst && t != EmitterTriggered
}

// BehaviorType discriminates the per-particle behavior variants.
type BehaviorType string

// Behavior variants (粒子生命周期内的修改器).
const (
	BehaviorGravity         BehaviorType = "gravity"
	BehaviorDrag            BehaviorType = "drag"
	BehaviorFade            BehaviorType = "fade"
	BehaviorScale           BehaviorType = "scale"
	BehaviorRotation        BehaviorType = "rotation"
	BehaviorColor           BehaviorType = "color"
	BehaviorAttractor       BehaviorType = "attractor"
	BehaviorRepeller        BehaviorType = "repeller"
	BehaviorTurbulence      BehaviorType = "turbulence"
	BehaviorBounds          BehaviorType = "bounds"
	BehaviorKeyframe        BehaviorType = "keyframe"
	BehaviorVelocityStretch BehaviorType = "velocityStretch"
	BehaviorFlicker         BehaviorType = "flicker"
)

// BehaviorTypes lists every known behavior variant in declaration order.
var BehaviorTypes = []BehaviorType{
	BehaviorGravity, BehaviorDrag, BehaviorFade, BehaviorScale,
	BehaviorRotation, BehaviorColor, BehaviorAttractor, BehaviorRepeller,
	BehaviorTurbulence, BehaviorBounds, BehaviorKeyframe,
	BehaviorVelocityStretch, BehaviorFlicker,
}

// BoundsModes are the accepted values for the bounds behavior's mode field.
var BoundsModes = []string{"wrap", "bounce", "die", "clamp"}

// EditorConfig is the root document the editor produces and consumes.
// Emitter order is meaningful: it is the layer order, and behavior execution
// grouping is per-emitter, never cross-emitter.
type EditorConfig struct {
	System   *SystemConfig   `yaml:"system" json:"system"`
	Emitters []EmitterConfig `yaml:"emitters" json:"emitters"`
}

// SystemConfig holds system-wide settings.
type SystemConfig struct {
	// MaxParticles caps the particle count across all emitters.
	// Valid range is [1, 10000]; out-of-range values are a validation
	// error, never clamped silently.
	MaxParticles int `yaml:"maxParticles" json:"maxParticles"`

	// AutoStart starts the effect as soon as the runtime loads it.
	AutoStart bool `yaml:"autoStart" json:"autoStart"`
}

// Vec2 is a 2D coordinate or vector.
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// EmitterConfig is a single emitter record, narrowed by Type.
//
// Optional and variant-specific fields are pointers with omitempty tags so
// the exported document contains exactly the fields the author set. Which
// fields a variant requires is enforced by Validate, not by the type system.
//
// Coordinate semantics matter for canvas resizing:
//   - position is always absolute canvas space
//   - line start/end and path path/points are absolute canvas space too
//   - polygon vertices are relative to position
//   - area width/height and circle radii are magnitudes, not positions
type EmitterConfig struct {
	Type EmitterType `yaml:"type" json:"type"`

	// Name is an optional display label shown in the editor layer list.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Position is the emitter origin in canvas space. Required.
	Position *Vec2 `yaml:"position" json:"position"`

	// EmissionRate is particles per second. Required for every variant
	// except burst and triggered.
	EmissionRate *float64 `yaml:"emissionRate,omitempty" json:"emissionRate,omitempty"`

	// MaxParticles optionally caps this emitter below the system cap.
	MaxParticles *int `yaml:"maxParticles,omitempty" json:"maxParticles,omitempty"`

	// Velocity is the initial particle velocity, per axis.
	Velocity *VelocityConfig `yaml:"velocity,omitempty" json:"velocity,omitempty"`

	// Particle describes the particles this emitter spawns. Required.
	Particle *ParticleConfig `yaml:"particle" json:"particle"`

	// circle (radius 为权威几何量，以 position 为圆心)
	Radius      *float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
	InnerRadius *float64 `yaml:"innerRadius,omitempty" json:"innerRadius,omitempty"`
	EdgeEmit    *bool    `yaml:"edgeEmit,omitempty" json:"edgeEmit,omitempty"`

	// area (尺寸，不是坐标)
	Width  *float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty" json:"height,omitempty"`

	// line (start/end 为画布绝对坐标)
	Start        *Vec2  `yaml:"start,omitempty" json:"start,omitempty"`
	End          *Vec2  `yaml:"end,omitempty" json:"end,omitempty"`
	Distribution string `yaml:"distribution,omitempty" json:"distribution,omitempty"`

	// polygon (vertices 相对于 position)
	Vertices []Vec2 `yaml:"vertices,omitempty" json:"vertices,omitempty"`

	// path (path/points 为画布绝对坐标)
	Path      []Vec2   `yaml:"path,omitempty" json:"path,omitempty"`
	Points    []Vec2   `yaml:"points,omitempty" json:"points,omitempty"`
	PathType  string   `yaml:"pathType,omitempty" json:"pathType,omitempty"`
	AutoStart *bool    `yaml:"autoStart,omitempty" json:"autoStart,omitempty"`
	Loop      *bool    `yaml:"loop,omitempty" json:"loop,omitempty"`
	Speed     *float64 `yaml:"speed,omitempty" json:"speed,omitempty"`
	Duration  *float64 `yaml:"duration,omitempty" json:"duration,omitempty"`

	// burst
	BurstCount    *float64 `yaml:"burstCount,omitempty" json:"burstCount,omitempty"`
	BurstInterval *float64 `yaml:"burstInterval,omitempty" json:"burstInterval,omitempty"`
	BurstLimit    *int     `yaml:"burstLimit,omitempty" json:"burstLimit,omitempty"`
	InitialDelay  *float64 `yaml:"initialDelay,omitempty" json:"initialDelay,omitempty"`

	// timed
	EmitterLifetime *float64 `yaml:"emitterLifetime,omitempty" json:"emitterLifetime,omitempty"`
	FadeOut         *bool    `yaml:"fadeOut,omitempty" json:"fadeOut,omitempty"`

	// triggered
	ParticlesPerTrigger *int `yaml:"particlesPerTrigger,omitempty" json:"particlesPerTrigger,omitempty"`
}

// VelocityConfig is the initial particle velocity per axis. Either axis may
// be a fixed value or a {min,max} range sampled per particle.
type VelocityConfig struct {
	X Range `yaml:"x" json:"x"`
	Y Range `yaml:"y" json:"y"`
}

// ParticleConfig describes the particles an emitter spawns.
type ParticleConfig struct {
	// Type selects the particle renderer, e.g. "sprite" or "animated".
	Type string `yaml:"type" json:"type"`

	// Lifetime is the particle lifetime, fixed or a {min,max} range.
	Lifetime *Range `yaml:"lifetime" json:"lifetime"`

	// Behaviors are applied in ascending Priority order, not slice order.
	Behaviors []BehaviorConfig `yaml:"behaviors,omitempty" json:"behaviors,omitempty"`
}

// BehaviorConfig is a single behavior record, narrowed by Type.
type BehaviorConfig struct {
	Type BehaviorType `yaml:"type" json:"type"`

	// Priority orders behavior execution, ascending; lower runs first.
	// Optional on every variant, defaulted at point of use (不持久化默认值).
	Priority *int `yaml:"priority,omitempty" json:"priority,omitempty"`

	// gravity
	Force *Vec2 `yaml:"force,omitempty" json:"force,omitempty"`

	// drag
	Coefficient *float64 `yaml:"coefficient,omitempty" json:"coefficient,omitempty"`

	// fade / flicker
	StartAlpha *float64 `yaml:"startAlpha,omitempty" json:"startAlpha,omitempty"`
	EndAlpha   *float64 `yaml:"endAlpha,omitempty" json:"endAlpha,omitempty"`
	MinAlpha   *float64 `yaml:"minAlpha,omitempty" json:"minAlpha,omitempty"`
	Rate       *float64 `yaml:"rate,omitempty" json:"rate,omitempty"`

	// scale
	StartScale *float64 `yaml:"startScale,omitempty" json:"startScale,omitempty"`
	EndScale   *float64 `yaml:"endScale,omitempty" json:"endScale,omitempty"`

	// rotation
	AngularVelocity *Range `yaml:"angularVelocity,omitempty" json:"angularVelocity,omitempty"`

	// color
	StartColor string `yaml:"startColor,omitempty" json:"startColor,omitempty"`
	EndColor   string `yaml:"endColor,omitempty" json:"endColor,omitempty"`

	// attractor / repeller
	Target   *Vec2    `yaml:"target,omitempty" json:"target,omitempty"`
	Strength *float64 `yaml:"strength,omitempty" json:"strength,omitempty"`
	Radius   *float64 `yaml:"radius,omitempty" json:"radius,omitempty"`

	// turbulence
	Amplitude *Vec2    `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
	Frequency *float64 `yaml:"frequency,omitempty" json:"frequency,omitempty"`

	// bounds
	Mode          string   `yaml:"mode,omitempty" json:"mode,omitempty"`
	MinX          *float64 `yaml:"minX,omitempty" json:"minX,omitempty"`
	MaxX          *float64 `yaml:"maxX,omitempty" json:"maxX,omitempty"`
	MinY          *float64 `yaml:"minY,omitempty" json:"minY,omitempty"`
	MaxY          *float64 `yaml:"maxY,omitempty" json:"maxY,omitempty"`
	BounceDamping *float64 `yaml:"bounceDamping,omitempty" json:"bounceDamping,omitempty"`

	// keyframe
	Property  string     `yaml:"property,omitempty" json:"property,omitempty"`
	Keyframes []Keyframe `yaml:"keyframes,omitempty" json:"keyframes,omitempty"`

	// velocityStretch
	MinStretch *float64 `yaml:"minStretch,omitempty" json:"minStretch,omitempty"`
	MaxStretch *float64 `yaml:"maxStretch,omitempty" json:"maxStretch,omitempty"`
	SpeedRange *Range   `yaml:"speedRange,omitempty" json:"speedRange,omitempty"`
}

// Keyframe is a single entry of the keyframe behavior's animation curve.
type Keyframe struct {
	Time   float64 `yaml:"time" json:"time"`
	Value  float64 `yaml:"value" json:"value"`
	Easing string  `yaml:"easing,omitempty" json:"easing,omitempty"`
}

// Range is a value that is either a fixed scalar or a {min,max} range.
//
// It serializes as a bare scalar when fixed and as a {min,max} mapping when
// ranged, and restores to the same form on the way back in, so authored
// documents round-trip without spurious shape changes.
type Range struct {
	Min float64
	Max float64

	// IsRange distinguishes {min,max} from a fixed scalar. A fixed scalar
	// stores the value in both Min and Max.
	IsRange bool
}

// Fixed returns a fixed-scalar Range.
func Fixed(v float64) Range { return Range{Min: v, Max: v} }

// Between returns a {min,max} Range.
func Between(min, max float64) Range { return Range{Min: min, Max: max, IsRange: true} }

type rangeBounds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// UnmarshalYAML accepts either a scalar or a {min,max} mapping.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var v float64
	if err := value.Decode(&v); err == nil {
		*r = Fixed(v)
		return nil
	}
	var b rangeBounds
	if err := value.Decode(&b); err != nil {
		return fmt.Errorf("value must be a number or a {min, max} mapping: %w", err)
	}
	*r = Between(b.Min, b.Max)
	return nil
}

// MarshalYAML emits a scalar for fixed values and a {min,max} mapping for
// ranges.
func (r Range) MarshalYAML() (interface{}, error) {
	if !r.IsRange {
		return r.Min, nil
	}
	return rangeBounds{Min: r.Min, Max: r.Max}, nil
}

// UnmarshalJSON mirrors the YAML shapes for the HTTP surface.
func (r *Range) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*r = Fixed(v)
		return nil
	}
	var b rangeBounds
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("value must be a number or a {min, max} object: %w", err)
	}
	*r = Between(b.Min, b.Max)
	return nil
}

// MarshalJSON mirrors the YAML shapes for the HTTP surface.
func (r Range) MarshalJSON() ([]byte, error) {
	if !r.IsRange {
		return json.Marshal(r.Min)
	}
	return json.Marshal(rangeBounds{Min: r.Min, Max: r.Max})
}
