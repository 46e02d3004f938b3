package particle

import "fmt"

// ValidationResult is the outcome of Validate. Errors always holds every
// defect found, never just the first one.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate walks the whole document and reports every structural defect in
// one pass. It never panics and never stops at the first failure; both the
// import flow and the apply-to-runtime gate want the complete list at once.
func Validate(cfg *EditorConfig) ValidationResult {
	if cfg == nil {
		return ValidationResult{Errors: []string{"missing config"}}
	}

	var errs []string
	if cfg.System == nil {
		errs = append(errs, "missing system configuration")
	} else if cfg.System.MaxParticles < 1 || cfg.System.MaxParticles > 10000 {
		errs = append(errs, "system.maxParticles must be between 1 and 10000")
	}

	// An empty emitter list is a legitimate, if inert, document.
	for i := range cfg.Emitters {
		errs = append(errs, validateEmitter(i, &cfg.Emitters[i])...)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateEmitter(i int, e *EmitterConfig) []string {
	prefix := fmt.Sprintf("Emitter %d: ", i)
	var errs []string

	if e.Type == "" {
		errs = append(errs, prefix+"missing type")
	}
	if e.Position == nil {
		errs = append(errs, prefix+"position must have numeric x and y")
	}
	if e.Type.UsesEmissionRate() {
		if e.EmissionRate == nil || *e.EmissionRate < 0 {
			errs = append(errs, prefix+"emissionRate must be a non-negative number")
		}
	}
	if e.Type == EmitterBurst {
		if e.BurstCount == nil || *e.BurstCount < 1 {
			errs = append(errs, prefix+"burstCount must be a number >= 1")
		}
	}

	if e.Particle == nil {
		errs = append(errs, prefix+"missing particle configuration")
		return errs
	}
	if e.Particle.Type == "" {
		errs = append(errs, prefix+"particle is missing type")
	}
	// A fixed lifetime of 0 is rejected exactly like a missing one. The
	// prior implementation used a truthiness check; callers and tests pin
	// this, so it stays.
	if e.Particle.Lifetime == nil || (!e.Particle.Lifetime.IsRange && e.Particle.Lifetime.Min == 0) {
		errs = append(errs, prefix+"particle is missing lifetime")
	}
	for j := range e.Particle.Behaviors {
		errs = append(errs, validateBehavior(i, j, &e.Particle.Behaviors[j])...)
	}
	return errs
}

// validateBehavior enforces each behavior variant's required fields.
// The switch is exhaustive over BehaviorTypes.
func validateBehavior(i, j int, b *BehaviorConfig) []string {
	prefix := fmt.Sprintf("Emitter %d, behavior %d: ", i, j)
	var errs []string

	switch b.Type {
	case "":
		errs = append(errs, prefix+"missing type")
	case BehaviorGravity:
		if b.Force == nil {
			errs = append(errs, prefix+"gravity requires force")
		}
	case BehaviorDrag:
		if b.Coefficient == nil {
			errs = append(errs, prefix+"drag requires coefficient")
		}
	case BehaviorBounds:
		if !isBoundsMode(b.Mode) {
			errs = append(errs, prefix+"bounds mode must be one of wrap, bounce, die, clamp")
		}
	case BehaviorKeyframe:
		if len(b.Keyframes) < 2 {
			errs = append(errs, prefix+"keyframe requires at least 2 keyframes")
		}
	case BehaviorVelocityStretch:
		if b.MinStretch == nil || b.MaxStretch == nil || b.SpeedRange == nil {
			errs = append(errs, prefix+"velocityStretch requires minStretch, maxStretch and speedRange")
		}
	case BehaviorAttractor, BehaviorRepeller:
		if b.Target == nil {
			errs = append(errs, prefix+string(b.Type)+" requires target")
		}
	case BehaviorFade, BehaviorScale, BehaviorRotation, BehaviorColor,
		BehaviorTurbulence, BehaviorFlicker:
		// no required fields beyond the type tag
	default:
		errs = append(errs, prefix+fmt.Sprintf("unknown behavior type %q", b.Type))
	}
	return errs
}

func isBoundsMode(mode string) bool {
	for _, m := range BoundsModes {
		if mode == m {
			return true
		}
	}
	return false
}
