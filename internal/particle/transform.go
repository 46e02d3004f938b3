package particle

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError reports that the config text is not syntactically valid YAML.
// It carries the underlying parser diagnostic so the editor can surface it.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid particle config text: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RejectedEmitter is an emitter record dropped during import because it
// failed the minimal shape check or could not be decoded at all.
type RejectedEmitter struct {
	// Index is the record's position in the original emitters sequence.
	Index int `json:"index"`

	// Reason is a human-readable description of the defect.
	Reason string `json:"reason"`

	// Raw is the record re-rendered as YAML, for diagnostics.
	Raw string `json:"raw,omitempty"`
}

// ImportResult is the full outcome of an import: the filtered config plus
// the records that were dropped on the way in.
type ImportResult struct {
	Config   *EditorConfig     `json:"config"`
	Rejected []RejectedEmitter `json:"rejected,omitempty"`
}

// ToText serializes the config as a YAML document with two top-level keys,
// system and emitters. Emitter order and every present field are preserved
// verbatim; output uses stable block formatting with no anchors or aliases,
// which keeps exports diff-friendly.
func ToText(cfg *EditorConfig) (string, error) {
	out := *cfg
	if out.Emitters == nil {
		// keep the emitters key a sequence even for an empty document
		out.Emitters = []EmitterConfig{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return "", fmt.Errorf("failed to encode particle config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode particle config: %w", err)
	}
	return buf.String(), nil
}

// FromText parses a YAML config document into the editor document model.
//
// A syntax error is fatal and returned as a *ParseError. Anything else is
// tolerated: system defaults are substituted field by field, a missing or
// malformed emitters sequence becomes empty, and individually malformed
// emitter records are dropped silently. Malformed document syntax is
// unrecoverable; malformed individual records are not, and tolerating them
// permits partial recovery of hand-edited files.
//
// Use Import to also see which records were dropped and why.
func FromText(text string) (*EditorConfig, error) {
	res, err := Import(text)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// rawDocument defers emitter and system decoding so one malformed record
// cannot fail the whole document.
type rawDocument struct {
	System   yaml.Node `yaml:"system"`
	Emitters yaml.Node `yaml:"emitters"`
}

// Import parses a YAML config document and reports both the accepted config
// and the rejected emitter records. FromText is Import minus the rejects.
func Import(text string) (*ImportResult, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, &ParseError{Err: err}
	}

	// A non-mapping document root is a shape defect, not a syntax error;
	// it degrades to the default document like any other missing field.
	var doc rawDocument
	_ = root.Decode(&doc)

	cfg := &EditorConfig{
		System:   decodeSystem(&doc.System),
		Emitters: []EmitterConfig{},
	}
	res := &ImportResult{Config: cfg}

	if doc.Emitters.Kind != yaml.SequenceNode {
		return res, nil
	}
	for i, node := range doc.Emitters.Content {
		var e EmitterConfig
		if err := node.Decode(&e); err != nil {
			res.reject(i, node, fmt.Sprintf("undecodable emitter record: %v", err))
			continue
		}
		var raw rawEmitter
		_ = node.Decode(&raw)
		if reason := shapeDefect(&e, &raw); reason != "" {
			res.reject(i, node, reason)
			continue
		}
		cfg.Emitters = append(cfg.Emitters, e)
	}
	return res, nil
}

func (r *ImportResult) reject(index int, node *yaml.Node, reason string) {
	r.Rejected = append(r.Rejected, RejectedEmitter{
		Index:  index,
		Reason: reason,
		Raw:    renderNode(node),
	})
}

// decodeSystem decodes the system mapping field by field, substituting the
// defaults (maxParticles 1000, autoStart true) for anything absent or of the
// wrong kind. It never fails.
func decodeSystem(node *yaml.Node) *SystemConfig {
	sys := &SystemConfig{MaxParticles: DefaultMaxParticles, AutoStart: true}
	if node.Kind != yaml.MappingNode {
		return sys
	}

	var fields struct {
		MaxParticles yaml.Node `yaml:"maxParticles"`
		AutoStart    yaml.Node `yaml:"autoStart"`
	}
	if err := node.Decode(&fields); err != nil {
		return sys
	}
	if fields.MaxParticles.Kind == yaml.ScalarNode {
		var mp float64
		if err := fields.MaxParticles.Decode(&mp); err == nil {
			sys.MaxParticles = int(mp)
		}
	}
	if fields.AutoStart.Kind == yaml.ScalarNode {
		var auto bool
		if err := fields.AutoStart.Decode(&auto); err == nil {
			sys.AutoStart = auto
		}
	}
	return sys
}

// rawEmitter retains the original nodes of the fields whose shape the typed
// decode is too lenient about: a struct decode zero-fills absent position
// axes and coerces a numeric type scalar to string.
type rawEmitter struct {
	Type     yaml.Node `yaml:"type"`
	Position yaml.Node `yaml:"position"`
}

// shapeDefect is the minimal shape check applied to each decoded emitter
// record. It returns an empty string when the record is acceptable.
//
// Deeper rules (variant-specific required fields, value ranges) belong to
// Validate; this filter only guards the fields without which the editor
// cannot place the emitter at all.
func shapeDefect(e *EmitterConfig, raw *rawEmitter) string {
	if e.Type == "" || !isStringNode(&raw.Type) {
		return "missing type"
	}
	if e.Position == nil || !hasNumericAxes(&raw.Position) {
		return "missing or non-numeric position"
	}
	if e.Particle == nil || e.Particle.Type == "" {
		return "missing particle type"
	}
	if e.Type.UsesEmissionRate() && e.EmissionRate == nil {
		return "missing emissionRate"
	}
	return ""
}

func isStringNode(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!str"
}

// hasNumericAxes reports whether node is a mapping with numeric x and y.
func hasNumericAxes(node *yaml.Node) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	var axes struct {
		X yaml.Node `yaml:"x"`
		Y yaml.Node `yaml:"y"`
	}
	if err := node.Decode(&axes); err != nil {
		return false
	}
	return isNumberNode(&axes.X) && isNumberNode(&axes.Y)
}

func isNumberNode(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode {
		return false
	}
	var f float64
	return n.Decode(&f) == nil
}

func renderNode(node *yaml.Node) string {
	b, err := yaml.Marshal(node)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(string(b), "\n")
}
