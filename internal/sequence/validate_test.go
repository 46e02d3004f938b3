package sequence

import (
	"strings"
	"testing"
)

// TestValidateSequence_Clean reports a complete sequence as valid with no
// warnings.
func TestValidateSequence_Clean(t *testing.T) {
	info := Detect(named("coin_000.png", "coin_001.png", "coin_002.png"))
	v := ValidateSequence(info)
	if !v.Valid {
		t.Errorf("expected valid, got warnings %v", v.Warnings)
	}
	if len(v.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", v.Warnings)
	}
}

// TestValidateSequence_GapsWarnButDontInvalidate verifies that gaps alone
// never invalidate a sequence; an animation can simply skip frames.
func TestValidateSequence_GapsWarnButDontInvalidate(t *testing.T) {
	info := Detect(named("frame_00.png", "frame_01.png", "frame_03.png", "frame_04.png"))
	if info == nil {
		t.Fatal("expected a sequence")
	}
	v := ValidateSequence(info)
	if !v.Valid {
		t.Errorf("gaps alone must not invalidate, got warnings %v", v.Warnings)
	}
	if len(v.Warnings) != 1 || !strings.Contains(v.Warnings[0], "Missing frames") {
		t.Errorf("expected only a 'Missing frames' warning, got %v", v.Warnings)
	}
	if !strings.Contains(v.Warnings[0], "2") {
		t.Errorf("expected the missing frame number listed, got %v", v.Warnings)
	}
}

// TestValidateSequence_Shortfall marks a sequence invalid when it holds
// fewer files than the frame range implies even after discounting gaps,
// which points at duplicated or miscounted frames rather than absent ones.
func TestValidateSequence_Shortfall(t *testing.T) {
	// frames 0-4 with a known gap at 2 account for 4 files; only 3 present
	info := &SequenceInfo{
		BaseName:   "frame",
		StartFrame: 0,
		EndFrame:   4,
		Gaps:       []int{2},
		Files:      named("frame_00.png", "frame_01.png", "frame_04.png"),
	}
	v := ValidateSequence(info)
	if v.Valid {
		t.Error("expected invalid: 3 files cannot cover 4 accounted frames")
	}
	found := false
	for _, w := range v.Warnings {
		if strings.Contains(w, "Expected 4 frames, found 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an 'Expected 4 frames, found 3' warning, got %v", v.Warnings)
	}
}

// TestValidateSequence_TooFewFiles warns about degenerate sequences.
func TestValidateSequence_TooFewFiles(t *testing.T) {
	info := &SequenceInfo{BaseName: "x", StartFrame: 5, EndFrame: 5, Files: named("x_5.png")}
	v := ValidateSequence(info)
	found := false
	for _, w := range v.Warnings {
		if strings.Contains(w, "fewer than 2") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a fewer-than-2-frames warning, got %v", v.Warnings)
	}
}

// TestValidateSequence_Nil never panics.
func TestValidateSequence_Nil(t *testing.T) {
	v := ValidateSequence(nil)
	if v.Valid {
		t.Error("nil input is not a valid sequence")
	}
}
