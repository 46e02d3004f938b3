package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// SequenceValidation is the outcome of ValidateSequence. Warnings are
// reported as data, never as errors; the caller decides whether any of them
// blocks the upload.
type SequenceValidation struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings"`
}

// ValidateSequence checks a detected sequence for completeness.
//
// Gaps produce a warning but never invalidate the sequence on their own —
// an animation can simply skip frames. The sequence is only marked invalid
// when it holds fewer files than the frame range implies after the known
// gaps are discounted, which points at duplicated or miscounted frames
// rather than merely absent ones.
func ValidateSequence(info *SequenceInfo) SequenceValidation {
	if info == nil {
		return SequenceValidation{Warnings: []string{"no sequence detected"}}
	}

	v := SequenceValidation{Valid: true, Warnings: []string{}}
	if len(info.Gaps) > 0 {
		v.Warnings = append(v.Warnings, "Missing frames: "+joinInts(info.Gaps))
	}
	expected := info.EndFrame - info.StartFrame + 1 - len(info.Gaps)
	if len(info.Files) < expected {
		v.Warnings = append(v.Warnings, fmt.Sprintf("Expected %d frames, found %d", expected, len(info.Files)))
		v.Valid = false
	}
	if len(info.Files) < 2 {
		v.Warnings = append(v.Warnings, "sequence has fewer than 2 frames")
	}
	return v
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
