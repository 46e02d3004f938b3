// Package sequence groups uploaded files into numbered animation frame
// sequences by inspecting file names. It never reads file contents; actual
// I/O belongs to the upload surface.
package sequence

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// File is the metadata the detector works with.
type File struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// SequenceInfo describes one detected numbered frame sequence. It is
// ephemeral detector output, not part of the persisted document model.
type SequenceInfo struct {
	// BaseName is the shared prefix with any trailing underscore stripped.
	BaseName string `json:"baseName"`

	// Pattern is a display string of the form base{start-end}.ext with the
	// frame bounds zero-padded to Padding width.
	Pattern string `json:"pattern"`

	StartFrame int `json:"startFrame"`
	EndFrame   int `json:"endFrame"`

	// Padding is the dominant digit-string width among the matched files.
	Padding int `json:"padding"`

	// Gaps lists every missing frame number strictly between StartFrame
	// and EndFrame.
	Gaps []int `json:"gaps"`

	// Files is the matched file list, ordered by frame number ascending.
	Files []File `json:"files"`
}

// framePattern extracts (base, frame digits, extension) from a file name:
// an optional underscore-separated base, a trailing digit run, a dot and an
// extension, e.g. coin_007.png → ("coin_", "007", "png").
var framePattern = regexp.MustCompile(`^(.*?)(\d+)\.(\w+)$`)

type frameFile struct {
	file   File
	frame  int
	digits int
}

// Detect finds the most plausible numbered sequence in files, or returns nil
// when there is none.
//
// Candidates are grouped by (base, extension) and the largest group wins;
// among equally sized groups the first encountered wins, which keeps the
// result deterministic for mixed uploads. A group of fewer than two frames
// is not a sequence.
func Detect(files []File) *SequenceInfo {
	groups := make(map[string][]frameFile)
	var order []string
	for _, f := range files {
		m := framePattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		frame, err := strconv.Atoi(m[2])
		if err != nil {
			// digit run too long for a frame number
			continue
		}
		key := m[1] + "\x00" + m[3]
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], frameFile{file: f, frame: frame, digits: len(m[2])})
	}

	var bestKey string
	bestLen := 0
	for _, key := range order {
		if len(groups[key]) > bestLen {
			bestLen = len(groups[key])
			bestKey = key
		}
	}
	if bestLen < 2 {
		return nil
	}

	group := groups[bestKey]
	padding := dominantPadding(group)

	sort.SliceStable(group, func(a, b int) bool { return group[a].frame < group[b].frame })

	start := group[0].frame
	end := group[len(group)-1].frame
	present := make(map[int]bool, len(group))
	ordered := make([]File, len(group))
	for i, ff := range group {
		present[ff.frame] = true
		ordered[i] = ff.file
	}
	gaps := []int{}
	for n := start + 1; n < end; n++ {
		if !present[n] {
			gaps = append(gaps, n)
		}
	}

	base, ext, _ := strings.Cut(bestKey, "\x00")
	return &SequenceInfo{
		BaseName:   strings.TrimSuffix(base, "_"),
		Pattern:    fmt.Sprintf("%s{%0*d-%0*d}.%s", base, padding, start, padding, end, ext),
		StartFrame: start,
		EndFrame:   end,
		Padding:    padding,
		Gaps:       gaps,
		Files:      ordered,
	}
}

// dominantPadding returns the most frequent digit-string width in the group,
// breaking ties toward the width encountered first.
func dominantPadding(group []frameFile) int {
	counts := make(map[int]int)
	var widths []int
	for _, ff := range group {
		if _, ok := counts[ff.digits]; !ok {
			widths = append(widths, ff.digits)
		}
		counts[ff.digits]++
	}
	best := widths[0]
	for _, w := range widths[1:] {
		if counts[w] > counts[best] {
			best = w
		}
	}
	return best
}

// AutoDetect splits an upload into detected sequences and leftover
// individual files.
//
// Known limitation: at most one sequence is recognized per call — only the
// largest numbered group. A smaller competing sequence in the same upload
// falls through into the individual files.
func AutoDetect(files []File) (sequences []SequenceInfo, individual []File) {
	info := Detect(files)
	if info == nil {
		return nil, files
	}
	consumed := make(map[string]bool, len(info.Files))
	for _, f := range info.Files {
		consumed[f.Name] = true
	}
	individual = make([]File, 0, len(files)-len(info.Files))
	for _, f := range files {
		if !consumed[f.Name] {
			individual = append(individual, f)
		}
	}
	return []SequenceInfo{*info}, individual
}
