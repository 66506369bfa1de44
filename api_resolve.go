package nodes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ResolveRequest selects a target size for an input image. AspectRatio and
// Resolution may be explicit labels ("16:9", "2K"), Auto, or empty (treated
// as Auto).
type ResolveRequest struct {
	Width  int
	Height int

	AspectRatio string
	Resolution  string
}

// PadResult holds the margins needed to letterbox an input into the resolved
// target, plus the target size and the labels that were used to reach it.
// Width + Left + Right == TargetWidth and Height + Top + Bottom == TargetHeight
// always hold; all margins are non-negative.
type PadResult struct {
	Left   int
	Right  int
	Top    int
	Bottom int

	TargetWidth  int
	TargetHeight int

	AspectRatio string
	Resolution  string
}

// Resolve picks a supported target size for the input dimensions and computes
// centered padding margins. It is a pure function of its arguments and the
// static dimension table.
func Resolve(req ResolveRequest) (*PadResult, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("input dimensions must be positive, got %dx%d", req.Width, req.Height)
	}

	aspect := req.AspectRatio
	if aspect == "" {
		aspect = Auto
	}
	resolution := req.Resolution
	if resolution == "" {
		resolution = Auto
	}

	if !validAspectRatio(aspect) {
		return nil, &InvalidSelectionError{
			AspectRatio: aspect,
			Resolution:  resolution,
			Width:       req.Width,
			Height:      req.Height,
			Message:     fmt.Sprintf("invalid aspect ratio %q, valid: %s", aspect, strings.Join(append([]string{Auto}, aspectRatioLabels...), ", ")),
		}
	}
	if !validResolution(resolution) {
		return nil, &InvalidSelectionError{
			AspectRatio: aspect,
			Resolution:  resolution,
			Width:       req.Width,
			Height:      req.Height,
			Message:     fmt.Sprintf("invalid resolution %q, valid: %s", resolution, strings.Join(append([]string{Auto}, resolutionTiers...), ", ")),
		}
	}

	if aspect == Auto {
		aspect = nearestAspectRatio(req.Width, req.Height, resolution)
	}

	if resolution == Auto {
		tier, ok := smallestFittingTier(aspect, req.Width, req.Height)
		if !ok {
			max := dimensionTable[aspect][resolutionTiers[len(resolutionTiers)-1]]
			return nil, &InvalidSelectionError{
				AspectRatio: aspect,
				Resolution:  resolution,
				Width:       req.Width,
				Height:      req.Height,
				Message: fmt.Sprintf("image %dx%d exceeds %s at every resolution (largest is %dx%d)",
					req.Width, req.Height, aspect, max.Width, max.Height),
			}
		}
		resolution = tier
	}

	d := dimensionTable[aspect][resolution]
	if d.Width < req.Width || d.Height < req.Height {
		return nil, &InvalidSelectionError{
			AspectRatio: aspect,
			Resolution:  resolution,
			Width:       req.Width,
			Height:      req.Height,
			Message: fmt.Sprintf("image %dx%d is larger than target %dx%d (%s @ %s)",
				req.Width, req.Height, d.Width, d.Height, aspect, resolution),
		}
	}

	padH := d.Width - req.Width
	padV := d.Height - req.Height
	left := padH / 2
	top := padV / 2

	return &PadResult{
		Left:         left,
		Right:        padH - left,
		Top:          top,
		Bottom:       padV - top,
		TargetWidth:  d.Width,
		TargetHeight: d.Height,
		AspectRatio:  aspect,
		Resolution:   resolution,
	}, nil
}

// nearestAspectRatio picks the label whose nominal ratio is numerically
// closest to width/height. Ties go to the candidate that needs the smaller
// total padding area at its resolved tier; a tied candidate the input cannot
// fit into loses.
func nearestAspectRatio(width, height int, resolution string) string {
	inputRatio := float64(width) / float64(height)

	best := ""
	bestDist := math.Inf(1)
	bestArea := int64(math.MaxInt64)

	for _, label := range aspectRatioLabels {
		dist := math.Abs(labelRatio(label) - inputRatio)
		switch {
		case dist < bestDist:
			best = label
			bestDist = dist
			bestArea, _ = paddingArea(label, resolution, width, height)
		case dist == bestDist:
			area, ok := paddingArea(label, resolution, width, height)
			if ok && area < bestArea {
				best = label
				bestArea = area
			}
		}
	}
	return best
}

// paddingArea reports target area minus input area for a candidate label, at
// the explicit resolution or the smallest fitting tier when resolution is
// Auto. ok is false when no tier can contain the input.
func paddingArea(label, resolution string, width, height int) (int64, bool) {
	if resolution == Auto {
		tier, ok := smallestFittingTier(label, width, height)
		if !ok {
			return math.MaxInt64, false
		}
		resolution = tier
	}
	d := dimensionTable[label][resolution]
	if d.Width < width || d.Height < height {
		return math.MaxInt64, false
	}
	return int64(d.Width)*int64(d.Height) - int64(width)*int64(height), true
}

// smallestFittingTier walks the tiers smallest to largest and returns the
// first one whose entry for label contains width x height.
func smallestFittingTier(label string, width, height int) (string, bool) {
	for _, tier := range resolutionTiers {
		d := dimensionTable[label][tier]
		if d.Width >= width && d.Height >= height {
			return tier, true
		}
	}
	return "", false
}

// labelRatio parses "W:H" into W/H. Labels come from the fixed table, so a
// malformed label is a programming error; NaN makes it lose every comparison.
func labelRatio(label string) float64 {
	num, den, ok := strings.Cut(label, ":")
	if !ok {
		return math.NaN()
	}
	n, err1 := strconv.Atoi(num)
	d, err2 := strconv.Atoi(den)
	if err1 != nil || err2 != nil || d == 0 {
		return math.NaN()
	}
	return float64(n) / float64(d)
}
