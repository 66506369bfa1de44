package nodes

import "fmt"

// Auto selects an aspect ratio or resolution automatically from the input
// image's dimensions.
const Auto = "auto"

// Resolution tiers, ordered smallest to largest. Auto-resolution search walks
// this order and stops at the first tier that contains the input.
var resolutionTiers = []string{"1K", "2K", "4K"}

// Aspect-ratio labels accepted by the API, in the vendor's documented order.
var aspectRatioLabels = []string{"1:1", "5:4", "4:5", "4:3", "3:4", "3:2", "2:3", "16:9", "9:16", "21:9"}

type dimension struct {
	Width  int
	Height int
}

// dimensionTable maps aspect-ratio label -> resolution tier -> actual output
// dimensions. These are the real pixel sizes the API produces, which differ
// slightly from the nominal ratio at each tier.
var dimensionTable = map[string]map[string]dimension{
	"1:1": {
		"1K": {1024, 1024},
		"2K": {2048, 2048},
		"4K": {4096, 4096},
	},
	"5:4": {
		"1K": {1152, 928},
		"2K": {2304, 1856},
		"4K": {4608, 3712},
	},
	"4:5": {
		"1K": {928, 1152},
		"2K": {1856, 2304},
		"4K": {3712, 4608},
	},
	"4:3": {
		"1K": {1200, 896},
		"2K": {2400, 1792},
		"4K": {4800, 3584},
	},
	"3:4": {
		"1K": {896, 1200},
		"2K": {1792, 2400},
		"4K": {3584, 4800},
	},
	"3:2": {
		"1K": {1264, 848},
		"2K": {2528, 1696},
		"4K": {5056, 3392},
	},
	"2:3": {
		"1K": {848, 1264},
		"2K": {1696, 2528},
		"4K": {3392, 5056},
	},
	"16:9": {
		"1K": {1376, 768},
		"2K": {2752, 1536},
		"4K": {5504, 3072},
	},
	"9:16": {
		"1K": {768, 1376},
		"2K": {1536, 2752},
		"4K": {3072, 5504},
	},
	"21:9": {
		"1K": {1584, 672},
		"2K": {3168, 1344},
		"4K": {6336, 2688},
	},
}

// AspectRatios returns the supported aspect-ratio labels in canonical order.
func AspectRatios() []string {
	return append([]string(nil), aspectRatioLabels...)
}

// Resolutions returns the supported resolution tiers, smallest first.
func Resolutions() []string {
	return append([]string(nil), resolutionTiers...)
}

// Dimensions returns the output width and height for an explicit aspect-ratio
// and resolution pair.
func Dimensions(aspectRatio, resolution string) (int, int, error) {
	tiers, ok := dimensionTable[aspectRatio]
	if !ok {
		return 0, 0, &InvalidSelectionError{
			AspectRatio: aspectRatio,
			Resolution:  resolution,
			Message:     fmt.Sprintf("unknown aspect ratio %q", aspectRatio),
		}
	}
	d, ok := tiers[resolution]
	if !ok {
		return 0, 0, &InvalidSelectionError{
			AspectRatio: aspectRatio,
			Resolution:  resolution,
			Message:     fmt.Sprintf("unknown resolution %q", resolution),
		}
	}
	return d.Width, d.Height, nil
}

func validAspectRatio(s string) bool {
	if s == Auto {
		return true
	}
	_, ok := dimensionTable[s]
	return ok
}

func validResolution(s string) bool {
	if s == Auto {
		return true
	}
	for _, tier := range resolutionTiers {
		if s == tier {
			return true
		}
	}
	return false
}
