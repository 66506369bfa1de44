package nodes

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExplicitPair(t *testing.T) {
	res, err := Resolve(ResolveRequest{Width: 1000, Height: 1000, AspectRatio: "1:1", Resolution: "1K"})
	require.NoError(t, err)

	assert.Equal(t, 1024, res.TargetWidth)
	assert.Equal(t, 1024, res.TargetHeight)
	assert.Equal(t, 12, res.Left)
	assert.Equal(t, 12, res.Right)
	assert.Equal(t, 12, res.Top)
	assert.Equal(t, 12, res.Bottom)
	assert.Equal(t, "1:1", res.AspectRatio)
	assert.Equal(t, "1K", res.Resolution)
}

// Every explicit pair must return exactly the table entry, with margins that
// sum back to the target in both axes.
func TestResolve_AllTableEntries(t *testing.T) {
	const w, h = 100, 80
	for _, aspect := range AspectRatios() {
		for _, tier := range Resolutions() {
			t.Run(aspect+"@"+tier, func(t *testing.T) {
				tw, th, err := Dimensions(aspect, tier)
				require.NoError(t, err)

				res, err := Resolve(ResolveRequest{Width: w, Height: h, AspectRatio: aspect, Resolution: tier})
				require.NoError(t, err)

				assert.Equal(t, tw, res.TargetWidth)
				assert.Equal(t, th, res.TargetHeight)
				assert.Equal(t, tw, w+res.Left+res.Right)
				assert.Equal(t, th, h+res.Top+res.Bottom)
				assert.GreaterOrEqual(t, res.Left, 0)
				assert.GreaterOrEqual(t, res.Right, 0)
				assert.GreaterOrEqual(t, res.Top, 0)
				assert.GreaterOrEqual(t, res.Bottom, 0)
			})
		}
	}
}

func TestResolve_AutoBoth(t *testing.T) {
	// Input ratio 2.0: 16:9 (~1.778, distance 0.222) beats 21:9 (~2.333,
	// distance 0.333). 1K already fits.
	res, err := Resolve(ResolveRequest{Width: 1000, Height: 500, AspectRatio: Auto, Resolution: Auto})
	require.NoError(t, err)

	assert.Equal(t, "16:9", res.AspectRatio)
	assert.Equal(t, "1K", res.Resolution)
	assert.Equal(t, 1376, res.TargetWidth)
	assert.Equal(t, 768, res.TargetHeight)
	assert.Equal(t, 188, res.Left)
	assert.Equal(t, 188, res.Right)
	assert.Equal(t, 134, res.Top)
	assert.Equal(t, 134, res.Bottom)
}

func TestResolve_AutoResolutionPicksSmallestFit(t *testing.T) {
	tests := []struct {
		w, h   int
		aspect string
		want   string
	}{
		{1000, 1000, "1:1", "1K"},
		{1024, 1024, "1:1", "1K"}, // exact fit counts as a fit
		{1100, 1100, "1:1", "2K"},
		{2049, 1000, "1:1", "4K"},
		{3000, 1500, "16:9", "4K"},
		{500, 300, "21:9", "1K"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d@%s", tt.w, tt.h, tt.aspect), func(t *testing.T) {
			res, err := Resolve(ResolveRequest{Width: tt.w, Height: tt.h, AspectRatio: tt.aspect, Resolution: Auto})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Resolution)

			// Monotonic minimality: no smaller tier may fit.
			for _, tier := range Resolutions() {
				if tier == res.Resolution {
					break
				}
				tw, th, err := Dimensions(tt.aspect, tier)
				require.NoError(t, err)
				assert.True(t, tw < tt.w || th < tt.h, "tier %s also fits but was not chosen", tier)
			}
		})
	}
}

func TestResolve_AutoAspectNearestRatio(t *testing.T) {
	tests := []struct {
		w, h int
		want string
	}{
		{1024, 1024, "1:1"},
		{1376, 768, "16:9"},
		{768, 1376, "9:16"},
		{2100, 900, "21:9"},
		{900, 1200, "3:4"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			res, err := Resolve(ResolveRequest{Width: tt.w, Height: tt.h, AspectRatio: Auto, Resolution: Auto})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.AspectRatio)

			// The chosen label must minimize the ratio distance over all
			// labels.
			input := float64(tt.w) / float64(tt.h)
			chosen := math.Abs(labelRatio(res.AspectRatio) - input)
			for _, label := range AspectRatios() {
				assert.LessOrEqual(t, chosen, math.Abs(labelRatio(label)-input),
					"label %s is closer than chosen %s", label, res.AspectRatio)
			}
		})
	}
}

// 1125x1000 has ratio 1.125, exactly halfway between 1:1 and 5:4. The
// tie-break prefers the candidate with less total padding: 1:1 resolves to
// 2048x2048, 5:4 to 2304x1856, so 1:1 wins.
func TestResolve_AutoAspectTieBreak(t *testing.T) {
	res, err := Resolve(ResolveRequest{Width: 1125, Height: 1000, AspectRatio: Auto, Resolution: Auto})
	require.NoError(t, err)

	assert.Equal(t, "1:1", res.AspectRatio)
	assert.Equal(t, "2K", res.Resolution)
}

func TestResolve_AutoAspectWithExplicitResolution(t *testing.T) {
	res, err := Resolve(ResolveRequest{Width: 1000, Height: 500, AspectRatio: Auto, Resolution: "1K"})
	require.NoError(t, err)
	assert.Equal(t, "16:9", res.AspectRatio)
	assert.Equal(t, 1376, res.TargetWidth)
}

func TestResolve_InputExceedsAllTiers(t *testing.T) {
	_, err := Resolve(ResolveRequest{Width: 5000, Height: 5000, AspectRatio: "1:1", Resolution: Auto})
	require.Error(t, err)
	assert.True(t, IsInvalidSelection(err), "want InvalidSelection, got %v", err)
}

func TestResolve_TargetSmallerThanInput(t *testing.T) {
	_, err := Resolve(ResolveRequest{Width: 2000, Height: 2000, AspectRatio: "1:1", Resolution: "1K"})
	require.Error(t, err)
	assert.True(t, IsInvalidSelection(err))
}

func TestResolve_InvalidLabels(t *testing.T) {
	_, err := Resolve(ResolveRequest{Width: 100, Height: 100, AspectRatio: "7:3", Resolution: "1K"})
	require.Error(t, err)
	assert.True(t, IsInvalidSelection(err))

	_, err = Resolve(ResolveRequest{Width: 100, Height: 100, AspectRatio: "1:1", Resolution: "8K"})
	require.Error(t, err)
	assert.True(t, IsInvalidSelection(err))
}

func TestResolve_InvalidDimensions(t *testing.T) {
	_, err := Resolve(ResolveRequest{Width: 0, Height: 100})
	require.Error(t, err)
	assert.False(t, IsInvalidSelection(err))
}

func TestResolve_EmptyLabelsMeanAuto(t *testing.T) {
	a, err := Resolve(ResolveRequest{Width: 1000, Height: 500})
	require.NoError(t, err)
	b, err := Resolve(ResolveRequest{Width: 1000, Height: 500, AspectRatio: Auto, Resolution: Auto})
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestResolve_Idempotent(t *testing.T) {
	req := ResolveRequest{Width: 1234, Height: 777, AspectRatio: Auto, Resolution: Auto}
	a, err := Resolve(req)
	require.NoError(t, err)
	b, err := Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
