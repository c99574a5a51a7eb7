package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apkplan/internal/manifest"
)

func TestOrderAssignsContiguousSlots(t *testing.T) {
	variants := []Variant{
		{MinSDK: 8, RelativePath: "b"},
		{MinSDK: 3, RelativePath: "a"},
		{MinSDK: 11, RelativePath: "c"},
	}

	ordered, err := Order(variants)
	require.NoError(t, err)
	require.Len(t, ordered, 3)

	assert.Equal(t, []int{3, 8, 11}, []int{ordered[0].MinSDK, ordered[1].MinSDK, ordered[2].MinSDK})
	for i, v := range ordered {
		assert.Equal(t, i, v.BuildSlot)
	}

	// Input slice left untouched.
	assert.Equal(t, 0, variants[0].BuildSlot)
	assert.Equal(t, 8, variants[0].MinSDK)
}

func TestOrderIsDeterministic(t *testing.T) {
	a := Variant{MinSDK: 7, Screens: screens(manifest.ScreenLarge, manifest.ScreenXLarge)}
	b := Variant{MinSDK: 7, Screens: screens(manifest.ScreenSmall, manifest.ScreenNormal)}
	c := Variant{MinSDK: 7, Screens: screens(manifest.ScreenSmall, manifest.ScreenNormal), GLESVersion: 0x20000}
	d := Variant{MinSDK: 4, Screens: screens(manifest.ScreenNormal)}

	first, err := Order([]Variant{a, b, c, d})
	require.NoError(t, err)
	second, err := Order([]Variant{d, c, b, a})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOrderRejectsTooManyVariants(t *testing.T) {
	variants := make([]Variant, MaxBuildSlots+1)
	for i := range variants {
		variants[i] = Variant{MinSDK: i + 1}
	}

	_, err := Order(variants)
	assert.ErrorIs(t, err, ErrTooManyVariants)
}

func TestOrderAcceptsExactlyMaxVariants(t *testing.T) {
	variants := make([]Variant, MaxBuildSlots)
	for i := range variants {
		variants[i] = Variant{MinSDK: i + 1}
	}

	ordered, err := Order(variants)
	require.NoError(t, err)
	assert.Equal(t, MaxBuildSlots-1, ordered[len(ordered)-1].BuildSlot)
}

// comparatorSamples is a set of variants covering every comparator
// dimension, used to check the order is total.
func comparatorSamples() []Variant {
	return []Variant{
		{MinSDK: 3, Screens: screens(manifest.ScreenNormal)},
		{MinSDK: 7, Screens: screens(manifest.ScreenNormal)},
		{MinSDK: 7, Screens: screens(manifest.ScreenLarge)},
		{MinSDK: 7, Screens: screens(manifest.ScreenNormal), GLESVersion: 0x10001},
		{MinSDK: 7, Screens: screens(manifest.ScreenNormal), GLESVersion: 0x20000},
		{MinSDK: 7, Screens: screens(manifest.ScreenNormal), ABI: "armeabi"},
		{MinSDK: 7, Screens: screens(manifest.ScreenNormal), ABI: "x86"},
		{MinSDK: 11, Screens: screens(manifest.ScreenXLarge), GLESVersion: 0x20000, ABI: "mips"},
	}
}

func TestCompareIsAntisymmetric(t *testing.T) {
	samples := comparatorSamples()
	for i, a := range samples {
		for j, b := range samples {
			got, mirrored := a.Compare(b), b.Compare(a)
			if i == j {
				assert.Zero(t, got)
			}
			assert.Equal(t, sign(got), -sign(mirrored),
				"Compare(%v, %v) and its mirror disagree", a, b)
		}
	}
}

func TestCompareIsTransitive(t *testing.T) {
	samples := comparatorSamples()
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				if a.Compare(b) < 0 && b.Compare(c) < 0 {
					assert.Negative(t, a.Compare(c),
						"transitivity violated for %v < %v < %v", a, b, c)
				}
			}
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
