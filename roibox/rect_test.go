package roibox

import (
	"encoding/json"
	"testing"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allModes = []Mode{ModeCenter, ModeFull, ModeAny}

func contains(t *testing.T, box, roi Rect, mode Mode) bool {
	t.Helper()
	ok, err := Contains(box, roi, mode)
	require.NoError(t, err)
	return ok
}

func TestContains(t *testing.T) {
	roi := Rect{100, 100, 500, 400}

	tests := []struct {
		name string
		box  Rect
		mode Mode
		want bool
	}{
		{"center inside", Rect{150, 150, 50, 50}, ModeCenter, true},
		{"full inside", Rect{150, 150, 50, 50}, ModeFull, true},
		{"any inside", Rect{150, 150, 50, 50}, ModeAny, true},
		{"any disjoint", Rect{0, 0, 10, 10}, ModeAny, false},
		{"center on edge", Rect{80, 80, 40, 40}, ModeCenter, true},
		{"center just outside", Rect{78, 80, 40, 40}, ModeCenter, false},
		{"full straddles left edge", Rect{90, 150, 50, 50}, ModeFull, false},
		{"full touches right edge", Rect{550, 150, 50, 50}, ModeFull, true},
		{"any touches corner", Rect{50, 50, 50, 50}, ModeAny, true},
		{"any one pixel left", Rect{49, 50, 50, 50}, ModeAny, false},
		{"any below", Rect{150, 501, 10, 10}, ModeAny, false},
		{"any straddles bottom", Rect{150, 490, 10, 100}, ModeAny, true},
		{"center of large box", Rect{0, 0, 700, 600}, ModeCenter, true},
		{"full of large box", Rect{0, 0, 700, 600}, ModeFull, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contains(t, tt.box, roi, tt.mode))
		})
	}
}

func TestContains_OddSizeCenter(t *testing.T) {
	// center (100.5, 100.5) falls outside [0, 100]
	assert.False(t, contains(t, Rect{100, 100, 1, 1}, Rect{0, 0, 100, 100}, ModeCenter))
	assert.True(t, contains(t, Rect{99, 99, 3, 3}, Rect{0, 0, 100.5, 100.5}, ModeCenter))
}

func TestContains_EqualRectSatisfiesEveryMode(t *testing.T) {
	rects := []Rect{
		{0, 0, 0, 0},
		{100, 100, 500, 400},
		{-20, 5, 1, 1},
		{3.5, 7.25, 10, 0},
	}
	for _, r := range rects {
		for _, m := range allModes {
			assert.True(t, contains(t, r, r, m), "rect %s mode %s", r, m)
		}
	}
}

func TestContains_DisjointPositiveArea(t *testing.T) {
	roi := Rect{100, 100, 50, 50}
	boxes := []Rect{
		{0, 0, 10, 10},
		{200, 120, 10, 10},
		{120, 0, 10, 10},
		{120, 151, 10, 10},
	}
	for _, b := range boxes {
		for _, m := range allModes {
			assert.False(t, contains(t, b, roi, m), "box %s mode %s", b, m)
		}
	}
}

func TestContains_FullImpliesCenterAndAny(t *testing.T) {
	roi := Rect{10, 20, 30, 40}
	for x := 0.0; x <= 50; x += 5 {
		for y := 10.0; y <= 70; y += 5 {
			for w := 0.0; w <= 40; w += 10 {
				for h := 0.0; h <= 50; h += 10 {
					box := Rect{x, y, w, h}
					if !contains(t, box, roi, ModeFull) {
						continue
					}
					assert.True(t, contains(t, box, roi, ModeCenter), "box %s", box)
					assert.True(t, contains(t, box, roi, ModeAny), "box %s", box)
				}
			}
		}
	}
}

func TestContains_Errors(t *testing.T) {
	_, err := Contains(Rect{0, 0, -1, 10}, Rect{0, 0, 10, 10}, ModeAny)
	require.ErrorIs(t, err, ErrNegativeSize)

	_, err = Contains(Rect{0, 0, 1, 1}, Rect{0, 0, 10, -10}, ModeFull)
	require.ErrorIs(t, err, ErrNegativeSize)

	_, err = Contains(Rect{0, 0, 1, 1}, Rect{0, 0, 10, 10}, Mode("middle"))
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":       ModeCenter,
		"center": ModeCenter,
		"full":   ModeFull,
		"any":    ModeAny,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"Center", "partial", " any"} {
		_, err := ParseMode(in)
		assert.ErrorIs(t, err, ErrUnknownMode, in)
	}
}

func TestRect_JSON(t *testing.T) {
	var r Rect
	require.NoError(t, json.Unmarshal([]byte(`[1, 2.5, 3, 4]`), &r))
	assert.Equal(t, Rect{1, 2.5, 3, 4}, r)

	b, err := json.Marshal(Rect{100, 100, 500, 400})
	require.NoError(t, err)
	assert.JSONEq(t, `[100, 100, 500, 400]`, string(b))

	assert.ErrorIs(t, json.Unmarshal([]byte(`[1, 2, 3]`), &r), ErrInvalidROI)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"x": 1}`), &r), ErrInvalidROI)
}

func TestRect_Maa(t *testing.T) {
	m := maa.Rect{10, 20, 30, 40}
	r := FromMaa(m)
	assert.Equal(t, Rect{10, 20, 30, 40}, r)
	assert.Equal(t, m, r.Maa())
	assert.True(t, Rect{}.IsZero())
	assert.False(t, r.IsZero())
	assert.Equal(t, Rect{0, 0, 1280, 720}, FullImage(1280, 720))
}
