package roibox

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MaaXYZ/maa-framework-go/v3"
)

var (
	ErrUnknownMode  = errors.New("unknown mode")
	ErrNegativeSize = errors.New("negative width or height")
	ErrInvalidROI   = errors.New("roi must be [x, y, w, h]")
)

// Mode selects which spatial relation the box must satisfy against the roi.
type Mode string

const (
	// ModeCenter: box 中心点在 roi 内
	ModeCenter Mode = "center"
	// ModeFull: box 完全在 roi 内
	ModeFull Mode = "full"
	// ModeAny: box 与 roi 有任意交集
	ModeAny Mode = "any"
)

// ParseMode maps the param string to a Mode. An empty string is ModeCenter.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeCenter, nil
	case ModeCenter, ModeFull, ModeAny:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Rect is an axis-aligned rectangle in image coordinates. Its JSON form is
// the [x, y, w, h] array used by pipeline params.
type Rect struct {
	X, Y, W, H float64
}

// FullImage returns the roi covering a w x h frame.
func FullImage(w, h int) Rect {
	return Rect{W: float64(w), H: float64(h)}
}

func FromMaa(r maa.Rect) Rect {
	return Rect{
		X: float64(r.X()),
		Y: float64(r.Y()),
		W: float64(r.Width()),
		H: float64(r.Height()),
	}
}

// Maa truncates the rectangle to the host's integer form.
func (r Rect) Maa() maa.Rect {
	return maa.Rect{int(r.X), int(r.Y), int(r.W), int(r.H)}
}

// IsZero reports whether r is the degenerate [0, 0, 0, 0] rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", r.X, r.Y, r.W, r.H)
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{r.X, r.Y, r.W, r.H})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidROI, err)
	}
	if len(v) != 4 {
		return fmt.Errorf("%w: got %d values", ErrInvalidROI, len(v))
	}
	*r = Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
	return nil
}

// Contains reports whether box satisfies mode against roi. All bounds are
// closed: touching edges count as inside for center and full, and as an
// intersection for any.
func Contains(box, roi Rect, mode Mode) (bool, error) {
	if box.W < 0 || box.H < 0 {
		return false, fmt.Errorf("%w: box %s", ErrNegativeSize, box)
	}
	if roi.W < 0 || roi.H < 0 {
		return false, fmt.Errorf("%w: roi %s", ErrNegativeSize, roi)
	}

	switch mode {
	case ModeCenter:
		cx, cy := box.Center()
		return roi.Left() <= cx && cx <= roi.Right() &&
			roi.Top() <= cy && cy <= roi.Bottom(), nil

	case ModeFull:
		return box.Left() >= roi.Left() &&
			box.Top() >= roi.Top() &&
			box.Right() <= roi.Right() &&
			box.Bottom() <= roi.Bottom(), nil

	case ModeAny:
		return !(box.Right() < roi.Left() ||
			box.Left() > roi.Right() ||
			box.Bottom() < roi.Top() ||
			box.Top() > roi.Bottom()), nil

	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}
