package placement

import "github.com/callouthq/callout/pkg/callout/models"

// Nominal CTA footprint at scale 1, in pixels. The real rendered size
// depends on content and font, so this is an approximation used only
// for drag clamping, not a measured box.
const (
	NominalWidth  = 320
	NominalHeight = 170
)

// Point is a pixel coordinate inside the preview container
type Point struct {
	X float64
	Y float64
}

// Size is a pixel extent
type Size struct {
	W float64
	H float64
}

// Drag captures one in-flight drag: where the element sat when the
// drag began, where the pointer went down, and where it is now.
type Drag struct {
	Initial      Point
	StartPointer Point
	Pointer      Point
}

// AnchorMargin is the fixed inset for corner-anchored positions
const AnchorMargin = 24

// AnchorOrigin returns the element origin for a named position inside
// the container. These are the static layout rules; custom positions
// resolve through Resolve instead.
func AnchorOrigin(p models.Position, container, footprint Size) (Point, bool) {
	switch p {
	case models.PositionBottomLeft:
		return Point{X: AnchorMargin, Y: container.H - footprint.H - AnchorMargin}, true
	case models.PositionBottomRight:
		return Point{X: container.W - footprint.W - AnchorMargin, Y: container.H - footprint.H - AnchorMargin}, true
	case models.PositionBottomBanner:
		return Point{X: 0, Y: container.H - footprint.H}, true
	default:
		return Point{}, false
	}
}

// EstimateFootprint approximates the element extent from the
// configuration's scale against the nominal footprint.
func EstimateFootprint(scale float64) Size {
	if scale <= 0 {
		scale = 1
	}
	return Size{W: NominalWidth * scale, H: NominalHeight * scale}
}

// Resolve computes the element origin for a drag in progress:
// initial offset plus pointer delta, clamped componentwise to
// [0, container - footprint]. The origin never reports negative or
// container-exceeding coordinates, even when the container is smaller
// than the footprint.
func Resolve(d Drag, container, footprint Size) Point {
	return Point{
		X: clamp(d.Initial.X+d.Pointer.X-d.StartPointer.X, container.W-footprint.W),
		Y: clamp(d.Initial.Y+d.Pointer.Y-d.StartPointer.Y, container.H-footprint.H),
	}
}

func clamp(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
