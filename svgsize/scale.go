package svgsize

import "math"

// Zoom slider mapping. Positions in [0,1] map to scale factors in
// [MinZoom, MaxZoom] through two regimes: the first two thirds of the
// travel cover 0.1x to 10x in 0.1 steps for fine control, the last third
// jumps through 10x to 100x in 5x steps.
const (
	MinZoom = 0.1
	MaxZoom = 100.0

	linearMaxZoom = 10.0
	linearSpan    = 2.0 / 3.0 // slider travel devoted to the linear regime
	stepZoom      = 5.0
	stepCount     = 18 // 10, 15, ..., 100
)

// ScaleAt maps a normalized slider position to the effective scale factor.
// Positions outside [0,1] are clamped.
func ScaleAt(p float64) float64 {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	if p <= linearSpan {
		z := MinZoom + (p/linearSpan)*(linearMaxZoom-MinZoom)
		return math.Round(z*10) / 10
	}
	i := math.Round((p - linearSpan) / (1 - linearSpan) * stepCount)
	return linearMaxZoom + stepZoom*i
}

// PositionOf is the inverse of ScaleAt: the slider position whose quantized
// scale is z. Composing ScaleAt(PositionOf(ScaleAt(p))) reproduces
// ScaleAt(p) for every position. Scales outside [MinZoom, MaxZoom] are
// clamped.
func PositionOf(z float64) float64 {
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	if z <= linearMaxZoom {
		return (z - MinZoom) / (linearMaxZoom - MinZoom) * linearSpan
	}
	i := math.Round((z - linearMaxZoom) / stepZoom)
	return linearSpan + i/stepCount*(1-linearSpan)
}
