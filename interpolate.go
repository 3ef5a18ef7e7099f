package parallax

import "math"

// Extrapolate controls what an Interpolation returns outside its input range.
type Extrapolate uint8

const (
	// Extend continues the slope of the nearest segment.
	Extend Extrapolate = iota
	// Clamp holds the output of the nearest control point.
	Clamp
)

// Interpolation maps a scroll offset through piecewise-linear control points.
//
// Input must be non-decreasing and the same length as Output (at least two
// points). A zero-width segment acts as a step: inputs at or below the
// segment return its first output, inputs above it the second.
type Interpolation struct {
	Input  []float64
	Output []float64
	Left   Extrapolate
	Right  Extrapolate
}

// Linear returns a two-point interpolation from (in0, out0) to (in1, out1).
func Linear(in0, in1, out0, out1 float64, left, right Extrapolate) Interpolation {
	return Interpolation{
		Input:  []float64{in0, in1},
		Output: []float64{out0, out1},
		Left:   left,
		Right:  right,
	}
}

// At evaluates the interpolation at x.
func (in Interpolation) At(x float64) float64 {
	n := len(in.Input)
	if n == 0 || len(in.Output) != n {
		return x
	}
	if n == 1 {
		return in.Output[0]
	}

	// Segment whose range contains x; the outer segments also serve
	// extrapolation.
	i := 1
	for i < n-1 && x > in.Input[i] {
		i++
	}
	return segment(x, in.Input[i-1], in.Input[i], in.Output[i-1], in.Output[i], in.Left, in.Right, i == 1, i == n-1)
}

func segment(x, inMin, inMax, outMin, outMax float64, left, right Extrapolate, first, last bool) float64 {
	if x < inMin && first && left == Clamp {
		return outMin
	}
	if x > inMax && last && right == Clamp {
		return outMax
	}

	if outMin == outMax {
		return outMin
	}
	if inMin == inMax {
		if x <= inMin {
			return outMin
		}
		return outMax
	}

	t := (x - inMin) / (inMax - inMin)
	return outMin + t*(outMax-outMin)
}

// ColorInterpolation blends between colors over an input range and is
// clamped on both sides.
type ColorInterpolation struct {
	Input  [2]float64
	Output [2]Color
}

// At evaluates the color at x.
func (ci ColorInterpolation) At(x float64) Color {
	lo, hi := ci.Input[0], ci.Input[1]
	switch {
	case math.IsNaN(x) || x <= lo:
		return ci.Output[0]
	case x >= hi:
		return ci.Output[1]
	}
	return ci.Output[0].Blend(ci.Output[1], (x-lo)/(hi-lo))
}
