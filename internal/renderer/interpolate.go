package renderer

// Range is a closed numeric interval; Min may be greater than Max for
// descending output ranges.
type Range struct {
	Min, Max float64
}

// Extrapolate decides what happens to inputs outside the input range.
type Extrapolate int

const (
	// Clamp pins the output to the nearest output bound.
	Clamp Extrapolate = iota
	// Extend continues the linear mapping past the bounds.
	Extend
)

// Interpolate maps x linearly from in to out.
// With Clamp the result always lies between out.Min and out.Max.
func Interpolate(x float64, in, out Range, mode Extrapolate) float64 {
	if in.Max == in.Min {
		if x < in.Min {
			return out.Min
		}
		return out.Max
	}
	if mode == Clamp {
		lo, hi := in.Min, in.Max
		if lo > hi {
			lo, hi = hi, lo
		}
		if x < lo {
			x = lo
		}
		if x > hi {
			x = hi
		}
	}
	t := (x - in.Min) / (in.Max - in.Min)
	return Lerp(out.Min, out.Max, t)
}

// FrameWindow interpolates a frame number over [start, end] with clamping,
// the common "fade in between frames a and b" case.
func FrameWindow(frame, start, end int, out Range) float64 {
	return Interpolate(float64(frame), Range{float64(start), float64(end)}, out, Clamp)
}
