package renderer

import (
	"github.com/ivlev/salesreel/internal/director"
)

// CameraState represents the camera position and zoom at a specific moment
type CameraState struct {
	X    float64 // Pan X position (center point in pixels)
	Y    float64 // Pan Y position (center point in pixels)
	Zoom float64 // Zoom level (1.0 = no zoom)
}

// InterpolateKeyframes calculates camera state at a given time by interpolating between keyframes
func InterpolateKeyframes(keyframes []director.Keyframe, currentTime float64) CameraState {
	if len(keyframes) == 0 {
		return CameraState{X: 0, Y: 0, Zoom: 1.0}
	}

	if currentTime <= keyframes[0].Time {
		return cameraAt(keyframes[0])
	}
	last := keyframes[len(keyframes)-1]
	if currentTime >= last.Time {
		return cameraAt(last)
	}

	// Find surrounding keyframes
	prevKf, nextKf := keyframes[0], last
	for i := 0; i < len(keyframes)-1; i++ {
		if currentTime >= keyframes[i].Time && currentTime < keyframes[i+1].Time {
			prevKf = keyframes[i]
			nextKf = keyframes[i+1]
			break
		}
	}

	t := Interpolate(currentTime, Range{prevKf.Time, nextKf.Time}, Range{0, 1}, Clamp)
	t = EaseInOutCubic(t)

	from, to := cameraAt(prevKf), cameraAt(nextKf)
	return CameraState{
		X:    Lerp(from.X, to.X, t),
		Y:    Lerp(from.Y, to.Y, t),
		Zoom: Lerp(from.Zoom, to.Zoom, t),
	}
}

func cameraAt(kf director.Keyframe) CameraState {
	return CameraState{
		X:    float64(kf.Rect.X) + float64(kf.Rect.W)/2,
		Y:    float64(kf.Rect.Y) + float64(kf.Rect.H)/2,
		Zoom: kf.Zoom,
	}
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInOutCubic applies smooth easing function
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
