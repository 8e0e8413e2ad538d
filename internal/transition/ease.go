package transition

import "github.com/chewxy/math32"

// Quint is the quintic ease-in-out curve: 16t⁵ below one half, mirrored above.
// Input is clamped to [0, 1].
func Quint(t float32) float32 {
	t = clamp01(t)
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math32.Pow(-2*t+2, 5)/2
}

// FillDistance returns how far in front of a face (edge 2) the camera must sit
// for the face to fill the viewport, scaled by safety.
func FillDistance(fovY, aspect, safety float32) float32 {
	const faceSize = 2
	tanHalf := math32.Tan(fovY / 2)
	if aspect <= 0 {
		aspect = 1
	}
	vertical := faceSize / (2 * tanHalf)
	horizontal := faceSize / (2 * tanHalf * aspect)
	return math32.Min(vertical, horizontal) * safety
}

func clamp01(t float32) float32 {
	if t < 0 || math32.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
