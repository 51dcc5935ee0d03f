package imageproc

import "math"

// hsv8 converts an RGB pixel to the 8-bit HSV encoding used by OpenCV:
// hue in [0,180) (degrees halved), saturation and value in [0,255].
func hsv8(r, g, b uint8) (h, s, v uint8) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	maxc := math.Max(rf, math.Max(gf, bf))
	minc := math.Min(rf, math.Min(gf, bf))
	diff := maxc - minc

	v = uint8(maxc)
	if maxc > 0 {
		s = uint8(math.Round(255 * diff / maxc))
	}
	if diff == 0 {
		return 0, s, v
	}

	var hue float64
	switch maxc {
	case rf:
		hue = 60 * (gf - bf) / diff
	case gf:
		hue = 120 + 60*(bf-rf)/diff
	default:
		hue = 240 + 60*(rf-gf)/diff
	}
	if hue < 0 {
		hue += 360
	}
	hh := math.Round(hue / 2)
	if hh >= 180 {
		hh -= 180
	}
	return uint8(hh), s, v
}
