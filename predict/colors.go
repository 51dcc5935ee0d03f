package predict

import (
	"math"

	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

// ColorSemantics flags color families found among the dominant colors.
type ColorSemantics struct {
	Metallic bool
	Neutral  bool
	Vibrant  bool
	Wood     bool
	Bright   bool
	Sport    bool
	Beauty   bool
	Home     bool
}

// AnalyzeColors sets a flag when any dominant color falls into its band.
func AnalyzeColors(colors []ds.DominantColor) ColorSemantics {
	var s ColorSemantics
	for _, c := range colors {
		r, g, b := c.RGB[0], c.RGB[1], c.RGB[2]
		hi := math.Max(r, math.Max(g, b))
		lo := math.Min(r, math.Min(g, b))

		if within(r, g, b, 100, 200) {
			s.Metallic = true
		}
		if within(r, g, b, 80, 180) || (r > g+20 && r > b+20) {
			s.Neutral = true
		}
		if hi > 150 && hi-lo > 50 {
			s.Vibrant = true
		}
		if r > g+10 && r > b+10 && r > 100 {
			s.Wood = true
		}
		if hi > 180 && lo < 100 {
			s.Bright = true
		}
		if (r > 150 && g < 100 && b < 100) ||
			(b > 150 && r < 100 && g < 100) ||
			(g > 150 && r < 100 && b < 100) {
			s.Sport = true
		}
		if (r > 150 && g > 100 && b > 150) || (r > 150 && g < 100 && b > 150) {
			s.Beauty = true
		}
		if within(r, g, b, 50, 150) {
			s.Home = true
		}
	}
	return s
}

func within(r, g, b, lo, hi float64) bool {
	return lo <= r && r <= hi && lo <= g && g <= hi && lo <= b && b <= hi
}
