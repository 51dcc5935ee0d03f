package imageproc

import (
	"github.com/corona10/goimagehash"
	log "github.com/sirupsen/logrus"

	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

// Analyze extracts the visual properties of an image: dimensions, dominant
// colors, brightness (mean channel value), contrast (channel standard
// deviation), sharpness (edge pixel fraction) and aspect ratio.
func Analyze(img *DecodedImage) ds.ImageProperties {
	w, h := img.Width(), img.Height()
	brightness, contrast := img.ChannelStats()

	props := ds.ImageProperties{
		Valid:          true,
		Dimensions:     ds.Dimensions{Width: w, Height: h},
		DominantColors: dominantColors(img.NRGBA()),
		Brightness:     brightness,
		Contrast:       contrast,
		Sharpness:      img.EdgeDensity(),
		AspectRatio:    float64(w) / float64(h),
	}

	hash, err := goimagehash.DifferenceHash(img.NRGBA())
	if err != nil {
		log.Debug("[Analyzer] Couldn't compute perceptual hash: ", err.Error())
	} else {
		props.PerceptualHash = hash.ToString()
	}

	log.Debug("[Analyzer] ", w, "x", h, " brightness=", brightness, " contrast=", contrast)
	return props
}
