package predict

import (
	"math"

	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
)

const (
	Currency = "EUR"

	sharpImageBonus     = 0.1
	sharpImageThreshold = 0.1
	defaultQualityScore = 0.5
	defaultValue        = 20
)

// EstimateObjectValueEnhanced values an analyzed object: base value times
// condition multiplier, plus 10% for a sharp image, truncated to an integer.
func EstimateObjectValueEnhanced(category, condition string, props ds.ImageProperties) int {
	bonus := 0.0
	if props.Valid && props.Sharpness > sharpImageThreshold {
		bonus = sharpImageBonus
	}
	return int(catalog.EnhancedBaseValue(category) * catalog.ConditionMultiplier(condition) * (1 + bonus))
}

// EstimateObjectValue is the table-only estimate used without an image.
func EstimateObjectValue(category, condition string) int {
	return int(catalog.BaseValue(category) * catalog.ConditionMultiplier(condition))
}

// QualityScore blends focus (0.3), condition (0.4), lighting (0.15) and
// contrast (0.15) into a score in [0, 1].
func QualityScore(img *imageproc.DecodedImage, condition string) float64 {
	focus := math.Min(img.LaplacianVariance()/1000, 1)
	brightness, contrast := img.ChannelStats()
	lighting := 1 - math.Abs(brightness-128)/128

	return focus*0.3 +
		catalog.ConditionScore(condition)*0.4 +
		lighting*0.15 +
		math.Min(contrast/100, 1)*0.15
}

// CheckRecyclability reports whether a category is recyclable. Instructions
// are only given for recyclable categories.
func CheckRecyclability(category string) ds.RecyclabilityResult {
	res := ds.RecyclabilityResult{IsRecyclable: catalog.IsRecyclable(category)}
	if res.IsRecyclable {
		instructions := catalog.RecyclingInstructions(category)
		res.Instructions = &instructions
	}
	return res
}
