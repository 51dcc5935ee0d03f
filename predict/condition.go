package predict

import (
	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
)

type conditionTier struct {
	condition   string
	minFocus    float64
	maxBrown    float64
	maxEdgeness float64
}

// Checked in order; an image matching none is poor.
var conditionTiers = []conditionTier{
	{catalog.ConditionExcellent, 1000, 0.1, 0.1},
	{catalog.ConditionGood, 500, 0.2, 0.2},
	{catalog.ConditionFair, 200, 0.4, 0.4},
}

// DetectCondition grades wear from focus (Laplacian variance), the share of
// brown/discolored pixels and edge density. The category does not change
// the grading.
func DetectCondition(img *imageproc.DecodedImage, category string) string {
	return gradeCondition(img.LaplacianVariance(), img.BrownFraction(), img.EdgeDensity())
}

func gradeCondition(focus, brown, edges float64) string {
	for _, t := range conditionTiers {
		if focus > t.minFocus && brown < t.maxBrown && edges < t.maxEdgeness {
			return t.condition
		}
	}
	return catalog.ConditionPoor
}
