package predict

import (
	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

const (
	textWeight       = 0.4
	propertiesWeight = 0.2
	// visualWeight is reserved for a shape-based score; no such score is fused yet.
	visualWeight = 0.4

	unknownSubcategory = "objet"
	maxTags            = 3
)

// Combined is the fused category decision.
type Combined struct {
	Category    string
	Subcategory string
	Confidence  float64
	Tags        []string
}

func defaultCombined() Combined {
	return Combined{
		Category:    catalog.Other,
		Subcategory: unknownSubcategory,
		Confidence:  0.5,
		Tags:        []string{unknownSubcategory},
	}
}

// Combine weighs the text result (0.4) and the property-rule result (0.2)
// over the union of their categories. Equal scores go to the category whose
// name sorts first. Subcategory and tags are drawn from the winner's keywords.
func Combine(props ds.ImageProperties, text CategoryScore, r RandSource) Combined {
	property := guard("properties",
		CategoryScore{Category: catalog.Other, Confidence: 0.5, Origin: OriginDefault},
		func() CategoryScore { return ClassifyByProperties(props) })

	scores := map[string]float64{}
	scores[text.Category] += text.Confidence * textWeight
	scores[property.Category] += property.Confidence * propertiesWeight

	best, bestScore := "", 0.0
	for category, score := range scores {
		if best == "" || score > bestScore || (score == bestScore && category < best) {
			best, bestScore = category, score
		}
	}

	keywords, ok := catalog.ObjectKeywords(best)
	if !ok {
		keywords = []string{unknownSubcategory}
	}
	return Combined{
		Category:    best,
		Subcategory: choice(r, keywords),
		Confidence:  bestScore,
		Tags:        sample(r, keywords, maxTags),
	}
}
