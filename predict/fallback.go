package predict

import (
	"strings"

	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

const fallbackConfidence = 0.7

// FallbackClassification classifies an image reference that could not be
// decoded, using only the keywords it contains. The first category in table
// order with a matching keyword wins.
func FallbackClassification(raw string, r RandSource) ds.Classification {
	lower := strings.ToLower(raw)

	category, confidence := catalog.Other, 0.5
	for _, c := range catalog.ObjectCategories() {
		keywords, _ := catalog.ObjectKeywords(c)
		if containsAny(lower, keywords) {
			category, confidence = c, fallbackConfidence
			break
		}
	}

	keywords, ok := catalog.ObjectKeywords(category)
	if !ok {
		keywords = []string{unknownSubcategory}
	}
	return ds.Classification{
		Category:              category,
		Subcategory:           choice(r, keywords),
		Condition:             catalog.ConditionGood,
		Confidence:            confidence,
		Tags:                  sample(r, keywords, maxTags),
		EstimatedValue:        EstimateObjectValue(category, catalog.ConditionGood),
		IsRecyclable:          catalog.IsRecyclable(category),
		RecyclingInstructions: catalog.RecyclingInstructions(category),
		QualityScore:          defaultQualityScore,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
