package predict

import (
	"strings"
	"time"

	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

const (
	ConditionFresh   = "fresh"
	ConditionExpired = "expired"

	unknownIngredient = "ingrédient"
	maxIngredients    = 3
)

// ClassifyFood guesses the food type from the keywords of an image
// reference. The first food category with a matching keyword wins.
func ClassifyFood(raw string, r RandSource, now time.Time) ds.FoodClassification {
	lower := strings.ToLower(raw)

	foodType := catalog.Other
	confidence := uniform(r, 0.6, 0.9)
	for _, c := range catalog.FoodCategories() {
		keywords, _ := catalog.FoodKeywords(c)
		if containsAny(lower, keywords) {
			foodType = c
			break
		}
	}

	condition := catalog.ConditionGood
	if confidence > 0.8 {
		condition = ConditionFresh
	}

	keywords, ok := catalog.FoodKeywords(foodType)
	if !ok {
		keywords = []string{unknownIngredient}
	}
	ingredients := sample(r, keywords, maxIngredients)

	return ds.FoodClassification{
		FoodType:        foodType,
		Ingredients:     ingredients,
		ExpirationDate:  expirationDate(foodType, condition, now).Format(ds.TimestampLayout),
		Condition:       condition,
		Confidence:      confidence,
		NutritionalInfo: catalog.Nutrition(foodType),
		Allergens:       detectAllergens(ingredients),
		IsEdible:        condition != ConditionExpired,
	}
}

func expirationDate(foodType, condition string, now time.Time) time.Time {
	if condition == ConditionExpired {
		return now.AddDate(0, 0, -1)
	}
	return now.AddDate(0, 0, catalog.ShelfLifeDays(foodType))
}

// detectAllergens lists the allergens named inside any ingredient, once
// each, in order of first appearance.
func detectAllergens(ingredients []string) []string {
	found := []string{}
	seen := map[string]bool{}
	for _, ingredient := range ingredients {
		lower := strings.ToLower(ingredient)
		for _, allergen := range catalog.Allergens() {
			if strings.Contains(lower, allergen) && !seen[allergen] {
				seen[allergen] = true
				found = append(found, allergen)
			}
		}
	}
	return found
}
