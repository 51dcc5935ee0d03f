package catalog

import "github.com/ziedtabib/ecoshare-ai-service/datastructures"

const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
)

const (
	defaultEnhancedBaseValue   = 20
	defaultBaseValue           = 10
	defaultConditionMultiplier = 0.4
	defaultConditionScore      = 0.5
	defaultShelfLifeDays       = 7
)

// enhancedBaseValues feeds the full classification pipeline.
var enhancedBaseValues = map[string]float64{
	"electronics": 150,
	"furniture":   80,
	"clothing":    30,
	"books":       15,
	"toys":        25,
	"sports":      50,
	"beauty":      40,
	"home":        35,
	Other:         20,
}

// baseValues feeds the standalone value estimate and the fallback classifier.
var baseValues = map[string]float64{
	"electronics": 100,
	"furniture":   50,
	"clothing":    20,
	"books":       10,
	"toys":        15,
	"sports":      30,
	"beauty":      25,
	"home":        20,
	Other:         10,
}

var conditionMultipliers = map[string]float64{
	ConditionExcellent: 1.0,
	ConditionGood:      0.7,
	ConditionFair:      0.4,
	ConditionPoor:      0.1,
}

var conditionScores = map[string]float64{
	ConditionExcellent: 1.0,
	ConditionGood:      0.8,
	ConditionFair:      0.6,
	ConditionPoor:      0.3,
}

var recyclingInstructions = map[string]string{
	"electronics": "Apportez dans un point de collecte DEEE (Déchets d'Équipements Électriques et Électroniques)",
	"books":       "Donnez à une bibliothèque ou association, ou recyclez le papier",
	"home":        "Vérifiez les consignes de tri de votre commune",
}

const defaultRecyclingInstructions = "Consultez les consignes de tri locales"

var shelfLifeDays = map[string]int{
	"fruits":     7,
	"vegetables": 5,
	"dairy":      3,
	"meat":       2,
	"bakery":     3,
	"canned":     365,
	"beverages":  30,
	"snacks":     60,
	Other:        7,
}

var nutrition = map[string]datastructures.NutritionalInfo{
	"fruits":     {Calories: 60, Protein: 1, Carbs: 15, Fat: 0},
	"vegetables": {Calories: 25, Protein: 2, Carbs: 5, Fat: 0},
	"dairy":      {Calories: 150, Protein: 8, Carbs: 12, Fat: 8},
	"meat":       {Calories: 250, Protein: 25, Carbs: 0, Fat: 15},
	"bakery":     {Calories: 300, Protein: 8, Carbs: 50, Fat: 10},
	"canned":     {Calories: 100, Protein: 5, Carbs: 20, Fat: 2},
	"beverages":  {Calories: 50, Protein: 0, Carbs: 12, Fat: 0},
	"snacks":     {Calories: 200, Protein: 4, Carbs: 25, Fat: 10},
}

var defaultNutrition = datastructures.NutritionalInfo{Calories: 100, Protein: 3, Carbs: 15, Fat: 5}

var commonAllergens = []string{"nuts", "dairy", "eggs", "gluten", "soy", "shellfish"}

func EnhancedBaseValue(category string) float64 {
	if v, ok := enhancedBaseValues[category]; ok {
		return v
	}
	return defaultEnhancedBaseValue
}

func BaseValue(category string) float64 {
	if v, ok := baseValues[category]; ok {
		return v
	}
	return defaultBaseValue
}

func ConditionMultiplier(condition string) float64 {
	if v, ok := conditionMultipliers[condition]; ok {
		return v
	}
	return defaultConditionMultiplier
}

// ConditionScore is the per-tier quality contribution of a condition.
func ConditionScore(condition string) float64 {
	if v, ok := conditionScores[condition]; ok {
		return v
	}
	return defaultConditionScore
}

// IsRecyclable reports whether objects of a category can go to a recycling stream.
func IsRecyclable(category string) bool {
	_, ok := recyclingInstructions[category]
	return ok
}

func RecyclingInstructions(category string) string {
	if v, ok := recyclingInstructions[category]; ok {
		return v
	}
	return defaultRecyclingInstructions
}

func ShelfLifeDays(foodType string) int {
	if v, ok := shelfLifeDays[foodType]; ok {
		return v
	}
	return defaultShelfLifeDays
}

func Nutrition(foodType string) datastructures.NutritionalInfo {
	if v, ok := nutrition[foodType]; ok {
		return v
	}
	return defaultNutrition
}

func Allergens() []string {
	return append([]string(nil), commonAllergens...)
}
