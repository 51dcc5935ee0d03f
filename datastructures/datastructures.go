package datastructures

import "encoding/json"

// TimestampLayout renders local times as ISO-8601 with microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000"

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DominantColor is a k-means cluster centre and the number of pixels assigned to it.
type DominantColor struct {
	RGB       [3]float64 `json:"rgb"`
	Frequency int        `json:"frequency"`
}

// ImageProperties holds the low-level statistics of a decoded image.
// A value with Valid == false means the analysis failed; it marshals as {}.
type ImageProperties struct {
	Valid          bool            `json:"-"`
	Dimensions     Dimensions      `json:"dimensions"`
	DominantColors []DominantColor `json:"dominant_colors"`
	Brightness     float64         `json:"brightness"`
	Contrast       float64         `json:"contrast"`
	Sharpness      float64         `json:"sharpness"`
	AspectRatio    float64         `json:"aspect_ratio"`
	PerceptualHash string          `json:"perceptual_hash,omitempty"`
}

func (p ImageProperties) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("{}"), nil
	}
	type properties ImageProperties
	return json.Marshal(properties(p))
}

type ShapeFeatures struct {
	Area         float64 `json:"area"`
	Vertices     int     `json:"vertices"`
	Circularity  float64 `json:"circularity"`
	ContourCount int     `json:"contour_count"`
}

type Classification struct {
	Category              string          `json:"category"`
	Subcategory           string          `json:"subcategory"`
	Condition             string          `json:"condition"`
	Confidence            float64         `json:"confidence"`
	Tags                  []string        `json:"tags"`
	EstimatedValue        int             `json:"estimated_value"`
	IsRecyclable          bool            `json:"is_recyclable"`
	RecyclingInstructions string          `json:"recycling_instructions"`
	ImageAnalysis         ImageProperties `json:"image_analysis"`
	QualityScore          float64         `json:"quality_score"`
	VisualFeatures        *ShapeFeatures  `json:"visual_features,omitempty"`
}

type NutritionalInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type FoodClassification struct {
	FoodType        string          `json:"food_type"`
	Ingredients     []string        `json:"ingredients"`
	ExpirationDate  string          `json:"expiration_date"`
	Condition       string          `json:"condition"`
	Confidence      float64         `json:"confidence"`
	NutritionalInfo NutritionalInfo `json:"nutritional_info"`
	Allergens       []string        `json:"allergens"`
	IsEdible        bool            `json:"is_edible"`
}

type DIYProject struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Materials       []string `json:"materials"`
	Steps           []string `json:"steps"`
	Difficulty      string   `json:"difficulty"`
	EstimatedTime   string   `json:"estimated_time"`
	SkillLevel      string   `json:"skill_level"`
	EcoImpact       string   `json:"eco_impact"`
	Tips            []string `json:"tips,omitempty"`
	ToolsNeeded     []string `json:"tools_needed,omitempty"`
	SafetyNotes     []string `json:"safety_notes,omitempty"`
	Variations      []string `json:"variations,omitempty"`
	StyleVariations []string `json:"style_variations,omitempty"`
}

type Recipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     string   `json:"prep_time"`
	CookTime     string   `json:"cook_time"`
	Servings     int      `json:"servings"`
	Difficulty   string   `json:"difficulty"`
}

type PredictionRequest struct {
	ImageURL string `json:"image_url"`
}

type DIYRequest struct {
	Category    string `json:"category"`
	ObjectName  string `json:"object_name"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
}

type DIYResult struct {
	Success     bool         `json:"success"`
	DIYProjects []DIYProject `json:"diy_projects"`
}

type RecipeRequest struct {
	FoodType    string   `json:"food_type"`
	Ingredients []string `json:"ingredients"`
}

type RecipeResult struct {
	Recipes []Recipe `json:"recipes"`
}

type ValueRequest struct {
	Category  string `json:"category"`
	Condition string `json:"condition"`
}

type ValueResult struct {
	EstimatedValue int    `json:"estimated_value"`
	Currency       string `json:"currency"`
}

type RecyclabilityRequest struct {
	Category string `json:"category"`
}

type RecyclabilityResult struct {
	IsRecyclable bool    `json:"is_recyclable"`
	Instructions *string `json:"instructions"`
}

type HealthResult struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	ModelsLoaded bool   `json:"models_loaded"`
}
