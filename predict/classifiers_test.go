package predict

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

func colorsOf(rgbs ...[3]float64) []ds.DominantColor {
	out := make([]ds.DominantColor, len(rgbs))
	for i, c := range rgbs {
		out[i] = ds.DominantColor{RGB: c, Frequency: 100 - i}
	}
	return out
}

func TestAnalyzeColors(t *testing.T) {
	tests := []struct {
		name string
		rgb  [3]float64
		want ColorSemantics
	}{
		{"silver", [3]float64{150, 150, 150}, ColorSemantics{Metallic: true, Neutral: true, Home: true}},
		{"pure red", [3]float64{220, 20, 20}, ColorSemantics{Neutral: true, Vibrant: true, Wood: true, Bright: true, Sport: true}},
		{"pink", [3]float64{200, 120, 200}, ColorSemantics{Metallic: true, Vibrant: true, Beauty: true}},
		{"dark gray", [3]float64{60, 60, 60}, ColorSemantics{Home: true}},
		{"black", [3]float64{0, 0, 0}, ColorSemantics{}},
		{"light gray", [3]float64{200, 200, 200}, ColorSemantics{Metallic: true, Beauty: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeColors(colorsOf(tt.rgb)))
		})
	}
}

func TestAnalyzeColorsIsAnOr(t *testing.T) {
	s := AnalyzeColors(colorsOf([3]float64{0, 0, 0}, [3]float64{20, 20, 220}))
	assert.True(t, s.Sport)
	assert.False(t, s.Metallic)

	assert.Equal(t, ColorSemantics{}, AnalyzeColors(nil))
}

func validProps(brightness, contrast, ar, sharpness float64, colors ...[3]float64) ds.ImageProperties {
	return ds.ImageProperties{
		Valid:          true,
		Dimensions:     ds.Dimensions{Width: 100, Height: 100},
		DominantColors: colorsOf(colors...),
		Brightness:     brightness,
		Contrast:       contrast,
		Sharpness:      sharpness,
		AspectRatio:    ar,
	}
}

func TestClassifyByProperties(t *testing.T) {
	tests := []struct {
		name  string
		props ds.ImageProperties
		want  string
		conf  float64
	}{
		{"invalid properties", ds.ImageProperties{}, catalog.Other, 0.5},
		{"dark image", validProps(80, 10, 3, 0), "electronics", 0.7},
		{"equal scores keep the earlier rule", validProps(128, 10, 1, 0, [3]float64{150, 110, 90}), "books", 0.8},
		{"vibrant high contrast", validProps(128, 70, 3, 0, [3]float64{230, 40, 200}), "clothing", 0.7},
		{"fallback dark", validProps(110, 10, 1, 0), "electronics", 0.5},
		{"fallback elongated", validProps(130, 10, 2, 0), "books", 0.5},
		{"fallback contrast", validProps(130, 50, 1, 0), "clothing", 0.5},
		{"fallback home", validProps(130, 10, 1, 0), "home", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyByProperties(tt.props)
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, tt.conf, got.Confidence)
		})
	}
}

func TestKeywordDocument(t *testing.T) {
	assert.Equal(t, "laptop laptop computer notebook", KeywordDocument("https://cdn.example.com/Laptop.jpg"))
	assert.Equal(t, unknownDocument, KeywordDocument("https://cdn.example.com/xyz.jpg"))
}

func TestTFIDFVectorsAreNormalised(t *testing.T) {
	vectors := tfidf([]string{"chair table chair", "chair sofa", "objet inconnu"})
	for _, v := range vectors {
		var sum float64
		for _, w := range v {
			sum += w * w
		}
		assert.InDelta(t, 1, sum, 1e-9)
	}
	assert.InDelta(t, 1, cosine(vectors[0], vectors[0]), 1e-9)
	assert.Zero(t, cosine(vectors[0], vectors[2]))
}

func TestClassifyByText(t *testing.T) {
	t.Run("similarity", func(t *testing.T) {
		got := ClassifyByText("/uploads/sofa-chair-table-desk-lamp.png")
		assert.Equal(t, "furniture", got.Category)
		assert.Equal(t, OriginText, got.Origin)
		assert.Greater(t, got.Confidence, minTextSimilarity)
	})

	t.Run("keyword counting below threshold", func(t *testing.T) {
		got := ClassifyByText("https://cdn.example.com/laptop.jpg")
		assert.Equal(t, CategoryScore{Category: "electronics", Confidence: keywordConfidence, Origin: OriginKeywords}, got)
	})

	t.Run("no keywords", func(t *testing.T) {
		got := ClassifyByText("zzz")
		assert.Equal(t, "electronics", got.Category)
		assert.Zero(t, got.Confidence)
		assert.Equal(t, OriginText, got.Origin)
	})
}

func TestCombine(t *testing.T) {
	r := fixedRand{}

	got := Combine(ds.ImageProperties{}, CategoryScore{Category: "electronics", Confidence: 0.6}, r)
	assert.Equal(t, "electronics", got.Category)
	assert.InDelta(t, 0.24, got.Confidence, 1e-9)
	assert.Equal(t, "laptop", got.Subcategory)
	assert.Equal(t, []string{"laptop", "computer", "keyboard"}, got.Tags)

	got = Combine(validProps(130, 10, 1, 0), CategoryScore{Category: "home", Confidence: 0.5}, r)
	assert.Equal(t, "home", got.Category)
	assert.InDelta(t, 0.3, got.Confidence, 1e-9)
}

func TestCombineTieBreaksLexicographically(t *testing.T) {
	got := Combine(ds.ImageProperties{}, CategoryScore{Category: "furniture", Confidence: 0.25}, fixedRand{})
	assert.Equal(t, "furniture", got.Category)

	got = Combine(ds.ImageProperties{}, CategoryScore{Category: "toys", Confidence: 0.25}, fixedRand{})
	assert.Equal(t, catalog.Other, got.Category)
	assert.Equal(t, unknownSubcategory, got.Subcategory)
	assert.Equal(t, []string{unknownSubcategory}, got.Tags)
}

func TestSampleIsDistinct(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	for i := 0; i < 50; i++ {
		got := sample(DefaultRand, items, 3)
		require.Len(t, got, 3)
		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s])
			seen[s] = true
		}
	}
	assert.Len(t, sample(DefaultRand, []string{"x"}, 3), 1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
}

func TestGradeCondition(t *testing.T) {
	tests := []struct {
		focus, brown, edges float64
		want                string
	}{
		{1500, 0.05, 0.05, catalog.ConditionExcellent},
		{1000, 0.05, 0.05, catalog.ConditionGood},
		{1500, 0.15, 0.05, catalog.ConditionGood},
		{600, 0.3, 0.1, catalog.ConditionFair},
		{300, 0.1, 0.39, catalog.ConditionFair},
		{200, 0, 0, catalog.ConditionPoor},
		{5000, 0.5, 0, catalog.ConditionPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gradeCondition(tt.focus, tt.brown, tt.edges), "%+v", tt)
	}
}

func TestGradeConditionIsTotal(t *testing.T) {
	valid := map[string]bool{
		catalog.ConditionExcellent: true, catalog.ConditionGood: true,
		catalog.ConditionFair: true, catalog.ConditionPoor: true,
	}
	for _, focus := range []float64{0, 199, 200, 201, 500, 501, 1000, 1001, math.Inf(1)} {
		for _, brown := range []float64{0, 0.1, 0.2, 0.4, 1} {
			for _, edges := range []float64{0, 0.1, 0.2, 0.4, 1} {
				assert.True(t, valid[gradeCondition(focus, brown, edges)])
			}
		}
	}
}

func TestEnhancedValueMonotonicInCondition(t *testing.T) {
	sharp := validProps(128, 50, 1, 0.2)
	for _, c := range append(catalog.ObjectCategories(), catalog.Other, "unknown") {
		for _, props := range []ds.ImageProperties{{}, sharp} {
			poor := EstimateObjectValueEnhanced(c, catalog.ConditionPoor, props)
			fair := EstimateObjectValueEnhanced(c, catalog.ConditionFair, props)
			good := EstimateObjectValueEnhanced(c, catalog.ConditionGood, props)
			excellent := EstimateObjectValueEnhanced(c, catalog.ConditionExcellent, props)
			assert.LessOrEqual(t, poor, fair, c)
			assert.LessOrEqual(t, fair, good, c)
			assert.LessOrEqual(t, good, excellent, c)
		}
	}
}

func TestEstimateValues(t *testing.T) {
	assert.Equal(t, 165, EstimateObjectValueEnhanced("electronics", catalog.ConditionExcellent, validProps(128, 50, 1, 0.2)))
	assert.Equal(t, 150, EstimateObjectValueEnhanced("electronics", catalog.ConditionExcellent, ds.ImageProperties{}))
	assert.Equal(t, 8, EstimateObjectValueEnhanced("unknown", "broken", ds.ImageProperties{}))

	assert.Equal(t, 7, EstimateObjectValue("books", catalog.ConditionGood))
	assert.Equal(t, 70, EstimateObjectValue("electronics", catalog.ConditionGood))
	assert.Equal(t, 4, EstimateObjectValue("unknown", "broken"))
}

func TestCheckRecyclability(t *testing.T) {
	res := CheckRecyclability("clothing")
	assert.False(t, res.IsRecyclable)
	assert.Nil(t, res.Instructions)

	res = CheckRecyclability("books")
	assert.True(t, res.IsRecyclable)
	require.NotNil(t, res.Instructions)
	assert.Equal(t, catalog.RecyclingInstructions("books"), *res.Instructions)
}
