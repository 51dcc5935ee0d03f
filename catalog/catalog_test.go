package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectCategoriesOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"electronics", "clothing", "furniture", "books", "toys", "sports", "beauty", "home"},
		ObjectCategories())
	assert.Equal(t,
		[]string{"fruits", "vegetables", "dairy", "meat", "bakery", "canned", "beverages", "snacks"},
		FoodCategories())
}

func TestKeywordsAreCopies(t *testing.T) {
	kw, ok := ObjectKeywords("books")
	require.True(t, ok)
	kw[0] = "changed"

	again, _ := ObjectKeywords("books")
	assert.Equal(t, "book", again[0])

	_, ok = ObjectKeywords("spaceships")
	assert.False(t, ok)
}

func TestEveryObjectCategoryHasDescription(t *testing.T) {
	for _, c := range ObjectCategories() {
		assert.NotEmpty(t, ObjectDescription(c), c)
	}
	assert.Empty(t, ObjectDescription(Other))
}

func TestRecyclability(t *testing.T) {
	for _, c := range append(ObjectCategories(), Other, "unknown") {
		want := c == "electronics" || c == "books" || c == "home"
		assert.Equal(t, want, IsRecyclable(c), c)
	}
	assert.Equal(t, "Consultez les consignes de tri locales", RecyclingInstructions("clothing"))
}

func TestValueTablesDefaults(t *testing.T) {
	assert.Equal(t, 150.0, EnhancedBaseValue("electronics"))
	assert.Equal(t, 20.0, EnhancedBaseValue("unknown"))
	assert.Equal(t, 100.0, BaseValue("electronics"))
	assert.Equal(t, 10.0, BaseValue("unknown"))
	assert.Equal(t, 0.4, ConditionMultiplier("broken"))
	assert.Equal(t, 0.5, ConditionScore("broken"))
	assert.Equal(t, 365, ShelfLifeDays("canned"))
	assert.Equal(t, 7, ShelfLifeDays(Other))
	assert.Equal(t, 100, Nutrition(Other).Calories)
}

func TestDIYProjects(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		objectName string
		condition  string
		wantCount  int
		wantTitle  string
		wantDiff   string
		wantTips   int
	}{
		{"electronics good", "electronics", "laptop", "good", 2, "Station de charge multi-appareils", "medium", 3},
		{"poor simplifies", "electronics", "laptop", "poor", 2, "Station de charge multi-appareils", "easy", 5},
		{"excellent adds tip", "books", "roman", "excellent", 1, "Bibliothèque créative", "easy", 1},
		{"unknown category", "beauty", "parfum", "good", 1, "Projet créatif général", "medium", 2},
		{"furniture word renames", "home", "Petite table", "good", 1, "Transformation de Petite table", "medium", 2},
		{"furniture category keeps title", "furniture", "table basse", "good", 2, "Relooking complet de meuble", "medium", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := DIYProjects(tt.category, tt.objectName, "", tt.condition)
			require.Len(t, projects, tt.wantCount)
			assert.Equal(t, tt.wantTitle, projects[0].Title)
			assert.Equal(t, tt.wantDiff, projects[0].Difficulty)
			assert.Len(t, projects[0].Tips, tt.wantTips)
		})
	}
}

func TestDIYProjectsDoNotMutateTemplates(t *testing.T) {
	_ = DIYProjects("electronics", "laptop", "", "poor")
	projects := DIYProjects("electronics", "laptop", "", "good")
	assert.Len(t, projects[0].Tips, 3)
	assert.Equal(t, "medium", projects[0].Difficulty)
}

func TestRecipes(t *testing.T) {
	r := Recipes("fruits", []string{"apple"})
	require.Len(t, r, 1)
	assert.Equal(t, "Smoothie aux fruits", r[0].Title)
	assert.Equal(t, []string{"apple", "Yaourt", "Miel"}, r[0].Ingredients)

	r = Recipes("meat", []string{"beef"})
	require.Len(t, r, 1)
	assert.Equal(t, "Recette créative", r[0].Title)
	assert.Equal(t, []string{"beef"}, r[0].Ingredients)

	r = Recipes("meat", nil)
	assert.NotNil(t, r[0].Ingredients)
}
