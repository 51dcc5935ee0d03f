package catalog

import ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"

type recipeTemplate struct {
	recipe ds.Recipe
	extras []string
}

var recipeTemplates = map[string][]recipeTemplate{
	"fruits": {
		{
			recipe: ds.Recipe{
				Title:       "Smoothie aux fruits",
				Description: "Un smoothie rafraîchissant et nutritif",
				Instructions: []string{
					"Lavez et coupez les fruits",
					"Mettez dans un mixeur",
					"Ajoutez le yaourt et le miel",
					"Mixez jusqu'à obtenir une texture lisse",
				},
				PrepTime:   "10 min",
				CookTime:   "0 min",
				Servings:   2,
				Difficulty: "easy",
			},
			extras: []string{"Yaourt", "Miel"},
		},
	},
	"vegetables": {
		{
			recipe: ds.Recipe{
				Title:       "Soupe de légumes",
				Description: "Une soupe réconfortante et saine",
				Instructions: []string{
					"Lavez et coupez les légumes",
					"Faites revenir dans une casserole",
					"Ajoutez le bouillon",
					"Laissez mijoter 20 minutes",
				},
				PrepTime:   "15 min",
				CookTime:   "25 min",
				Servings:   4,
				Difficulty: "easy",
			},
			extras: []string{"Bouillon", "Herbes"},
		},
	},
}

var creativeRecipe = recipeTemplate{
	recipe: ds.Recipe{
		Title:       "Recette créative",
		Description: "Une recette utilisant vos ingrédients",
		Instructions: []string{
			"Préparez tous les ingrédients",
			"Suivez votre inspiration",
			"Assaisonnez selon vos goûts",
			"Dégustez votre création",
		},
		PrepTime:   "15 min",
		CookTime:   "30 min",
		Servings:   4,
		Difficulty: "medium",
	},
}

// Recipes returns recipe suggestions for a food type using the given ingredients.
func Recipes(foodType string, ingredients []string) []ds.Recipe {
	templates, ok := recipeTemplates[foodType]
	if !ok {
		templates = []recipeTemplate{creativeRecipe}
	}

	recipes := make([]ds.Recipe, 0, len(templates))
	for _, tpl := range templates {
		r := tpl.recipe
		r.Instructions = cloneStrings(r.Instructions)
		r.Ingredients = make([]string, 0, len(ingredients)+len(tpl.extras))
		r.Ingredients = append(r.Ingredients, ingredients...)
		r.Ingredients = append(r.Ingredients, tpl.extras...)
		recipes = append(recipes, r)
	}
	return recipes
}
