// Package catalog holds the static reference data of the service: category
// keyword tables, the description corpus used for text similarity, value and
// recycling tables, food facts, and the DIY and recipe templates.
//
// All tables are unexported; accessors hand out copies so callers cannot
// mutate shared data.
package catalog

// Other is the category returned when nothing matches.
const Other = "other"

type category struct {
	name     string
	keywords []string
}

var objectCategories = []category{
	{"electronics", []string{"laptop", "computer", "keyboard", "mouse", "monitor", "phone", "tablet", "camera"}},
	{"clothing", []string{"shirt", "dress", "jacket", "pants", "shoes", "hat", "gloves", "scarf"}},
	{"furniture", []string{"chair", "table", "sofa", "bed", "desk", "cabinet", "shelf", "lamp"}},
	{"books", []string{"book", "magazine", "notebook", "dictionary", "novel", "textbook"}},
	{"toys", []string{"toy", "doll", "ball", "puzzle", "game", "teddy bear", "action figure"}},
	{"sports", []string{"ball", "racket", "bike", "helmet", "sneakers", "gym equipment"}},
	{"beauty", []string{"cosmetics", "perfume", "makeup", "skincare", "hair care"}},
	{"home", []string{"kitchen", "bathroom", "decor", "utensils", "appliances"}},
}

var foodCategories = []category{
	{"fruits", []string{"apple", "banana", "orange", "grape", "strawberry", "lemon", "pear", "peach"}},
	{"vegetables", []string{"carrot", "broccoli", "tomato", "potato", "onion", "lettuce", "cucumber", "pepper"}},
	{"dairy", []string{"milk", "cheese", "yogurt", "butter", "cream", "ice cream"}},
	{"meat", []string{"chicken", "beef", "pork", "fish", "sausage", "bacon"}},
	{"bakery", []string{"bread", "cake", "cookie", "croissant", "bagel", "muffin"}},
	{"canned", []string{"soup", "beans", "tuna", "corn", "peas"}},
	{"beverages", []string{"water", "juice", "soda", "coffee", "tea", "wine", "beer"}},
	{"snacks", []string{"chips", "nuts", "crackers", "candy", "chocolate"}},
}

// objectDescriptions follows the order of objectCategories.
var objectDescriptions = []category{
	{"electronics", []string{"appareil électronique téléphone ordinateur tablette écran clavier souris laptop computer phone tablet screen keyboard mouse camera electronic device tech gadget"}},
	{"clothing", []string{"vêtement chemise pantalon robe chaussures chapeau gants écharpe shirt pants dress shoes hat gloves scarf jacket coat clothing fashion wear"}},
	{"furniture", []string{"meuble chaise table canapé lit bureau armoire étagère lampe chair table sofa bed desk cabinet shelf lamp furniture wood furniture home decor"}},
	{"books", []string{"livre magazine cahier dictionnaire roman manuel scolaire book magazine notebook dictionary novel textbook reading paper pages text"}},
	{"toys", []string{"jouet poupée ballon puzzle jeu ours en peluche figurine toy doll ball puzzle game teddy bear action figure children kids play"}},
	{"sports", []string{"sport ballon raquette vélo casque chaussures équipement gym sport ball racket bike helmet sneakers gym equipment fitness exercise"}},
	{"beauty", []string{"cosmétique parfum maquillage soin cheveux beauté cosmetic perfume makeup skincare hair care beauty product beauty care"}},
	{"home", []string{"maison cuisine salle de bain décoration ustensile électroménager house kitchen bathroom decoration utensil appliance home decor"}},
}

// GenericExpansion adds related words to the keyword document when any of
// its triggers appears in an image reference.
type GenericExpansion struct {
	Triggers []string
	Words    []string
}

var genericExpansions = []GenericExpansion{
	{[]string{"phone", "mobile"}, []string{"phone", "mobile", "smartphone"}},
	{[]string{"laptop", "computer"}, []string{"laptop", "computer", "notebook"}},
	{[]string{"book", "magazine"}, []string{"book", "magazine", "reading"}},
	{[]string{"chair", "table"}, []string{"chair", "table", "furniture"}},
	{[]string{"shirt", "dress"}, []string{"shirt", "dress", "clothing"}},
	{[]string{"toy", "doll"}, []string{"toy", "doll", "play"}},
	{[]string{"ball", "sport"}, []string{"ball", "sport", "exercise"}},
	{[]string{"cosmetic", "beauty"}, []string{"cosmetic", "beauty", "makeup"}},
	{[]string{"kitchen", "home"}, []string{"kitchen", "home", "house"}},
}

// ObjectCategories returns the object category names in table order.
func ObjectCategories() []string {
	return names(objectCategories)
}

// FoodCategories returns the food category names in table order.
func FoodCategories() []string {
	return names(foodCategories)
}

// ObjectKeywords returns a copy of the keyword list of an object category.
func ObjectKeywords(name string) ([]string, bool) {
	return lookup(objectCategories, name)
}

// FoodKeywords returns a copy of the keyword list of a food category.
func FoodKeywords(name string) ([]string, bool) {
	return lookup(foodCategories, name)
}

// ObjectDescription returns the descriptive paragraph of an object category.
func ObjectDescription(name string) string {
	d, ok := lookup(objectDescriptions, name)
	if !ok {
		return ""
	}
	return d[0]
}

func GenericExpansions() []GenericExpansion {
	out := make([]GenericExpansion, len(genericExpansions))
	for i, g := range genericExpansions {
		out[i] = GenericExpansion{
			Triggers: append([]string(nil), g.Triggers...),
			Words:    append([]string(nil), g.Words...),
		}
	}
	return out
}

func names(table []category) []string {
	out := make([]string, len(table))
	for i, c := range table {
		out[i] = c.name
	}
	return out
}

func lookup(table []category, name string) ([]string, bool) {
	for _, c := range table {
		if c.name == name {
			return append([]string(nil), c.keywords...), true
		}
	}
	return nil, false
}
