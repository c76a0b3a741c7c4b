package preference

import "joacms/internal/catalog"

// signalRule maps one lower-cased phrase to the categories it signals.
// The tables below ARE the classifier; parser.go only walks them.
type signalRule struct {
	Phrase     string
	Categories []catalog.Category
}

var restrictionRules = []signalRule{
	{"no beef", []catalog.Category{catalog.CategoryBeef}},
	{"without beef", []catalog.Category{catalog.CategoryBeef}},
	{"allergic to beef", []catalog.Category{catalog.CategoryBeef}},
	{"beef allergy", []catalog.Category{catalog.CategoryBeef}},
	{"don't eat beef", []catalog.Category{catalog.CategoryBeef}},
	{"no pork", []catalog.Category{catalog.CategoryPork}},
	{"without pork", []catalog.Category{catalog.CategoryPork}},
	{"allergic to pork", []catalog.Category{catalog.CategoryPork}},
	{"pork allergy", []catalog.Category{catalog.CategoryPork}},
	{"don't eat pork", []catalog.Category{catalog.CategoryPork}},
	{"halal", []catalog.Category{catalog.CategoryPork}},
	{"no red meat", []catalog.Category{catalog.CategoryBeef, catalog.CategoryPork}},
	{"no chicken", []catalog.Category{catalog.CategoryChicken}},
	{"without chicken", []catalog.Category{catalog.CategoryChicken}},
	{"allergic to chicken", []catalog.Category{catalog.CategoryChicken}},
	{"chicken allergy", []catalog.Category{catalog.CategoryChicken}},
	{"no seafood", []catalog.Category{catalog.CategorySeafood}},
	{"without seafood", []catalog.Category{catalog.CategorySeafood}},
	{"allergic to seafood", []catalog.Category{catalog.CategorySeafood}},
	{"seafood allergy", []catalog.Category{catalog.CategorySeafood}},
	{"allergic to shrimp", []catalog.Category{catalog.CategorySeafood}},
	{"shellfish allergy", []catalog.Category{catalog.CategorySeafood}},
	{"no fish", []catalog.Category{catalog.CategorySeafood}},
	{"no vegetables", []catalog.Category{catalog.CategoryVegetables}},
	{"no veggies", []catalog.Category{catalog.CategoryVegetables}},
	{"no pasta", []catalog.Category{catalog.CategoryPasta}},
	{"no noodles", []catalog.Category{catalog.CategoryPasta}},
	{"gluten free", []catalog.Category{catalog.CategoryPasta}},
	{"gluten-free", []catalog.Category{catalog.CategoryPasta}},
}

var emphasisRules = []signalRule{
	{"more beef", []catalog.Category{catalog.CategoryBeef}},
	{"love beef", []catalog.Category{catalog.CategoryBeef}},
	{"extra beef", []catalog.Category{catalog.CategoryBeef}},
	{"more pork", []catalog.Category{catalog.CategoryPork}},
	{"love pork", []catalog.Category{catalog.CategoryPork}},
	{"extra pork", []catalog.Category{catalog.CategoryPork}},
	{"more chicken", []catalog.Category{catalog.CategoryChicken}},
	{"love chicken", []catalog.Category{catalog.CategoryChicken}},
	{"extra chicken", []catalog.Category{catalog.CategoryChicken}},
	{"more seafood", []catalog.Category{catalog.CategorySeafood}},
	{"love seafood", []catalog.Category{catalog.CategorySeafood}},
	{"love fish", []catalog.Category{catalog.CategorySeafood}},
	{"extra seafood", []catalog.Category{catalog.CategorySeafood}},
	{"more vegetables", []catalog.Category{catalog.CategoryVegetables}},
	{"more veggies", []catalog.Category{catalog.CategoryVegetables}},
	{"love vegetables", []catalog.Category{catalog.CategoryVegetables}},
	{"healthy", []catalog.Category{catalog.CategoryVegetables}},
	{"more pasta", []catalog.Category{catalog.CategoryPasta}},
	{"love pasta", []catalog.Category{catalog.CategoryPasta}},
}

// compositeDiet expands a single dietary word into emphasis plus the
// restrictions the diet implies.
type compositeDiet struct {
	Word      string
	Emphasize []catalog.Category
	Restrict  []catalog.Category
}

var compositeDiets = []compositeDiet{
	{
		Word:      "vegetarian",
		Emphasize: []catalog.Category{catalog.CategoryVegetables},
		Restrict: []catalog.Category{
			catalog.CategoryBeef,
			catalog.CategoryPork,
			catalog.CategoryChicken,
			catalog.CategorySeafood,
		},
	},
	{
		Word:      "vegan",
		Emphasize: []catalog.Category{catalog.CategoryVegetables},
		Restrict: []catalog.Category{
			catalog.CategoryBeef,
			catalog.CategoryPork,
			catalog.CategoryChicken,
			catalog.CategorySeafood,
		},
	},
	{
		Word:      "pescatarian",
		Emphasize: []catalog.Category{catalog.CategorySeafood},
		Restrict: []catalog.Category{
			catalog.CategoryBeef,
			catalog.CategoryPork,
			catalog.CategoryChicken,
		},
	},
}

// categoryAliases are the words customers use for each category inside
// "only ..." clauses.
var categoryAliases = map[catalog.Category][]string{
	catalog.CategoryBeef:       {"beef"},
	catalog.CategoryPork:       {"pork"},
	catalog.CategoryChicken:    {"chicken"},
	catalog.CategorySeafood:    {"seafood", "fish"},
	catalog.CategoryVegetables: {"vegetables", "veggies", "vegetable"},
	catalog.CategoryPasta:      {"pasta", "noodles"},
}

var cookingStyleWords = map[string]string{
	"spicy":   "spicy",
	"mild":    "mild",
	"grilled": "grilled",
	"fried":   "fried",
}

var portionHintWords = map[string]string{
	"light":   "light",
	"heavy":   "heavy",
	"hearty":  "heavy",
	"filling": "heavy",
}
