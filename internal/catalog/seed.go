package catalog

// UnitPrices are the fixed per-guest prices per category.
var UnitPrices = map[Category]float64{
	CategoryBeef:       70,
	CategoryPork:       70,
	CategoryChicken:    60,
	CategorySeafood:    50,
	CategoryVegetables: 50,
	CategoryPasta:      40,
	CategoryDessert:    25,
	CategoryBeverage:   25,
}

// defaultDishes is the stock dish list loaded when the catalog store is
// empty. Names must stay stable: booked menus reference them by name.
var defaultDishes = map[Category][]string{
	CategoryBeef: {
		"Beef Caldereta",
		"Beef Broccoli",
		"Beef Kare-Kare",
		"Beef Mechado",
		"Garlic Beef Tapa",
	},
	CategoryPork: {
		"Pork Menudo",
		"Lechon Kawali",
		"Pork Hamonado",
		"Sweet and Sour Pork",
		"Pork BBQ Skewers",
	},
	CategoryChicken: {
		"Chicken Adobo",
		"Chicken Cordon Bleu",
		"Chicken Afritada",
		"Chicken Inasal",
		"Buttered Chicken",
	},
	CategorySeafood: {
		"Fish Fillet in Sweet Chili Sauce",
		"Garlic Butter Shrimp",
		"Calamares",
		"Steamed Fish with Mayonnaise",
		"Seafood Kare-Kare",
	},
	CategoryVegetables: {
		"Chopsuey",
		"Pinakbet with Bagnet",
		"Buttered Mixed Vegetables",
		"Lumpiang Sariwa",
		"Stir-Fried Kangkong",
	},
	CategoryPasta: {
		"Filipino Style Spaghetti",
		"Creamy Carbonara",
		"Baked Macaroni",
		"Pancit Canton",
		"Pancit Bihon",
	},
	CategoryDessert: {
		"Leche Flan",
		"Buko Pandan",
		"Fruit Salad",
		"Mango Float",
		"Ube Halaya",
	},
	CategoryBeverage: {
		"Red Iced Tea",
		"Four Seasons Juice",
		"Cucumber Lemonade",
		"Blue Lemonade",
		"Orange Juice",
	},
}

// DefaultCatalog builds the stock catalog with sequential IDs.
func DefaultCatalog() Catalog {
	cat := make(Catalog, len(AllCategories))
	id := 1
	for _, category := range AllCategories {
		for _, name := range defaultDishes[category] {
			cat[category] = append(cat[category], MenuItem{
				ID:        id,
				Name:      name,
				Category:  category,
				UnitPrice: UnitPrices[category],
			})
			id++
		}
	}
	return cat
}
