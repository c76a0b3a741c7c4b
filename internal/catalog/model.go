package catalog

// Category is the fixed menu taxonomy every dish belongs to.
type Category string

const (
	CategoryBeef       Category = "beef"
	CategoryPork       Category = "pork"
	CategoryChicken    Category = "chicken"
	CategorySeafood    Category = "seafood"
	CategoryVegetables Category = "vegetables"
	CategoryPasta      Category = "pasta"
	CategoryDessert    Category = "dessert"
	CategoryBeverage   Category = "beverage"
)

// AllCategories in display order.
var AllCategories = []Category{
	CategoryBeef,
	CategoryPork,
	CategoryChicken,
	CategorySeafood,
	CategoryVegetables,
	CategoryPasta,
	CategoryDessert,
	CategoryBeverage,
}

// MainCourseCategories are the categories a dietary restriction may
// remove from a menu. Dessert and beverage are always served.
var MainCourseCategories = []Category{
	CategoryBeef,
	CategoryPork,
	CategoryChicken,
	CategorySeafood,
	CategoryVegetables,
	CategoryPasta,
}

// Slot is one of the six required positions of an event menu.
type Slot string

const (
	SlotMenu1    Slot = "menu1" // beef or pork
	SlotMenu2    Slot = "menu2" // chicken
	SlotMenu3    Slot = "menu3" // seafood or vegetables
	SlotPasta    Slot = "pasta"
	SlotDessert  Slot = "dessert"
	SlotBeverage Slot = "beverage"
)

// AllSlots in serving order.
var AllSlots = []Slot{
	SlotMenu1,
	SlotMenu2,
	SlotMenu3,
	SlotPasta,
	SlotDessert,
	SlotBeverage,
}

// SlotCategories maps each slot to the categories allowed to fill it.
var SlotCategories = map[Slot][]Category{
	SlotMenu1:    {CategoryBeef, CategoryPork},
	SlotMenu2:    {CategoryChicken},
	SlotMenu3:    {CategorySeafood, CategoryVegetables},
	SlotPasta:    {CategoryPasta},
	SlotDessert:  {CategoryDessert},
	SlotBeverage: {CategoryBeverage},
}

// SlotFor returns the slot a category belongs to.
func SlotFor(category Category) (Slot, bool) {
	for slot, cats := range SlotCategories {
		for _, c := range cats {
			if c == category {
				return slot, true
			}
		}
	}
	return "", false
}

// MenuItem is one orderable dish. Immutable within a request.
type MenuItem struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	UnitPrice float64  `json:"unit_price"`
}

// Catalog groups the orderable dishes by category.
type Catalog map[Category][]MenuItem
