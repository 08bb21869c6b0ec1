package factories

import "github.com/csakala/tableside/internal/models"

// DefaultCatalog is the starting menu for a fresh deployment.
func DefaultCatalog() []*models.MenuItem {
	return []*models.MenuItem{
		{
			ID:          "nshima-beef",
			Name:        "Nshima with Beef Stew",
			Description: "Maize meal nshima served with slow-cooked beef stew and greens",
			Price:       45.00,
			Category:    "mains",
			Available:   true,
			PrepTime:    10,
			Ingredients: []string{"Maize Meal", "Beef", "Tomato", "Onion", "Rape Leaves"},
			Popularity:  5,
		},
		{
			ID:          "nshima-kapenta",
			Name:        "Nshima with Kapenta",
			Description: "Nshima with crispy fried kapenta and tomato relish",
			Price:       38.00,
			Category:    "mains",
			Available:   true,
			PrepTime:    12,
			Ingredients: []string{"Maize Meal", "Kapenta", "Tomato", "Onion"},
			Popularity:  4,
		},
		{
			ID:          "ifisashi",
			Name:        "Ifisashi",
			Description: "Greens in a rich groundnut sauce, served with nshima",
			Price:       32.00,
			Category:    "mains",
			Available:   true,
			PrepTime:    15,
			SpiceLevel:  models.SpiceLevelMild,
			Dietary:     []string{"vegetarian", "vegan", "gluten-free"},
			Ingredients: []string{"Pumpkin Leaves", "Groundnuts", "Tomato", "Onion"},
			Popularity:  4,
		},
		{
			ID:          "grilled-chicken",
			Name:        "Grilled Chicken",
			Description: "Half chicken marinated in piri-piri and chargrilled",
			Price:       85.00,
			Category:    "grills",
			Available:   true,
			PrepTime:    20,
			SpiceLevel:  models.SpiceLevelHot,
			Dietary:     []string{"halal", "gluten-free"},
			Ingredients: []string{"Chicken", "Garlic", "Chilli", "Lemon"},
			Popularity:  5,
		},
		{
			ID:          "grilled-bream",
			Name:        "Grilled Bream",
			Description: "Whole bream grilled over charcoal with chips or nshima",
			Price:       95.00,
			Category:    "grills",
			Available:   true,
			PrepTime:    25,
			Allergens:   []string{"fish"},
			Ingredients: []string{"Bream", "Lemon", "Garlic"},
			Popularity:  4,
		},
		{
			ID:          "garden-salad",
			Name:        "Garden Salad",
			Description: "Tomato, cucumber, onion and avocado with a lemon dressing",
			Price:       28.00,
			Category:    "salads",
			Available:   true,
			PrepTime:    8,
			Dietary:     []string{"vegetarian", "vegan", "gluten-free"},
			Ingredients: []string{"Tomato", "Cucumber", "Onion", "Avocado"},
			Nutrition:   &models.NutritionInfo{Calories: 180, Protein: 3, Carbs: 12, Fat: 14},
			Popularity:  3,
		},
		{
			ID:          "munkoyo",
			Name:        "Munkoyo",
			Description: "Traditional fermented maize drink, served chilled",
			Price:       15.00,
			Category:    "drinks",
			Available:   true,
			PrepTime:    5,
			Dietary:     []string{"vegan"},
			Popularity:  3,
		},
		{
			ID:          "fritters",
			Name:        "Vitumbuwa",
			Description: "Golden banana fritters dusted with sugar",
			Price:       20.00,
			Category:    "desserts",
			Available:   true,
			PrepTime:    10,
			Allergens:   []string{"gluten"},
			Dietary:     []string{"vegetarian"},
			Ingredients: []string{"Flour", "Banana", "Sugar"},
			Popularity:  4,
		},
	}
}

// CatalogItems returns the default catalog by value, ready for Store.SetMenu.
func CatalogItems() []models.MenuItem {
	defaults := DefaultCatalog()
	items := make([]models.MenuItem, len(defaults))
	for i, item := range defaults {
		items[i] = *item
	}
	return items
}
