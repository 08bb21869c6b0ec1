package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/csakala/tableside/internal/models"
)

var fake = faker.New()

type MenuItemFactory struct{}

func (mf *MenuItemFactory) CreateMenuItem(config *models.Config) models.MenuItem {
	category := menuCategories[rand.Intn(len(menuCategories))]
	return models.MenuItem{
		ID:          cuid.New(),
		Name:        generateRandomDishName(category),
		Description: fake.Lorem().Sentence(10),
		Price:       fake.Float64(2, 15, int(config.MaxMenuPrice)),
		Category:    category,
		Available:   true,
		PrepTime:    fake.IntBetween(5, 30),
		SpiceLevel:  generateRandomSpiceLevel(),
		Dietary:     generateRandomDietary(),
		Ingredients: generateRandomIngredients(),
		Popularity:  float64(fake.IntBetween(1, 5)),
	}
}

var menuCategories = []string{"mains", "grills", "sides", "salads", "desserts", "drinks"}

func generateRandomDishName(category string) string {
	dishes := map[string][]string{
		"mains":    {"Nshima with Village Chicken", "Beef Stew", "Ifisashi", "Kapenta with Nshima", "Chikanda Platter"},
		"grills":   {"Grilled Chicken", "T-Bone Steak", "Grilled Bream", "Mixed Grill Platter", "BBQ Pork Ribs"},
		"sides":    {"Nshima", "Rice", "Chips", "Sweet Potato Fries", "Sauteed Vegetables"},
		"salads":   {"Garden Salad", "Chicken Salad", "Avocado Salad", "Coleslaw"},
		"desserts": {"Fritters", "Fruit Platter", "Ice Cream", "Banana Cake"},
		"drinks":   {"Munkoyo", "Maheu", "Fresh Juice", "Mineral Water", "Ginger Beer"},
	}
	if items, ok := dishes[category]; ok {
		return items[rand.Intn(len(items))]
	}
	return "Special of the Day"
}

func generateRandomIngredients() []string {
	allIngredients := []string{"Maize Meal", "Chicken", "Beef", "Bream", "Kapenta", "Groundnuts", "Tomato", "Onion", "Garlic", "Rape Leaves", "Pumpkin Leaves", "Rice", "Beans", "Cabbage"}
	ingredientCount := rand.Intn(5) + 2 // 2 to 6 ingredients
	ingredients := make([]string, ingredientCount)
	for i := 0; i < ingredientCount; i++ {
		ingredients[i] = allIngredients[rand.Intn(len(allIngredients))]
	}
	return ingredients
}

func generateRandomSpiceLevel() string {
	levels := []string{"", models.SpiceLevelMild, models.SpiceLevelMedium, models.SpiceLevelHot, models.SpiceLevelVeryHot}
	return levels[rand.Intn(len(levels))]
}

func generateRandomDietary() []string {
	tags := []string{"vegetarian", "vegan", "gluten-free", "halal"}
	if rand.Intn(2) == 0 {
		return nil
	}
	return []string{tags[rand.Intn(len(tags))]}
}
