package models

type NutritionInfo struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type MenuItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Available   bool           `json:"available"`
	PrepTime    int            `json:"prep_time"` // preparation time in minutes
	SpiceLevel  string         `json:"spice_level,omitempty"`
	Dietary     []string       `json:"dietary,omitempty"`
	Allergens   []string       `json:"allergens,omitempty"`
	Ingredients []string       `json:"ingredients,omitempty"`
	Nutrition   *NutritionInfo `json:"nutrition,omitempty"`
	Popularity  float64        `json:"popularity,omitempty"` // 1-5, zero when unrated
}

// HasDietaryTag reports whether the item carries the given dietary tag.
func (m *MenuItem) HasDietaryTag(tag string) bool {
	for _, t := range m.Dietary {
		if t == tag {
			return true
		}
	}
	return false
}
