package models

// Cost categories. The order of Categories is the order of every report.
const (
	CategoryFood      = "food"
	CategoryHealth    = "health"
	CategoryHousing   = "housing"
	CategorySports    = "sports"
	CategoryEducation = "education"
)

// Categories is the canonical category order used for all report output.
var Categories = []string{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySports,
	CategoryEducation,
}

// AllCategories returns a copy of the canonical category list
func AllCategories() []string {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range Categories {
		if category == validCategory {
			return true
		}
	}
	return false
}
