package domain

// Category is one entry of the fixed device category enumeration.
type Category struct {
	ID          string `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`
	IconURL     string `json:"icon_url" firestore:"iconUrl"`
}

// Categories is the fixed enumeration devices are listed under.
var Categories = []Category{
	{ID: "tools", Name: "Tools", Description: "Power and hand tools"},
	{ID: "garden", Name: "Garden", Description: "Garden and outdoor equipment"},
	{ID: "kitchen", Name: "Kitchen", Description: "Kitchen appliances"},
	{ID: "electronics", Name: "Electronics", Description: "Cameras, projectors and other electronics"},
	{ID: "sports", Name: "Sports", Description: "Sports and leisure gear"},
	{ID: "party", Name: "Party", Description: "Party and event supplies"},
	{ID: "other", Name: "Other", Description: "Everything else"},
}

// ValidCategory reports whether id names a known category.
func ValidCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
