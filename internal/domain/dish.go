package domain

// Dish is a single menu entry. Orders refer to dishes by ID only.
type Dish struct {
	ID        string  `json:"dish_id"   yaml:"dish_id"`
	Name      string  `json:"name"      yaml:"name"`
	Price     float64 `json:"price"     yaml:"price"`
	Available bool    `json:"available" yaml:"available"`
}
