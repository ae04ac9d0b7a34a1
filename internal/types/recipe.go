package types

// ProviderMeal is a raw record from the upstream provider: a flat object
// of str-prefixed fields, all strings (JSON nulls decode to ""). List
// endpoints pass these through to clients untouched.
type ProviderMeal map[string]string

// Ingredient is one slot of a normalized recipe's ingredient list.
type Ingredient struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// Recipe is the internal, frontend-friendly shape built from a raw
// provider record. It is never persisted; favorites and meal plans copy
// only id, name and image out of it.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Area         string       `json:"area"`
	Instructions string       `json:"instructions"`
	Image        string       `json:"image"`
	Tags         []string     `json:"tags"`
	YouTube      string       `json:"youtube"`
	Ingredients  []Ingredient `json:"ingredients"`
	Source       string       `json:"source"`
}
