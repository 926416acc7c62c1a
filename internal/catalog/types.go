package catalog

// Villager is a shopping assistant profile sourced from the villager API.
type Villager struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Personality string `json:"personality"`
	Sign        string `json:"sign"`
	Quote       string `json:"quote"`
	Phrase      string `json:"phrase"`
	ImageURL    string `json:"image_url"`
}

// VillagerTraits lists the distinct filterable attributes across all villagers.
type VillagerTraits struct {
	Species       []string `json:"species"`
	Personalities []string `json:"personalities"`
	Signs         []string `json:"signs"`
}

// VillagerFilter narrows a villager listing. Empty fields match everything.
type VillagerFilter struct {
	Species     string
	Personality string
	Sign        string
}

// FurnitureItem is one sellable product derived from the houseware dataset.
type FurnitureItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageURL string `json:"image_url"`
}

// Menu groups the navigation categories extracted from the houseware dataset.
type Menu struct {
	Concepts []string `json:"concepts"`
	Series   []string `json:"series"`
	Sets     []string `json:"sets"`
}

// Page wraps a paginated slice with its position metadata.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
}
