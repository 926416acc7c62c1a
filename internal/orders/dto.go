package orders

import "github.com/google/uuid"

// HistoryView is the fully formatted order history payload.
type HistoryView struct {
	Orders []OrderView `json:"orders"`
}

// OrderView renders a single past order with display-ready labels.
type OrderView struct {
	ID       uuid.UUID  `json:"id"`
	Date     string     `json:"date"`
	Subtotal string     `json:"subtotal"`
	Tax      string     `json:"tax"`
	Total    string     `json:"total"`
	Items    []ItemView `json:"items"`
}

// ItemView renders one purchased line item.
type ItemView struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}
