package models

// Trade is one buy or sell event referencing an Item.
//
// TotalPrice is the full consideration of the event, not a unit price.
// IsPurchase selects the sign convention at aggregation time: a purchase is
// a cash outflow (negative contribution to profit/loss), a sale an inflow
// (positive contribution).
//
// The struct is denormalized with the item name for the read path; the
// stored relation references items by id.
type Trade struct {
	ID         int64      `json:"id"`
	ItemName   string     `json:"item_name" example:"Dragon bones"`
	Quantity   int64      `json:"quantity" example:"100"`
	TotalPrice int64      `json:"total_price" example:"250000"`
	IsPurchase bool       `json:"is_purchase" example:"true"`
	Timestamp  MinuteTime `json:"timestamp" swaggertype:"string" example:"2024-01-15T09:30"`
}
