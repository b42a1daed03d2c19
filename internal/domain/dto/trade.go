package dto

// TradeRequest is the JSON body accepted by POST /api/v1/trade.
//
// The timestamp travels as a string in the canonical minute-precision form
// (YYYY-MM-DDTHH:MM); parsing happens in the service layer so an unparsable
// value surfaces as a timestamp error rather than a generic bind failure.
//
// swagger:model TradeRequest
type TradeRequest struct {
	ItemName   string `json:"item_name" example:"Dragon bones"`
	Quantity   int64  `json:"quantity" example:"100"`
	TotalPrice int64  `json:"total_price" example:"250000"`
	IsPurchase bool   `json:"is_purchase" example:"true"`
	Timestamp  string `json:"timestamp" example:"2024-01-15T09:30"`
}

// TradeCreatedResponse is returned by POST /api/v1/trade on success.
//
// swagger:model TradeCreatedResponse
type TradeCreatedResponse struct {
	ID int64 `json:"id" example:"17"`
}

// ProfitLossResponse is returned by GET /api/v1/profit_loss.
//
// ProfitLoss is the signed sum of trade considerations: sales positive,
// purchases negative.
//
// swagger:model ProfitLossResponse
type ProfitLossResponse struct {
	ProfitLoss int64 `json:"profit_loss" example:"-250000"`
}
