package groceries

// CompareRequest is the payload for a grocery comparison.
type CompareRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	Brand       *string `json:"brand,omitempty"`
	Category    string  `json:"category" validate:"required"`
	SearchQuery string  `json:"search_query" validate:"required"`
	UserID      *string `json:"user_id,omitempty"`
}
