package rides

// CompareRequest is the payload for a ride comparison.
type CompareRequest struct {
	PickupLocation    string  `json:"pickup_location" validate:"required"`
	DropLocation      string  `json:"drop_location" validate:"required"`
	DistanceKM        float64 `json:"distance_km" validate:"required,gt=0"`
	EstimatedDuration int     `json:"estimated_duration_mins" validate:"required,gt=0"`
	UserID            *string `json:"user_id,omitempty"`
}
