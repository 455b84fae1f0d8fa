package types

// ETARange is an ordered pair of arrival bounds, always in minutes.
// Display strings such as "2-4 hours" are normalized before they reach here.
type ETARange struct {
	LowerMins int `json:"lower_mins"`
	UpperMins int `json:"upper_mins"`
}

// IsZero reports whether the range carries no information.
func (e ETARange) IsZero() bool {
	return e.LowerMins == 0 && e.UpperMins == 0
}
