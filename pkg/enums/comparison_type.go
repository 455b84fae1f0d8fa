package enums

import "fmt"

// ComparisonType identifies which vertical a comparison or savings record
// belongs to.
type ComparisonType string

const (
	ComparisonTypeRide     ComparisonType = "ride"
	ComparisonTypeGrocery  ComparisonType = "grocery"
	ComparisonTypePharmacy ComparisonType = "pharmacy"
	ComparisonTypeFood     ComparisonType = "food"
)

var validComparisonTypes = []ComparisonType{
	ComparisonTypeRide,
	ComparisonTypeGrocery,
	ComparisonTypePharmacy,
	ComparisonTypeFood,
}

// IsValid checks whether the given type matches the canonical enum.
func (c ComparisonType) IsValid() bool {
	for _, candidate := range validComparisonTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// Rankable reports whether quote ranking is implemented for this vertical.
// Pharmacy and food are announced but have no quote sources yet.
func (c ComparisonType) Rankable() bool {
	return c == ComparisonTypeRide || c == ComparisonTypeGrocery
}

// ParseComparisonType converts raw strings into ComparisonType.
func ParseComparisonType(value string) (ComparisonType, error) {
	for _, candidate := range validComparisonTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid comparison type %q", value)
}
