package advisor

import (
	"time"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/pkg/enums"
)

// Analysis kinds stored alongside the narrative.
const (
	KindRideAnalysis    = "ride_analysis"
	KindGroceryAnalysis = "grocery_analysis"
	KindRecommendations = "recommendations"
)

// RideAnalysisRequest carries optional context for a ride analysis.
type RideAnalysisRequest struct {
	UserPreferences map[string]any `json:"user_preferences,omitempty"`
}

// GroceryAnalysisRequest carries optional context for a grocery analysis.
type GroceryAnalysisRequest struct {
	ShoppingContext map[string]any `json:"shopping_context,omitempty"`
}

// RecommendationsRequest asks for personalized advice from recent history.
type RecommendationsRequest struct {
	UserID         string               `json:"user_id" validate:"required"`
	ComparisonType enums.ComparisonType `json:"comparison_type" validate:"required"`
}

// AnalysisDTO is a stored narrative returned to the caller.
type AnalysisDTO struct {
	AnalysisID    uuid.UUID  `json:"analysis_id"`
	ComparisonID  *uuid.UUID `json:"comparison_id,omitempty"`
	UserID        *string    `json:"user_id,omitempty"`
	Kind          string     `json:"kind"`
	Analysis      string     `json:"analysis"`
	BasedOnCount  int        `json:"based_on_comparisons,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}
