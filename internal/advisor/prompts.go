package advisor

import (
	"encoding/json"
	"fmt"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
	"github.com/siddharthverma1208/Compare/pkg/enums"
)

const (
	rideSystemMessage = "You are a smart transportation advisor specializing in cost-effective and efficient travel recommendations. " +
		"Analyze ride comparison data and provide actionable insights."
	grocerySystemMessage = "You are an expert grocery shopping advisor. " +
		"Analyze product comparisons focusing on value, quality, and smart shopping strategies."
	recommendationsSystemMessage = "You are a personal finance and shopping advisor. " +
		"Analyze user behavior patterns to provide personalized money-saving recommendations."
)

func buildRidePrompt(comparison models.RideComparison, userPreferences map[string]any) (string, error) {
	providersJSON, err := json.Marshal(comparison.Providers)
	if err != nil {
		return "", fmt.Errorf("marshal providers: %w", err)
	}
	prefs := "No specific preferences provided"
	if len(userPreferences) > 0 {
		raw, err := json.Marshal(userPreferences)
		if err != nil {
			return "", fmt.Errorf("marshal preferences: %w", err)
		}
		prefs = string(raw)
	}

	return fmt.Sprintf(`Analyze this ride comparison for the route from %s to %s (Distance: %.1f km):

PROVIDERS DATA:
%s

USER PREFERENCES: %s

Provide a comprehensive analysis including:
1. BEST VALUE RECOMMENDATION: Which option offers the best value for money considering all factors
2. COST BREAKDOWN INSIGHTS: Key cost factors affecting the total price
3. TIME VS COST ANALYSIS: Trade-offs between speed and price
4. MONEY SAVING TIPS: Specific actionable advice for this route
5. SURGE/DEMAND INSIGHTS: Current market conditions affecting pricing

Format your response as a JSON object with these keys: recommendation, cost_insights, time_analysis, saving_tips, market_insights.
Keep recommendations practical and user-friendly.`,
		comparison.PickupLocation, comparison.DropLocation, comparison.DistanceKM,
		providersJSON, prefs), nil
}

func buildGroceryPrompt(comparison models.GroceryComparison, shoppingContext map[string]any) (string, error) {
	providersJSON, err := json.Marshal(comparison.Providers)
	if err != nil {
		return "", fmt.Errorf("marshal providers: %w", err)
	}
	brand := "various"
	if comparison.Brand != nil {
		brand = *comparison.Brand
	}
	context := "Regular shopping, no specific requirements"
	if len(shoppingContext) > 0 {
		raw, err := json.Marshal(shoppingContext)
		if err != nil {
			return "", fmt.Errorf("marshal shopping context: %w", err)
		}
		context = string(raw)
	}

	return fmt.Sprintf(`Analyze this grocery comparison for %s from %s brands:

PROVIDERS DATA:
%s

SHOPPING CONTEXT: %s

Provide detailed analysis including:
1. BEST VALUE PICK: Considering price per unit, quality, and total cost
2. UNIT PRICE INSIGHTS: Breakdown of why certain options are better value
3. DELIVERY OPTIMIZATION: Best delivery time vs cost balance
4. BULK BUYING ADVICE: Whether buying in bulk makes sense for this product
5. FRESHNESS & QUALITY: Considerations for product quality across providers
6. MONEY SAVING STRATEGIES: Specific tips for this product category

Format response as JSON with keys: best_pick, unit_analysis, delivery_insights, bulk_advice, quality_notes, saving_strategies.
Focus on practical, actionable shopping advice.`,
		comparison.ProductName, brand, providersJSON, context), nil
}

func buildRecommendationsPrompt(comparisonType enums.ComparisonType, history, preferences any) (string, error) {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("marshal history: %w", err)
	}
	prefs := "No preferences set"
	if preferences != nil {
		raw, err := json.Marshal(preferences)
		if err != nil {
			return "", fmt.Errorf("marshal preferences: %w", err)
		}
		prefs = string(raw)
	}

	return fmt.Sprintf(`Analyze this user's %s comparison history and provide personalized recommendations:

COMPARISON HISTORY (most recent first):
%s

USER PREFERENCES:
%s

Based on the patterns, provide:
1. SPENDING PATTERNS: Key insights about their choices
2. SAVINGS OPPORTUNITIES: Specific ways they can save more money
3. PROVIDER RECOMMENDATIONS: Which providers work best for their needs
4. BEHAVIORAL INSIGHTS: Patterns in their decision-making
5. PERSONALIZED TIPS: Custom advice based on their usage

Format as JSON with keys: spending_patterns, savings_opportunities, provider_recommendations, behavioral_insights, personalized_tips.
Make recommendations specific and actionable.`,
		comparisonType, historyJSON, prefs), nil
}
