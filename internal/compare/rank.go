package compare

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/pkg/enums"
)

// ErrInvalidInput marks a quote list the engine refuses to rank: empty,
// mixed-domain, or carrying duplicate provider names.
var ErrInvalidInput = errors.New("compare: invalid quote list")

// MalformedQuoteError identifies the provider whose quote is missing or
// violating a required field, so callers can log or drop it and retry with
// the remainder. The engine never drops quotes silently.
type MalformedQuoteError struct {
	Provider string
	Reason   string
}

func (e *MalformedQuoteError) Error() string {
	return fmt.Sprintf("compare: malformed quote from %q: %s", e.Provider, e.Reason)
}

// Result names the winning provider under each criterion. The input list is
// returned to the user unchanged alongside it; effective cost and time stay
// derivable from the quotes and are never persisted separately.
type Result struct {
	BestPriceProvider string
	BestTimeProvider  string
}

var surgeFloor = decimal.NewFromInt(1)

// Rank selects the cheapest-effective-cost and fastest-lower-ETA providers
// from a non-empty, domain-homogeneous quote list. Exact ties go to the
// quote listed first; iteration follows input order only, never map order.
// Rank is pure: it performs no I/O and leaves the input untouched.
func Rank(quotes []Quote) (Result, error) {
	if len(quotes) == 0 {
		return Result{}, fmt.Errorf("%w: empty quote list", ErrInvalidInput)
	}

	domain := quotes[0].Domain
	seen := make(map[string]struct{}, len(quotes))
	for i := range quotes {
		q := &quotes[i]
		if q.Domain != domain {
			return Result{}, fmt.Errorf("%w: mixed domains %s and %s", ErrInvalidInput, domain, q.Domain)
		}
		if _, dup := seen[q.Provider]; dup {
			return Result{}, fmt.Errorf("%w: duplicate provider %q", ErrInvalidInput, q.Provider)
		}
		seen[q.Provider] = struct{}{}
		if err := validateQuote(q); err != nil {
			return Result{}, err
		}
	}

	best := &quotes[0]
	bestCost := effectiveCost(best)
	fastest := &quotes[0]
	fastestETA := lowerETA(fastest)

	for i := 1; i < len(quotes); i++ {
		q := &quotes[i]
		if cost := effectiveCost(q); cost.LessThan(bestCost) {
			best = q
			bestCost = cost
		}
		if eta := lowerETA(q); eta < fastestETA {
			fastest = q
			fastestETA = eta
		}
	}

	return Result{
		BestPriceProvider: best.Provider,
		BestTimeProvider:  fastest.Provider,
	}, nil
}

// EffectiveCost computes the comparable cost of a single quote. For rides the
// surge multiplies the base fare before coupon and wallet credit are
// subtracted, and the result may go negative (provider pays the rider); the
// engine does not clamp it. For groceries it is unit price plus delivery fee.
func EffectiveCost(q Quote) (decimal.Decimal, error) {
	if err := validateQuote(&q); err != nil {
		return decimal.Decimal{}, err
	}
	return effectiveCost(&q), nil
}

func effectiveCost(q *Quote) decimal.Decimal {
	switch q.Domain {
	case enums.ComparisonTypeRide:
		return q.Ride.BaseFare.
			Mul(q.Ride.SurgeMultiplier).
			Sub(q.Ride.CouponDiscount).
			Sub(q.Ride.WalletBalance)
	default:
		return q.Grocery.UnitPrice.Add(q.Grocery.DeliveryFee)
	}
}

func lowerETA(q *Quote) int {
	if q.Domain == enums.ComparisonTypeRide {
		return q.Ride.ETA.LowerMins
	}
	return q.Grocery.DeliveryETA.LowerMins
}

func validateQuote(q *Quote) error {
	if q.Provider == "" {
		return &MalformedQuoteError{Provider: q.Provider, Reason: "missing provider name"}
	}

	switch q.Domain {
	case enums.ComparisonTypeRide:
		if q.Ride == nil {
			return &MalformedQuoteError{Provider: q.Provider, Reason: "missing ride fields"}
		}
		if q.Ride.BaseFare.IsNegative() {
			return &MalformedQuoteError{Provider: q.Provider, Reason: "negative base fare"}
		}
		if q.Ride.SurgeMultiplier.LessThan(surgeFloor) {
			return &MalformedQuoteError{Provider: q.Provider, Reason: "surge multiplier below 1.0"}
		}
		if q.Ride.CouponDiscount.IsNegative() || q.Ride.WalletBalance.IsNegative() {
			return &MalformedQuoteError{Provider: q.Provider, Reason: "negative discount"}
		}
		return validateETA(q.Provider, q.Ride.ETA.LowerMins, q.Ride.ETA.UpperMins)
	case enums.ComparisonTypeGrocery:
		if q.Grocery == nil {
			return &MalformedQuoteError{Provider: q.Provider, Reason: "missing grocery fields"}
		}
		if q.Grocery.UnitPrice.IsNegative() || q.Grocery.DeliveryFee.IsNegative() {
			return &MalformedQuoteError{Provider: q.Provider, Reason: "negative price"}
		}
		return validateETA(q.Provider, q.Grocery.DeliveryETA.LowerMins, q.Grocery.DeliveryETA.UpperMins)
	default:
		return &MalformedQuoteError{Provider: q.Provider, Reason: fmt.Sprintf("unrankable domain %q", q.Domain)}
	}
}

func validateETA(provider string, lower, upper int) error {
	if lower < 0 || upper < lower {
		return &MalformedQuoteError{Provider: provider, Reason: fmt.Sprintf("invalid eta range %d-%d", lower, upper)}
	}
	return nil
}
