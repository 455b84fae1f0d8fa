package compare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/siddharthverma1208/Compare/pkg/types"
)

// ParseETARange normalizes display strings like "8-12 mins" or "2-4 hours"
// into a minute range. Hour ranges are converted so every comparison happens
// in a single unit.
func ParseETARange(raw string) (types.ETARange, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(fields) == 0 {
		return types.ETARange{}, fmt.Errorf("parse eta %q: empty", raw)
	}

	multiplier := 1
	if len(fields) > 1 {
		switch unit := fields[1]; {
		case strings.HasPrefix(unit, "hour"), strings.HasPrefix(unit, "hr"):
			multiplier = 60
		case strings.HasPrefix(unit, "min"):
			multiplier = 1
		default:
			return types.ETARange{}, fmt.Errorf("parse eta %q: unknown unit %q", raw, unit)
		}
	}

	lowerStr, upperStr, found := strings.Cut(fields[0], "-")
	if !found {
		upperStr = lowerStr
	}

	lower, err := strconv.Atoi(strings.TrimSpace(lowerStr))
	if err != nil {
		return types.ETARange{}, fmt.Errorf("parse eta %q: lower bound: %w", raw, err)
	}
	upper, err := strconv.Atoi(strings.TrimSpace(upperStr))
	if err != nil {
		return types.ETARange{}, fmt.Errorf("parse eta %q: upper bound: %w", raw, err)
	}

	if lower < 0 || upper < lower {
		return types.ETARange{}, fmt.Errorf("parse eta %q: bounds out of order", raw)
	}

	return types.ETARange{
		LowerMins: lower * multiplier,
		UpperMins: upper * multiplier,
	}, nil
}
