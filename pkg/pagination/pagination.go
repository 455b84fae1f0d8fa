package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 20
	// MaxLimit caps how many rows any history query can request.
	MaxLimit = 100
)

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizeLimitWithDefault behaves like NormalizeLimit but lets callers pick
// the fallback, e.g. the savings history default of 50.
func NormalizeLimitWithDefault(limit, fallback int) int {
	if limit <= 0 {
		if fallback <= 0 || fallback > MaxLimit {
			return DefaultLimit
		}
		return fallback
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
