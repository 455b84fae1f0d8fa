package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{10, 10},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, tc := range cases {
		if got := NormalizeLimit(tc.in); got != tc.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeLimitWithDefault(t *testing.T) {
	if got := NormalizeLimitWithDefault(0, 50); got != 50 {
		t.Fatalf("expected fallback 50, got %d", got)
	}
	if got := NormalizeLimitWithDefault(0, 500); got != DefaultLimit {
		t.Fatalf("oversized fallback should collapse to default, got %d", got)
	}
	if got := NormalizeLimitWithDefault(30, 50); got != 30 {
		t.Fatalf("explicit limit should win, got %d", got)
	}
}
