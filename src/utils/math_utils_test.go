package utils

import "testing"

func TestClampLimit(t *testing.T) {
	cases := []struct {
		limit, size, want int
	}{
		{5, 10, 5},
		{10, 5, 5},
		{0, 5, 0},
		{-1, 5, 0},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := ClampLimit(tc.limit, tc.size); got != tc.want {
			t.Errorf("ClampLimit(%d, %d) = %d, want %d", tc.limit, tc.size, got, tc.want)
		}
	}
}
