package util

import "testing"

func TestCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		number   int
		expected string
	}{
		{name: "zero", number: 0, expected: "0 scenes"},
		{name: "one", number: 1, expected: "1 scene"},
		{name: "many", number: 12, expected: "12 scenes"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Count(tc.number, "scene", "scenes"); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
