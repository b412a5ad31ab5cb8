package utils

import "testing"

// TestPointInRect verifies hit testing including the inclusive edges.
func TestPointInRect(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"center", 50, 25, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 110, 60, true},
		{"left of rect", 9, 25, false},
		{"right of rect", 111, 25, false},
		{"above rect", 50, 9, false},
		{"below rect", 50, 61, false},
	}

	// Rectangle at (10, 10), 100 wide, 50 tall.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PointInRect(tt.px, tt.py, 10, 10, 100, 50)
			if result != tt.expected {
				t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.px, tt.py, result, tt.expected)
			}
		})
	}
}
