package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() should be false for a 20x15 rect")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("Empty() should be true for zero width")
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(-0.9, 0.2, 0.1, 0.3)

	tests := []struct {
		name     string
		got      float32
		expected float32
	}{
		{"left", b.Left(), -0.95},
		{"right", b.Right(), -0.85},
		{"top", b.Top(), 0.35},
		{"bottom", b.Bottom(), 0.05},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			diff := tc.got - tc.expected
			if diff > 1e-6 || diff < -1e-6 {
				t.Errorf("%s = %f, expected %f", tc.name, tc.got, tc.expected)
			}
		})
	}
}

func TestBoxSpansY(t *testing.T) {
	b := NewBox(0, 0, 0.1, 0.3)

	tests := []struct {
		name     string
		y        float32
		expected bool
	}{
		{"center", 0, true},
		{"just inside top", 0.149, true},
		{"top edge (exclusive)", 0.15, false},
		{"bottom edge (exclusive)", -0.15, false},
		{"above", 0.5, false},
		{"below", -0.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.SpansY(tc.y); got != tc.expected {
				t.Errorf("SpansY(%f) = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
