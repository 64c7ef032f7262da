package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 20, 6)
	if r.X != 30 || r.Y != 9 || r.W != 20 || r.H != 6 {
		t.Errorf("CenteredRect() = %+v, expected {30 9 20 6}", r)
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		aspect         float64
		expected       float64
	}{
		{"same point", 3, 4, 3, 4, 2, 0},
		{"horizontal only", 0, 0, 3, 0, 2, 3},
		{"vertical plain", 0, 0, 0, 4, 1, 4},
		{"vertical scaled", 0, 0, 0, 4, 2, 8},
		{"3-4-5 triangle", 0, 0, 3, 2, 2, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Dist(tc.ax, tc.ay, tc.bx, tc.by, tc.aspect)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist() = %f, expected %f", got, tc.expected)
			}
			// Symmetric
			back := Dist(tc.bx, tc.by, tc.ax, tc.ay, tc.aspect)
			if math.Abs(back-got) > 1e-9 {
				t.Errorf("Dist() not symmetric: %f vs %f", got, back)
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestFaded(t *testing.T) {
	tests := []struct {
		alpha   float64
		want    Color
		visible bool
	}{
		{1.0, ColorRed, true},
		{0.5, ColorRed, true},
		{0.49, ColorGray, true},
		{0.25, ColorGray, true},
		{0.1, ColorRed, false},
	}

	for _, tc := range tests {
		c, ok := Faded(ColorRed, tc.alpha)
		if ok != tc.visible || (ok && c != tc.want) {
			t.Errorf("Faded(red, %.2f) = (%d, %v), expected (%d, %v)", tc.alpha, c, ok, tc.want, tc.visible)
		}
	}
}
