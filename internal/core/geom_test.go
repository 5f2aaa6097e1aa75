package core

import "testing"

func TestAABBOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "one unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching edges horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "separated horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.99, 9.99, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AABBOverlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("AABBOverlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAABBOverlapSymmetric(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	for x := -15.0; x <= 15; x += 2.5 {
		for y := -15.0; y <= 15; y += 2.5 {
			for _, size := range []float64{1, 5, 10, 30} {
				other := NewRect(x, y, size, size)
				if AABBOverlap(base, other) != AABBOverlap(other, base) {
					t.Fatalf("AABBOverlap not symmetric for %+v and %+v", base, other)
				}
			}
		}
	}
}

// Point containment includes the boundary while AABB overlap excludes
// touching edges. Both boundary rules are deliberate.
func TestPointContainmentIsInclusive(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	c := Circle{C: Vec(0, 0), R: 5}

	tests := []struct {
		name     string
		got      bool
		expected bool
	}{
		{"rect corner", PointInRect(Vec(0, 0), r), true},
		{"rect far corner", PointInRect(Vec(10, 10), r), true},
		{"rect edge", PointInRect(Vec(10, 5), r), true},
		{"rect outside", PointInRect(Vec(10.01, 5), r), false},
		{"circle boundary", PointInCircle(Vec(5, 0), c), true},
		{"circle inside", PointInCircle(Vec(3, 3), c), true},
		{"circle outside", PointInCircle(Vec(4, 4), c), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}

	// The same boundary as a degenerate rectangle does not overlap.
	if AABBOverlap(r, NewRect(10, 10, 0, 0)) {
		t.Error("AABBOverlap() should exclude a rectangle sitting on the corner")
	}
}

func TestCircleOverlapIsStrict(t *testing.T) {
	a := Circle{C: Vec(0, 0), R: 5}

	if CircleOverlap(a, Circle{C: Vec(10, 0), R: 5}) {
		t.Error("tangent circles should not overlap")
	}
	if !CircleOverlap(a, Circle{C: Vec(9.9, 0), R: 5}) {
		t.Error("intersecting circles should overlap")
	}
}

func TestLineLine(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Vector
		expected       bool
	}{
		{"crossing", Vec(0, 0), Vec(10, 10), Vec(0, 10), Vec(10, 0), true},
		{"parallel", Vec(0, 0), Vec(10, 0), Vec(0, 5), Vec(10, 5), false},
		{"collinear overlapping", Vec(0, 0), Vec(10, 0), Vec(5, 0), Vec(15, 0), false},
		{"would cross if extended", Vec(0, 0), Vec(4, 4), Vec(0, 10), Vec(10, 0), false},
		{"touching at endpoint", Vec(0, 0), Vec(5, 5), Vec(5, 5), Vec(10, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LineLine(tc.a1, tc.a2, tc.b1, tc.b2); got != tc.expected {
				t.Errorf("LineLine() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSegmentRectIntersect(t *testing.T) {
	r := NewRect(10, 10, 10, 10)

	tests := []struct {
		name     string
		p1, p2   Vector
		expected bool
	}{
		{"both endpoints inside", Vec(12, 12), Vec(18, 18), true},
		{"one endpoint inside", Vec(0, 0), Vec(15, 15), true},
		{"passes through", Vec(0, 15), Vec(30, 15), true},
		{"diagonal through corner region", Vec(5, 25), Vec(25, 5), true},
		{"misses above", Vec(0, 5), Vec(30, 5), false},
		{"parallel to edge outside", Vec(21, 0), Vec(21, 30), false},
		{"ends short", Vec(0, 15), Vec(9, 15), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentRectIntersect(tc.p1, tc.p2, r); got != tc.expected {
				t.Errorf("SegmentRectIntersect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestScalarHelpers(t *testing.T) {
	if got := ClampF(12, 0, 10); got != 10 {
		t.Errorf("ClampF() = %v, expected 10", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp() = %v, expected 0", got)
	}
	if got := LerpF(0, 10, 0.25); got != 2.5 {
		t.Errorf("LerpF() = %v, expected 2.5", got)
	}
	if got := MapRange(5, 0, 10, 100, 200); got != 150 {
		t.Errorf("MapRange() = %v, expected 150", got)
	}
	if got := MapRange(5, 3, 3, 100, 200); got != 100 {
		t.Errorf("MapRange() with empty range = %v, expected 100", got)
	}
}
