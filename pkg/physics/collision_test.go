// pkg/physics/collision_test.go
package physics

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: true, // closed bound
		},
		{
			name:     "circles_overlapping",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 5, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_not_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 15, Y: 0}, Radius: 5},
			expected: false,
		},
		{
			name:     "circles_same_position",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			circle2:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 2},
			expected: true,
		},
		{
			name:     "circles_diagonal_collision",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 3, Y: 4}, Radius: 3},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.circle1.Collides(tt.circle2)
			if result != tt.expected {
				t.Errorf("Circle.Collides() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestTestCirclePoint(t *testing.T) {
	center := Vector2D{X: 10, Y: 10}
	tests := []struct {
		name     string
		point    Vector2D
		expected bool
	}{
		{"center", Vector2D{X: 10, Y: 10}, true},
		{"inside", Vector2D{X: 12, Y: 11}, true},
		{"on_boundary", Vector2D{X: 13, Y: 14}, true},
		{"outside", Vector2D{X: 13, Y: 14.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TestCirclePoint(center, 5, tt.point); got != tt.expected {
				t.Errorf("TestCirclePoint(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
			if got := (Circle{Center: center, Radius: 5}).ContainsPoint(tt.point); got != tt.expected {
				t.Errorf("Circle.ContainsPoint(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestClosestPointOnTriangle_Regions(t *testing.T) {
	a := Vector2D{X: 0, Y: 0}
	b := Vector2D{X: 10, Y: 0}
	c := Vector2D{X: 0, Y: 10}

	tests := []struct {
		name     string
		p        Vector2D
		expected Vector2D
	}{
		{"vertex_a", Vector2D{X: -3, Y: -4}, a},
		{"vertex_b", Vector2D{X: 15, Y: -1}, b},
		{"vertex_c", Vector2D{X: -1, Y: 15}, c},
		{"edge_ab", Vector2D{X: 4, Y: -5}, Vector2D{X: 4, Y: 0}},
		{"edge_ca", Vector2D{X: -5, Y: 6}, Vector2D{X: 0, Y: 6}},
		{"edge_bc", Vector2D{X: 8, Y: 8}, Vector2D{X: 5, Y: 5}},
		{"inside", Vector2D{X: 2, Y: 3}, Vector2D{X: 2, Y: 3}},
		{"on_edge", Vector2D{X: 5, Y: 0}, Vector2D{X: 5, Y: 0}},
		{"on_vertex", b, b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// both windings must agree
			for _, got := range []Vector2D{
				ClosestPointOnTriangle(tt.p, a, b, c),
				ClosestPointOnTriangle(tt.p, a, c, b),
				ClosestPointOnTriangle(tt.p, c, b, a),
			} {
				if got.Distance(tt.expected) > 1e-9 {
					t.Errorf("ClosestPointOnTriangle(%v) = %v, expected %v", tt.p, got, tt.expected)
				}
			}
		})
	}
}

func TestClosestPointOnTriangle_Degenerate(t *testing.T) {
	a := Vector2D{X: 0, Y: 0}
	b := Vector2D{X: 5, Y: 0}
	c := Vector2D{X: 10, Y: 0}

	got := ClosestPointOnTriangle(Vector2D{X: 7, Y: 3}, a, b, c)
	if got.Distance(Vector2D{X: 7, Y: 0}) > 1e-9 {
		t.Errorf("ClosestPointOnTriangle() on collinear triangle = %v, expected (7, 0)", got)
	}

	got = ClosestPointOnTriangle(Vector2D{X: 1, Y: 1}, a, a, a)
	if got != a {
		t.Errorf("ClosestPointOnTriangle() on point triangle = %v, expected %v", got, a)
	}
}

// pointInTriangle is an independent sign-of-area test used as reference
func pointInTriangle(p, a, b, c Vector2D) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// bruteForceDistance samples the triangle boundary densely
func bruteForceDistance(p, a, b, c Vector2D) float64 {
	if pointInTriangle(p, a, b, c) {
		return 0
	}
	const samples = 2000
	best := math.Inf(1)
	for _, edge := range [][2]Vector2D{{a, b}, {b, c}, {c, a}} {
		for i := 0; i <= samples; i++ {
			q := edge[0].Lerp(edge[1], float64(i)/samples)
			best = math.Min(best, q.Distance(p))
		}
	}
	return best
}

func randomPoint(r *rand.Rand, extent float64) Vector2D {
	return Vector2D{X: (r.Float64()*2 - 1) * extent, Y: (r.Float64()*2 - 1) * extent}
}

func TestClosestPointOnTriangle_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 300; i++ {
		a, b, c := randomPoint(r, 50), randomPoint(r, 50), randomPoint(r, 50)
		if math.Abs(b.Sub(a).Cross(c.Sub(a))) < 1 {
			continue
		}
		p := randomPoint(r, 80)

		got := ClosestPointOnTriangle(p, a, b, c)
		if pointInTriangle(p, a, b, c) {
			if got.Distance(p) > 1e-6 {
				t.Fatalf("inside point %v moved to %v (triangle %v %v %v)", p, got, a, b, c)
			}
			continue
		}

		onBoundary := math.Min(math.Min(
			ClosestPointOnSegment(got, a, b).Distance(got),
			ClosestPointOnSegment(got, b, c).Distance(got)),
			ClosestPointOnSegment(got, c, a).Distance(got))
		if onBoundary > 1e-6 {
			t.Fatalf("closest point %v for %v is not on the boundary", got, p)
		}

		want := bruteForceDistance(p, a, b, c)
		// sampling step bounds the reference error
		if math.Abs(got.Distance(p)-want) > 0.1 || got.Distance(p) > want+1e-9 {
			t.Fatalf("distance %v, brute force %v (p=%v triangle %v %v %v)",
				got.Distance(p), want, p, a, b, c)
		}
	}
}

func TestTestCircleTriangle_AgreesWithBruteForce(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 500; i++ {
		a, b, c := randomPoint(r, 40), randomPoint(r, 40), randomPoint(r, 40)
		if math.Abs(b.Sub(a).Cross(c.Sub(a))) < 1 {
			continue
		}
		center := randomPoint(r, 60)
		radius := r.Float64() * 20

		want := bruteForceDistance(center, a, b, c)
		// skip circles grazing the boundary within the sampling error
		if math.Abs(want-radius) < 0.1 {
			continue
		}
		got := TestCircleTriangle(center, radius, a, b, c)
		if got != (want <= radius) {
			t.Fatalf("TestCircleTriangle(%v, %v) = %v, brute force distance %v (triangle %v %v %v)",
				center, radius, got, want, a, b, c)
		}
	}
}

func TestTestCircleTriangle_TouchingEdge(t *testing.T) {
	a := Vector2D{X: 0, Y: 0}
	b := Vector2D{X: 10, Y: 0}
	c := Vector2D{X: 0, Y: 10}

	if !TestCircleTriangle(Vector2D{X: 5, Y: -2}, 2, a, b, c) {
		t.Error("circle tangent to an edge must intersect")
	}
	if TestCircleTriangle(Vector2D{X: 5, Y: -2.001}, 2, a, b, c) {
		t.Error("circle just below an edge must not intersect")
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := Vector2D{X: 0, Y: 0}
	b := Vector2D{X: 10, Y: 0}
	tests := []struct {
		name     string
		p        Vector2D
		expected Vector2D
	}{
		{"before_start", Vector2D{X: -5, Y: 1}, a},
		{"after_end", Vector2D{X: 12, Y: 1}, b},
		{"middle", Vector2D{X: 3, Y: 4}, Vector2D{X: 3, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestPointOnSegment(tt.p, a, b); got != tt.expected {
				t.Errorf("ClosestPointOnSegment(%v) = %v, expected %v", tt.p, got, tt.expected)
			}
		})
	}
}

// Benchmark tests for performance validation
func BenchmarkCircle_Collides(b *testing.B) {
	circle1 := Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5}
	circle2 := Circle{Center: Vector2D{X: 8, Y: 0}, Radius: 5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		circle1.Collides(circle2)
	}
}

func BenchmarkTestCircleTriangle(b *testing.B) {
	a := Vector2D{X: 0, Y: 0}
	v := Vector2D{X: 10, Y: 0}
	c := Vector2D{X: 0, Y: 10}
	center := Vector2D{X: 8, Y: 8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TestCircleTriangle(center, 1, a, v, c)
	}
}
