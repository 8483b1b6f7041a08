// pkg/physics/quadtree.go
package physics

import "sort"

const minQuadWidth = 1e-3

// QuadTree for spatial partitioning of indexed points
type QuadTree struct {
	Boundary  Rect
	Capacity  int
	Points    []Vector2D
	Indices   []int
	Divided   bool
	NorthWest *QuadTree
	NorthEast *QuadTree
	SouthWest *QuadTree
	SouthEast *QuadTree

	// lo and hi are the exact edges of the node. Children share their
	// parent's split lines, so every point in the parent fits one child.
	lo, hi Vector2D
}

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// FieldRect returns the rectangle covering [0, size.X) x [0, size.Y)
func FieldRect(size Vector2D) Rect {
	return Rect{Center: size.Scale(0.5), Width: size.X, Height: size.Y}
}

// Min returns the lower corner
func (r Rect) Min() Vector2D {
	return Vector2D{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2}
}

// Max returns the upper corner
func (r Rect) Max() Vector2D {
	return Vector2D{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2}
}

// rectFromEdges builds a Rect spanning lo to hi
func rectFromEdges(lo, hi Vector2D) Rect {
	return Rect{Center: lo.Add(hi).Scale(0.5), Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Contains reports whether point lies inside the half-open rectangle
func (r Rect) Contains(point Vector2D) bool {
	lo, hi := r.Min(), r.Max()
	return point.X >= lo.X && point.X < hi.X &&
		point.Y >= lo.Y && point.Y < hi.Y
}

// ContainsClosed reports whether point lies inside the rectangle or on
// any of its edges
func (r Rect) ContainsClosed(point Vector2D) bool {
	lo, hi := r.Min(), r.Max()
	return point.X >= lo.X && point.X <= hi.X &&
		point.Y >= lo.Y && point.Y <= hi.Y
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree(boundary Rect, capacity int) *QuadTree {
	return newNode(boundary, boundary.Min(), boundary.Max(), capacity)
}

func newNode(boundary Rect, lo, hi Vector2D, capacity int) *QuadTree {
	return &QuadTree{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector2D, 0, capacity),
		Indices:  make([]int, 0, capacity),
		lo:       lo,
		hi:       hi,
	}
}

// contains tests point against the node's exact half-open edges
func (qt *QuadTree) contains(point Vector2D) bool {
	return point.X >= qt.lo.X && point.X < qt.hi.X &&
		point.Y >= qt.lo.Y && point.Y < qt.hi.Y
}

// Insert stores index at point. Points outside the boundary are rejected.
func (qt *QuadTree) Insert(point Vector2D, index int) bool {
	if !qt.contains(point) {
		return false
	}
	qt.insert(point, index)
	return true
}

func (qt *QuadTree) insert(point Vector2D, index int) {
	// stacked points would otherwise subdivide forever
	if !qt.Divided && (len(qt.Points) < qt.Capacity || qt.hi.X-qt.lo.X <= minQuadWidth) {
		qt.Points = append(qt.Points, point)
		qt.Indices = append(qt.Indices, index)
		return
	}

	if !qt.Divided {
		qt.Subdivide()
	}
	qt.quadrant(point).insert(point, index)
}

// quadrant picks the child holding point by comparing against the split
// lines, so a point on a line always lands somewhere
func (qt *QuadTree) quadrant(point Vector2D) *QuadTree {
	mid := qt.NorthEast.lo
	switch {
	case point.X < mid.X && point.Y >= mid.Y:
		return qt.NorthWest
	case point.Y >= mid.Y:
		return qt.NorthEast
	case point.X < mid.X:
		return qt.SouthWest
	default:
		return qt.SouthEast
	}
}

// Subdivide splits the quadtree into four quadrants
func (qt *QuadTree) Subdivide() {
	lo, hi := qt.lo, qt.hi
	mid := lo.Add(hi).Scale(0.5)

	child := func(lo, hi Vector2D) *QuadTree {
		return newNode(rectFromEdges(lo, hi), lo, hi, qt.Capacity)
	}
	qt.NorthWest = child(Vector2D{X: lo.X, Y: mid.Y}, Vector2D{X: mid.X, Y: hi.Y})
	qt.NorthEast = child(mid, hi)
	qt.SouthWest = child(lo, mid)
	qt.SouthEast = child(Vector2D{X: mid.X, Y: lo.Y}, Vector2D{X: hi.X, Y: mid.Y})
	qt.Divided = true
}

// Clear empties the tree, keeping its boundary and capacity
func (qt *QuadTree) Clear() {
	qt.Points = qt.Points[:0]
	qt.Indices = qt.Indices[:0]
	qt.Divided = false
	qt.NorthWest, qt.NorthEast, qt.SouthWest, qt.SouthEast = nil, nil, nil, nil
}

// Query returns the indices stored inside the closed area, in no
// particular order
func (qt *QuadTree) Query(area Rect) []int {
	return qt.query(area, nil)
}

func (qt *QuadTree) query(area Rect, found []int) []int {
	if !qt.intersects(area) {
		return found
	}

	for i, point := range qt.Points {
		if area.ContainsClosed(point) {
			found = append(found, qt.Indices[i])
		}
	}

	if !qt.Divided {
		return found
	}

	found = qt.NorthWest.query(area, found)
	found = qt.NorthEast.query(area, found)
	found = qt.SouthWest.query(area, found)
	found = qt.SouthEast.query(area, found)

	return found
}

// QueryWrapped returns the sorted, de-duplicated indices inside area on a
// torus of the given size. The area is replicated across each seam it
// crosses, so it must be no larger than the field itself.
func (qt *QuadTree) QueryWrapped(area Rect, size Vector2D) []int {
	var found []int
	for _, dx := range seamShifts(area.Center.X, area.Width, size.X) {
		for _, dy := range seamShifts(area.Center.Y, area.Height, size.Y) {
			shifted := area
			shifted.Center = area.Center.Add(Vector2D{X: dx, Y: dy})
			found = qt.query(shifted, found)
		}
	}

	sort.Ints(found)
	out := found[:0]
	for _, idx := range found {
		if len(out) == 0 || idx != out[len(out)-1] {
			out = append(out, idx)
		}
	}
	return out
}

// seamShifts lists the offsets at which an interval centred on c needs to
// be tested to cover its images inside [0, m).
func seamShifts(c, extent, m float64) []float64 {
	shifts := []float64{0}
	if c-extent/2 < 0 {
		shifts = append(shifts, m)
	}
	if c+extent/2 >= m {
		shifts = append(shifts, -m)
	}
	return shifts
}

// intersects reports whether the closed area overlaps the node
func (qt *QuadTree) intersects(area Rect) bool {
	lo, hi := area.Min(), area.Max()
	return !(lo.X > qt.hi.X || hi.X < qt.lo.X || lo.Y > qt.hi.Y || hi.Y < qt.lo.Y)
}
