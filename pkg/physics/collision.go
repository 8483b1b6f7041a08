// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are touching or overlapping
func (c Circle) Collides(other Circle) bool {
	r := c.Radius + other.Radius
	return c.Center.Sub(other.Center).LengthSquared() <= r*r
}

// ContainsPoint reports whether point lies inside or on the circle
func (c Circle) ContainsPoint(point Vector2D) bool {
	return TestCirclePoint(c.Center, c.Radius, point)
}

// TestCirclePoint reports whether point lies within radius of center.
// The bound is closed so a point exactly on the circle intersects.
func TestCirclePoint(center Vector2D, radius float64, point Vector2D) bool {
	return center.Sub(point).LengthSquared() <= radius*radius
}

// TestCircleTriangle reports whether the circle intersects the closed
// triangle abc, interior included.
func TestCircleTriangle(center Vector2D, radius float64, a, b, c Vector2D) bool {
	return TestCirclePoint(center, radius, ClosestPointOnTriangle(center, a, b, c))
}

// ClosestPointOnTriangle returns the point of the closed triangle abc
// (interior included) nearest to p. Vertices may be given in either winding.
//
// Adapted from Ericson, Real-Time Collision Detection, ClosestPtPointTriangle.
// Every region test uses closed bounds: points on a vertex or an edge are
// classified into that vertex or edge region, never into the face.
func ClosestPointOnTriangle(p, a, b, c Vector2D) Vector2D {
	ab, bc, ca := b.Sub(a), c.Sub(b), a.Sub(c)
	ap, bp, cp := p.Sub(a), p.Sub(b), p.Sub(c)

	// parametric position of p projected on each edge, as nom/(nom+denom)
	abNom, abDenom := ap.Dot(ab), -bp.Dot(ab)
	bcNom, bcDenom := bp.Dot(bc), -cp.Dot(bc)
	caNom, caDenom := cp.Dot(ca), -ap.Dot(ca)

	// vertex regions
	if abNom <= 0 && caDenom <= 0 {
		return a
	}
	if bcNom <= 0 && abDenom <= 0 {
		return b
	}
	if caNom <= 0 && bcDenom <= 0 {
		return c
	}

	// n carries the winding; each triple product n*[xp, yp] is positive
	// while p is strictly on the inner side of edge xy
	n := ab.Cross(ca.Scale(-1))
	if n == 0 {
		return closestPointOnDegenerate(p, a, b, c)
	}

	wc := n * ap.Scale(-1).Cross(bp.Scale(-1))
	if wc <= 0 && abNom >= 0 && abDenom >= 0 {
		return a.Add(ab.Scale(abNom / (abNom + abDenom)))
	}
	wa := n * bp.Scale(-1).Cross(cp.Scale(-1))
	if wa <= 0 && bcNom >= 0 && bcDenom >= 0 {
		return b.Add(bc.Scale(bcNom / (bcNom + bcDenom)))
	}
	wb := n * cp.Scale(-1).Cross(ap.Scale(-1))
	if wb <= 0 && caNom >= 0 && caDenom >= 0 {
		return c.Add(ca.Scale(caNom / (caNom + caDenom)))
	}

	// face region
	sum := wa + wb + wc
	u, v := wa/sum, wb/sum
	w := 1 - u - v
	return a.Scale(u).Add(b.Scale(v)).Add(c.Scale(w))
}

// ClosestPointOnSegment returns the point of segment ab nearest to p
func ClosestPointOnSegment(p, a, b Vector2D) Vector2D {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	default:
		return a.Add(ab.Scale(t))
	}
}

// closestPointOnDegenerate handles zero-area triangles, which reduce to
// their three edges.
func closestPointOnDegenerate(p, a, b, c Vector2D) Vector2D {
	best := ClosestPointOnSegment(p, a, b)
	bestDist := best.Sub(p).LengthSquared()
	for _, candidate := range []Vector2D{
		ClosestPointOnSegment(p, b, c),
		ClosestPointOnSegment(p, c, a),
	} {
		if d := candidate.Sub(p).LengthSquared(); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
