package gmath

import "github.com/go-gl/mathgl/mgl64"

// PointSegmentDistance returns the shortest distance from p to the segment
// ab, clamping the projection to the segment's parametric range [0, 1].
func PointSegmentDistance(p, a, b mgl64.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Sub(a).Len()
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).Len()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
