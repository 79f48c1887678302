// Package gamemath holds small vector helpers shared by the simulation and the
// map generator. Positions are donburi math.Vec2 values in world pixels.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Distance returns the euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Direction returns the unit vector from a toward b, or the zero vector when
// the points coincide.
func Direction(from, to dmath.Vec2) dmath.Vec2 {
	return Normalize(dmath.Vec2{X: to.X - from.X, Y: to.Y - from.Y})
}

// Normalize scales v to unit length. The zero vector is returned unchanged.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}
}

// Scale multiplies v by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// VelocityToward returns the velocity that moves from toward to at speed
// without overshooting the destination.
func VelocityToward(from, to dmath.Vec2, speed float64) (velX, velY float64) {
	dist := Distance(from, to)
	if dist == 0 || speed <= 0 {
		return 0, 0
	}
	if dist < speed {
		speed = dist
	}
	dir := Direction(from, to)
	return dir.X * speed, dir.Y * speed
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RandomPointInRadius returns a point within radius of center. rnd supplies
// uniform values in [0,1).
func RandomPointInRadius(center dmath.Vec2, radius float64, rnd func() float64) dmath.Vec2 {
	angle := rnd() * 2 * math.Pi
	r := radius * math.Sqrt(rnd())
	return dmath.Vec2{X: center.X + math.Cos(angle)*r, Y: center.Y + math.Sin(angle)*r}
}
