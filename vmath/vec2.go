// Package vmath provides small float64 2D vector and matrix helpers for canvas applications
package vmath

import (
	"fmt"
	"math"
)

// Vec2 is a float64 2D vector
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// MagSq returns squared magnitude without sqrt
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalized returns the unit vector, zero-safe
func (v Vec2) Normalized() Vec2 {
	mag := v.Mag()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// Round rounds both components half away from zero
func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

// Ints returns the rounded components as pixel coordinates
func (v Vec2) Ints() (int, int) {
	r := v.Round()
	return int(r.X), int(r.Y)
}

// Reflect returns the vector reflected off a surface with unit normal n
// v' = v - 2 * dot(v, n) * n
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Perpendicular returns the vector rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// String formats as "[x;y]"
func (v Vec2) String() string {
	return fmt.Sprintf("[%g;%g]", v.X, v.Y)
}

// Lerp interpolates between a and b, t in [0,1]
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
