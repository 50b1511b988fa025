package vmath

import (
	"fmt"
	"math"
)

// Mat2 is a row-major 2x2 matrix: [M[0] M[1]; M[2] M[3]]
// The zero value is not the identity, use Identity
type Mat2 struct {
	M [4]float64
}

// Identity returns the 2x2 identity matrix
func Identity() Mat2 {
	return Mat2{M: [4]float64{1, 0, 0, 1}}
}

// Rotation returns a counter-clockwise rotation by angle radians
func Rotation(angle float64) Mat2 {
	s, c := math.Sincos(angle)
	return Mat2{M: [4]float64{c, -s, s, c}}
}

// Scaling returns a diagonal scale matrix
func Scaling(s Vec2) Mat2 {
	return Mat2{M: [4]float64{s.X, 0, 0, s.Y}}
}

// Mul returns m * o
func (m Mat2) Mul(o Mat2) Mat2 {
	a, b := m.M, o.M
	return Mat2{M: [4]float64{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
	}}
}

// MulVec returns m * v
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m.M[0]*v.X + m.M[1]*v.Y,
		Y: m.M[2]*v.X + m.M[3]*v.Y,
	}
}

// Rotate returns m post-multiplied by a rotation of angle radians
func (m Mat2) Rotate(angle float64) Mat2 {
	return m.Mul(Rotation(angle))
}

// Scale returns m post-multiplied by a diagonal scale of s
func (m Mat2) Scale(s Vec2) Mat2 {
	return m.Mul(Scaling(s))
}

// Det returns the determinant
func (m Mat2) Det() float64 {
	return m.M[0]*m.M[3] - m.M[1]*m.M[2]
}

func (m Mat2) String() string {
	return fmt.Sprintf("[%g %g; %g %g]", m.M[0], m.M[1], m.M[2], m.M[3])
}
