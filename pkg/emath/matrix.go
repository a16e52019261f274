package emath

// 3x3 matrixes, used for color transforms

import (
	"fmt"

	"golang.org/x/image/math/f64" // Will be "image/math/f64" at some point
)

type Vec3 f64.Vec3
type Mat3 f64.Mat3

// Apply multiplies the (column) vector by the matrix.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[3*0+0]*v[0] + m[3*0+1]*v[1] + m[3*0+2]*v[2],
		m[3*1+0]*v[0] + m[3*1+1]*v[1] + m[3*1+2]*v[2],
		m[3*2+0]*v[0] + m[3*2+1]*v[1] + m[3*2+2]*v[2],
	}
}

// ApplyRGB runs an 8-bit RGB triple through the matrix, and stores the
// result back as bytes.
func (m Mat3) ApplyRGB(r, g, b uint8) (uint8, uint8, uint8) {
	out := m.Apply(Vec3{float64(r), float64(g), float64(b)})
	return ToByte(out[0]), ToByte(out[1]), ToByte(out[2])
}

func (m Mat3) String() string {
	str := fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*0+0], m[3*0+1], m[3*0+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*1+0], m[3*1+1], m[3*1+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*2+0], m[3*2+1], m[3*2+2])
	return str
}
