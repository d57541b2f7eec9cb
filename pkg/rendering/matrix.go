package rendering

import "math"

// Matrix is a 3x3 projective transform stored row-major:
//
//	| M[0] M[1] M[2] |   | x |
//	| M[3] M[4] M[5] | * | y |
//	| M[6] M[7] M[8] |   | 1 |
//
// The bottom row is (0, 0, 1) for affine transforms. Points are mapped with a
// perspective divide by the third component.
type Matrix [9]float64

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// TranslateMatrix returns a translation by (dx, dy).
func TranslateMatrix(dx, dy float64) Matrix {
	return Matrix{1, 0, dx, 0, 1, dy, 0, 0, 1}
}

// ScaleMatrix returns a scale by (sx, sy) about the origin.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Multiply returns m * other: other is applied to a point first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	var out Matrix
	for row := range 3 {
		for col := range 3 {
			out[row*3+col] = m[row*3]*other[col] +
				m[row*3+1]*other[3+col] +
				m[row*3+2]*other[6+col]
		}
	}
	return out
}

// PreTranslate returns m * T(dx, dy): the translation applies before m.
func (m Matrix) PreTranslate(dx, dy float64) Matrix {
	return m.Multiply(TranslateMatrix(dx, dy))
}

// PostTranslate returns T(dx, dy) * m: the translation applies after m.
func (m Matrix) PostTranslate(dx, dy float64) Matrix {
	return TranslateMatrix(dx, dy).Multiply(m)
}

// IsAffine reports whether the matrix has no perspective component.
func (m Matrix) IsAffine() bool {
	return m[6] == 0 && m[7] == 0 && m[8] == 1
}

// IsTranslate reports whether the matrix only translates.
func (m Matrix) IsTranslate() bool {
	return m.IsAffine() && m[0] == 1 && m[1] == 0 && m[3] == 0 && m[4] == 1
}

// Map applies the transform to p. Points that project to infinity map to
// the origin.
func (m Matrix) Map(p Offset) Offset {
	x := m[0]*p.X + m[1]*p.Y + m[2]
	y := m[3]*p.X + m[4]*p.Y + m[5]
	w := m[6]*p.X + m[7]*p.Y + m[8]
	if w == 0 {
		return Offset{}
	}
	return Offset{X: x / w, Y: y / w}
}

// MapRect returns the bounding box of r's four mapped corners.
func (m Matrix) MapRect(r Rect) Rect {
	return BoundsOf(
		m.Map(Offset{X: r.Left, Y: r.Top}),
		m.Map(Offset{X: r.Right, Y: r.Top}),
		m.Map(Offset{X: r.Right, Y: r.Bottom}),
		m.Map(Offset{X: r.Left, Y: r.Bottom}),
	)
}

// Invert returns the inverse transform and false when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	coA := e*i - f*h
	coB := -(d*i - f*g)
	coC := d*h - e*g
	det := a*coA + b*coB + c*coC
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		coA * inv, -(b*i - c*h) * inv, (b*f - c*e) * inv,
		coB * inv, (a*i - c*g) * inv, -(a*f - c*d) * inv,
		coC * inv, -(a*h - b*g) * inv, (a*e - b*d) * inv,
	}, true
}
