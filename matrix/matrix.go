package matrix

import (
	"errors"

	"github.com/kainino0x/exact-css-xyz-matrices/rational"
)

var (
	ErrSingularMatrix = errors.New("matrix: singular matrix")
)

// Matrix3 is a row-major 3x3 matrix of exact rationals. It is a value type:
// every operation returns a new Matrix3 and leaves its operands untouched.
type Matrix3 [3]Vector3

func Identity() Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		m[i][i] = rational.One()
	}
	return m
}

// FromColumns builds the matrix whose columns are a, b and c.
func FromColumns(a Vector3, b Vector3, c Vector3) Matrix3 {
	return Matrix3{
		{a[0], b[0], c[0]},
		{a[1], b[1], c[1]},
		{a[2], b[2], c[2]},
	}
}

func FromRows(a Vector3, b Vector3, c Vector3) Matrix3 {
	return Matrix3{a, b, c}
}

// Diagonal returns the matrix with v on its diagonal and zero elsewhere.
func Diagonal(v Vector3) Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		m[i][i] = v[i]
	}
	return m
}

func (m Matrix3) Row(i int) Vector3 {
	return m[i]
}

func (m Matrix3) Column(i int) Vector3 {
	return Vector3{m[0][i], m[1][i], m[2][i]}
}

// Determinant is the cofactor expansion along the first row.
func (m Matrix3) Determinant() rational.Rational {
	a := m[1][1].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][1]))
	b := m[1][2].Mul(m[2][0]).Sub(m[1][0].Mul(m[2][2]))
	c := m[1][0].Mul(m[2][1]).Sub(m[1][1].Mul(m[2][0]))
	return m[0][0].Mul(a).Add(m[0][1].Mul(b)).Add(m[0][2].Mul(c))
}

// cofactors returns the matrix of signed 2x2 minors.
func (m Matrix3) cofactors() Matrix3 {
	minor := func(r0, r1, c0, c1 int) rational.Rational {
		return m[r0][c0].Mul(m[r1][c1]).Sub(m[r0][c1].Mul(m[r1][c0]))
	}
	return Matrix3{
		{minor(1, 2, 1, 2), minor(1, 2, 2, 0), minor(1, 2, 0, 1)},
		{minor(2, 0, 1, 2), minor(2, 0, 2, 0), minor(2, 0, 0, 1)},
		{minor(0, 1, 1, 2), minor(0, 1, 2, 0), minor(0, 1, 0, 1)},
	}
}

// Adjugate is the transpose of the cofactor matrix.
func (m Matrix3) Adjugate() Matrix3 {
	return m.cofactors().Transpose()
}

// Invert returns adj(m) / det(m), or ErrSingularMatrix when det(m) == 0.
func (m Matrix3) Invert() (Matrix3, error) {
	det := m.Determinant()
	if det.IsZero() {
		return Matrix3{}, ErrSingularMatrix
	}
	adj := m.Adjugate()
	var res Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			q, err := adj[i][j].Div(det)
			if err != nil {
				return Matrix3{}, err
			}
			res[i][j] = q
		}
	}
	return res, nil
}

func (m Matrix3) Transpose() Matrix3 {
	return FromColumns(m[0], m[1], m[2])
}

func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var res Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = m[i].Dot(o.Column(j))
		}
	}
	return res
}

func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// ScaleColumns multiplies column i by s[i].
func (m Matrix3) ScaleColumns(s Vector3) Matrix3 {
	var res Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = m[i][j].Mul(s[j])
		}
	}
	return res
}

// Solve returns x with m·x == b.
func (m Matrix3) Solve(b Vector3) (Vector3, error) {
	inv, err := m.Invert()
	if err != nil {
		return Vector3{}, err
	}
	return inv.MulVec(b), nil
}

func (m Matrix3) Equal(o Matrix3) bool {
	return m[0].Equal(o[0]) && m[1].Equal(o[1]) && m[2].Equal(o[2])
}

func (m Matrix3) IsIdentity() bool {
	return m.Equal(Identity())
}

// Float64s approximates every entry. Display only.
func (m Matrix3) Float64s() [3][3]float64 {
	return [3][3]float64{m[0].Float64s(), m[1].Float64s(), m[2].Float64s()}
}

func Determinant(m Matrix3) rational.Rational {
	return m.Determinant()
}

func Invert(m Matrix3) (Matrix3, error) {
	return m.Invert()
}

func Transpose(m Matrix3) Matrix3 {
	return m.Transpose()
}
