package matrix

import (
	"github.com/kainino0x/exact-css-xyz-matrices/rational"
)

// Vector3 is an ordered triple, either a tristimulus (X, Y, Z) or an (R, G, B)
// point.
type Vector3 [3]rational.Rational

func NewVector3(a rational.Rational, b rational.Rational, c rational.Rational) Vector3 {
	return Vector3{a, b, c}
}

// Ones is (1, 1, 1), RGB white.
func Ones() Vector3 {
	return Vector3{rational.One(), rational.One(), rational.One()}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0].Add(o[0]), v[1].Add(o[1]), v[2].Add(o[2])}
}

func (v Vector3) Scale(s rational.Rational) Vector3 {
	return Vector3{v[0].Mul(s), v[1].Mul(s), v[2].Mul(s)}
}

func (v Vector3) Dot(o Vector3) rational.Rational {
	return v[0].Mul(o[0]).Add(v[1].Mul(o[1])).Add(v[2].Mul(o[2]))
}

func (v Vector3) Equal(o Vector3) bool {
	return v[0].Equal(o[0]) && v[1].Equal(o[1]) && v[2].Equal(o[2])
}

func (v Vector3) IsZero() bool {
	return v[0].IsZero() && v[1].IsZero() && v[2].IsZero()
}

// Float64s approximates each component. Display only.
func (v Vector3) Float64s() [3]float64 {
	var res [3]float64
	for i := range v {
		res[i], _ = v[i].Float64()
	}
	return res
}
