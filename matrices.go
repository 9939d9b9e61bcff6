package exactxyz

import (
	"errors"
	"fmt"

	"github.com/kainino0x/exact-css-xyz-matrices/colour"
	"github.com/kainino0x/exact-css-xyz-matrices/matrix"
)

var ErrUnknownSpace = errors.New("unknown colour space")

// Matrices are the exact conversion matrices of one colour space.
type Matrices struct {
	// Primaries holds each scaled primary in XYZ, one per row.
	Primaries matrix.Matrix3
	ToXYZ     matrix.Matrix3
	FromXYZ   matrix.Matrix3
}

// ForSpace derives the matrices of a predefined colour space by name, such as
// "srgb" or "display-p3".
func ForSpace(name string, opts ...colour.DeriveOption) (Matrices, error) {
	cs, ok := colour.LookupSpace(name)
	if !ok {
		return Matrices{}, fmt.Errorf("%w: %s", ErrUnknownSpace, name)
	}
	return For(cs, opts...)
}

// For derives the matrices of any colour space.
func For(cs colour.ColourSpace, opts ...colour.DeriveOption) (Matrices, error) {
	toXYZ, err := cs.ToXYZ(opts...)
	if err != nil {
		return Matrices{}, err
	}
	fromXYZ, err := toXYZ.Invert()
	if err != nil {
		return Matrices{}, err
	}
	return Matrices{Primaries: toXYZ.Transpose(), ToXYZ: toXYZ, FromXYZ: fromXYZ}, nil
}
