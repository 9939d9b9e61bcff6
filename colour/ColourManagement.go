package colour

import (
	"errors"
	"fmt"

	"github.com/kainino0x/exact-css-xyz-matrices/matrix"
	"github.com/kainino0x/exact-css-xyz-matrices/rational"
)

var (
	ErrDegenerateChromaticity  = errors.New("colour: degenerate chromaticity, y is zero")
	ErrImplausibleChromaticity = errors.New("colour: chromaticity outside the physical range")
	ErrSingularPrimaries       = errors.New("colour: primaries do not span XYZ")
	ErrMissingPrimary          = errors.New("colour: missing primary")

	// Bradford cone response matrix, taken as exact decimals.
	BRADFORD = matrix.Matrix3{
		{rational.MustNew(8951, 10000), rational.MustNew(2664, 10000), rational.MustNew(-1614, 10000)},
		{rational.MustNew(-7502, 10000), rational.MustNew(17135, 10000), rational.MustNew(367, 10000)},
		{rational.MustNew(389, 10000), rational.MustNew(-685, 10000), rational.MustNew(10296, 10000)},
	}

	BRADFORD_INVERSE = mustInvert(BRADFORD)
)

func mustInvert(m matrix.Matrix3) matrix.Matrix3 {
	inv, err := m.Invert()
	if err != nil {
		panic(err)
	}
	return inv
}

type deriveSettings struct {
	validate bool
}

type DeriveOption func(s *deriveSettings)

// WithPhysicalValidation rejects primaries outside 0 <= x, 0 <= y, x + y <= 1
// with ErrImplausibleChromaticity before deriving.
func WithPhysicalValidation() DeriveOption {
	return func(s *deriveSettings) {
		s.validate = true
	}
}

// Derive returns the RGB to XYZ matrix for the given primaries such that
// RGB (1, 1, 1) maps exactly to white.
//
// The unscaled matrix M has the primaries' XYZ projections as columns. Solving
// M·S = white gives how much of each primary makes up white, and column i of M
// is then scaled by S[i].
func Derive(white matrix.Vector3, primaries CIEPrimaries, opts ...DeriveOption) (matrix.Matrix3, error) {
	settings := &deriveSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	if settings.validate {
		for _, p := range primaries.all() {
			if p == nil {
				return matrix.Matrix3{}, ErrMissingPrimary
			}
			if err := p.Validate(); err != nil {
				return matrix.Matrix3{}, err
			}
		}
	}

	unscaled, err := primaries.Matrix()
	if err != nil {
		return matrix.Matrix3{}, err
	}
	scale, err := unscaled.Solve(white)
	if err != nil {
		return matrix.Matrix3{}, fmt.Errorf("%w: %w", ErrSingularPrimaries, err)
	}
	return unscaled.ScaleColumns(scale), nil
}

// RGBToXYZ is Derive.
func RGBToXYZ(white matrix.Vector3, primaries CIEPrimaries, opts ...DeriveOption) (matrix.Matrix3, error) {
	return Derive(white, primaries, opts...)
}

// XYZToRGB is the inverse of Derive.
func XYZToRGB(white matrix.Vector3, primaries CIEPrimaries, opts ...DeriveOption) (matrix.Matrix3, error) {
	m, err := Derive(white, primaries, opts...)
	if err != nil {
		return matrix.Matrix3{}, err
	}
	return m.Invert()
}

// PrimariesXYZ is the transpose of Derive: row i holds primary i in XYZ,
// scaled by its white point weight.
func PrimariesXYZ(white matrix.Vector3, primaries CIEPrimaries, opts ...DeriveOption) (matrix.Matrix3, error) {
	m, err := Derive(white, primaries, opts...)
	if err != nil {
		return matrix.Matrix3{}, err
	}
	return m.Transpose(), nil
}

// AdaptWhitePoint returns the Bradford matrix taking XYZ relative to currentWP
// to XYZ relative to targetWP. A nil targetWP means D50 and a nil currentWP
// means D65. Both white points must be physically plausible.
func AdaptWhitePoint(targetWP *CIEXY, currentWP *CIEXY) (matrix.Matrix3, error) {
	if targetWP == nil {
		targetWP = CM_WP_D50
	}
	if currentWP == nil {
		currentWP = CM_WP_D65
	}
	if err := targetWP.Validate(); err != nil {
		return matrix.Matrix3{}, err
	}
	if err := currentWP.Validate(); err != nil {
		return matrix.Matrix3{}, err
	}
	if targetWP.Matches(currentWP) {
		return matrix.Identity(), nil
	}

	targetLMS := BRADFORD.MulVec(targetWP.ToXYZ())
	currentLMS := BRADFORD.MulVec(currentWP.ToXYZ())
	var ratio matrix.Vector3
	for i := 0; i < 3; i++ {
		r, err := targetLMS[i].Div(currentLMS[i])
		if err != nil {
			return matrix.Matrix3{}, fmt.Errorf("adapting white point %s: %w", currentWP, err)
		}
		ratio[i] = r
	}
	return BRADFORD_INVERSE.Mul(matrix.Diagonal(ratio)).Mul(BRADFORD), nil
}

// ConversionMatrix returns the matrix taking linear RGB in current to linear
// RGB in target, adapting the white point with Bradford when they differ.
func ConversionMatrix(target ColourSpace, current ColourSpace, opts ...DeriveOption) (matrix.Matrix3, error) {
	if target.Primaries.Matches(&current.Primaries) && target.WhitePoint.Matches(&current.WhitePoint) {
		return matrix.Identity(), nil
	}

	whitePointConv := matrix.Identity()
	if !target.WhitePoint.Matches(&current.WhitePoint) {
		var err error
		if whitePointConv, err = AdaptWhitePoint(&target.WhitePoint, &current.WhitePoint); err != nil {
			return matrix.Matrix3{}, err
		}
	}

	forward, err := current.ToXYZ(opts...)
	if err != nil {
		return matrix.Matrix3{}, fmt.Errorf("%s: %w", current.Name, err)
	}
	reverse, err := target.FromXYZ(opts...)
	if err != nil {
		return matrix.Matrix3{}, fmt.Errorf("%s: %w", target.Name, err)
	}
	return reverse.Mul(whitePointConv).Mul(forward), nil
}
