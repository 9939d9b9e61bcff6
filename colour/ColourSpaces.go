package colour

import (
	"fmt"

	"github.com/kainino0x/exact-css-xyz-matrices/matrix"
)

// Predefined spaces as given by CSS Color 4. Other standards quote slightly
// different coordinates for some of these.
const (
	SPACE_SRGB       = "srgb"
	SPACE_DISPLAY_P3 = "display-p3"
	SPACE_A98_RGB    = "a98-rgb"
	SPACE_PROPHOTO   = "prophoto-rgb"
	SPACE_REC2020    = "rec2020"
	WHITE_POINT_D50  = "d50"
	WHITE_POINT_D65  = "d65"
)

var (
	CM_WP_D50 = mustCIEXY(3457, 10000, 3585, 10000)
	CM_WP_D65 = mustCIEXY(3127, 10000, 3290, 10000)

	CM_PRI_SRGB = NewCIEPrimaries(
		mustCIEXY(640, 1000, 330, 1000),
		mustCIEXY(300, 1000, 600, 1000),
		mustCIEXY(150, 1000, 60, 1000))

	CM_PRI_P3 = NewCIEPrimaries(
		mustCIEXY(680, 1000, 320, 1000),
		mustCIEXY(265, 1000, 690, 1000),
		mustCIEXY(150, 1000, 60, 1000))

	CM_PRI_A98 = NewCIEPrimaries(
		mustCIEXY(6400, 10000, 3300, 10000),
		mustCIEXY(2100, 10000, 7100, 10000),
		mustCIEXY(1500, 10000, 600, 10000))

	CM_PRI_PROPHOTO = NewCIEPrimaries(
		mustCIEXY(734_699, 1_000_000, 265_301, 1_000_000),
		mustCIEXY(159_597, 1_000_000, 840_403, 1_000_000),
		mustCIEXY(36_598, 1_000_000, 105, 1_000_000))

	CM_PRI_BT2100 = NewCIEPrimaries(
		mustCIEXY(708, 1000, 292, 1000),
		mustCIEXY(170, 1000, 797, 1000),
		mustCIEXY(131, 1000, 46, 1000))
)

// ColourSpace is one white point and three primaries.
type ColourSpace struct {
	Name       string
	WhitePoint CIEXY
	Primaries  CIEPrimaries
}

func NewColourSpace(name string, whitePoint *CIEXY, primaries *CIEPrimaries) ColourSpace {
	return ColourSpace{Name: name, WhitePoint: *whitePoint, Primaries: *primaries}
}

type deriveFunc func(white matrix.Vector3, primaries CIEPrimaries, opts ...DeriveOption) (matrix.Matrix3, error)

func (cs ColourSpace) derive(f deriveFunc, opts []DeriveOption) (matrix.Matrix3, error) {
	white, err := cs.WhitePoint.checkedXYZ()
	if err != nil {
		return matrix.Matrix3{}, fmt.Errorf("white point: %w", err)
	}
	return f(white, cs.Primaries, opts...)
}

// ToXYZ derives the RGB to XYZ matrix.
func (cs ColourSpace) ToXYZ(opts ...DeriveOption) (matrix.Matrix3, error) {
	return cs.derive(Derive, opts)
}

// FromXYZ derives the XYZ to RGB matrix.
func (cs ColourSpace) FromXYZ(opts ...DeriveOption) (matrix.Matrix3, error) {
	return cs.derive(XYZToRGB, opts)
}

// PrimariesXYZ derives the scaled primaries, one per row.
func (cs ColourSpace) PrimariesXYZ(opts ...DeriveOption) (matrix.Matrix3, error) {
	return cs.derive(PrimariesXYZ, opts)
}

// StandardSpaces returns the predefined spaces in a fixed order.
func StandardSpaces() []ColourSpace {
	return []ColourSpace{
		NewColourSpace(SPACE_SRGB, CM_WP_D65, CM_PRI_SRGB),
		NewColourSpace(SPACE_DISPLAY_P3, CM_WP_D65, CM_PRI_P3),
		NewColourSpace(SPACE_A98_RGB, CM_WP_D65, CM_PRI_A98),
		NewColourSpace(SPACE_PROPHOTO, CM_WP_D50, CM_PRI_PROPHOTO),
		NewColourSpace(SPACE_REC2020, CM_WP_D65, CM_PRI_BT2100),
	}
}

func LookupSpace(name string) (ColourSpace, bool) {
	for _, cs := range StandardSpaces() {
		if cs.Name == name {
			return cs, true
		}
	}
	return ColourSpace{}, false
}

// GetWhitePoint returns the named standard white point, or nil.
func GetWhitePoint(name string) *CIEXY {
	switch name {
	case WHITE_POINT_D50:
		return CM_WP_D50
	case WHITE_POINT_D65:
		return CM_WP_D65
	}
	return nil
}
