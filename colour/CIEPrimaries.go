package colour

import (
	"github.com/kainino0x/exact-css-xyz-matrices/matrix"
)

type CIEPrimaries struct {
	Red   *CIEXY
	Green *CIEXY
	Blue  *CIEXY
}

func NewCIEPrimaries(red *CIEXY, green *CIEXY, blue *CIEXY) *CIEPrimaries {
	cp := &CIEPrimaries{}
	cp.Red = red
	cp.Green = green
	cp.Blue = blue
	return cp
}

func (cp *CIEPrimaries) all() [3]*CIEXY {
	return [3]*CIEXY{cp.Red, cp.Green, cp.Blue}
}

// Matrix returns the unscaled primaries matrix: column i is primary i
// projected to XYZ.
func (cp *CIEPrimaries) Matrix() (matrix.Matrix3, error) {
	var cols [3]matrix.Vector3
	for i, p := range cp.all() {
		if p == nil {
			return matrix.Matrix3{}, ErrMissingPrimary
		}
		col, err := p.checkedXYZ()
		if err != nil {
			return matrix.Matrix3{}, err
		}
		cols[i] = col
	}
	return matrix.FromColumns(cols[0], cols[1], cols[2]), nil
}

func (cp *CIEPrimaries) Matches(other *CIEPrimaries) bool {
	if cp == nil || other == nil {
		return cp == other
	}
	return cp.Red.Matches(other.Red) && cp.Green.Matches(other.Green) && cp.Blue.Matches(other.Blue)
}
