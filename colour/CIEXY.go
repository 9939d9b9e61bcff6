package colour

import (
	"fmt"

	"github.com/kainino0x/exact-css-xyz-matrices/matrix"
	"github.com/kainino0x/exact-css-xyz-matrices/rational"
)

// CIEXY is a point (x, y) on the CIE xy chromaticity diagram. y is never zero.
// Physical plausibility is not enforced here, see Validate.
type CIEXY struct {
	X rational.Rational
	Y rational.Rational
}

func NewCIEXY(x rational.Rational, y rational.Rational) (*CIEXY, error) {
	if y.IsZero() {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrDegenerateChromaticity, x, y)
	}
	return &CIEXY{X: x, Y: y}, nil
}

// NewCIEXYFromInts builds (xNum/xDen, yNum/yDen).
func NewCIEXYFromInts(xNum int64, xDen int64, yNum int64, yDen int64) (*CIEXY, error) {
	x, err := rational.NewFromInts(xNum, xDen)
	if err != nil {
		return nil, err
	}
	y, err := rational.NewFromInts(yNum, yDen)
	if err != nil {
		return nil, err
	}
	return NewCIEXY(x, y)
}

func mustCIEXY(xNum int64, xDen int64, yNum int64, yDen int64) *CIEXY {
	xy, err := NewCIEXYFromInts(xNum, xDen, yNum, yDen)
	if err != nil {
		panic(err)
	}
	return xy
}

// ToXYZ projects the chromaticity onto the Y = 1 plane:
// (x/y, 1, (1-x-y)/y).
func (xy *CIEXY) ToXYZ() matrix.Vector3 {
	bigX, err := xy.X.Div(xy.Y)
	if err != nil {
		// only reachable for a CIEXY built without NewCIEXY
		panic(fmt.Errorf("%w: %v", ErrDegenerateChromaticity, err))
	}
	bigZ, _ := rational.One().Sub(xy.X).Sub(xy.Y).Div(xy.Y)
	return matrix.NewVector3(bigX, rational.One(), bigZ)
}

// checkedXYZ is ToXYZ returning ErrDegenerateChromaticity instead of
// panicking on a CIEXY literal with y = 0.
func (xy *CIEXY) checkedXYZ() (matrix.Vector3, error) {
	if err := xy.checkY(); err != nil {
		return matrix.Vector3{}, err
	}
	return xy.ToXYZ(), nil
}

func (xy *CIEXY) checkY() error {
	if xy.Y.IsZero() {
		return fmt.Errorf("%w: (%s, %s)", ErrDegenerateChromaticity, xy.X, xy.Y)
	}
	return nil
}

// Validate reports whether the point could be a real colour:
// 0 <= x, 0 <= y and x + y <= 1. The algebra itself does not need this.
func (xy *CIEXY) Validate() error {
	if err := xy.checkY(); err != nil {
		return err
	}
	if xy.X.Sign() < 0 || xy.Y.Sign() < 0 || xy.X.Add(xy.Y).Cmp(rational.One()) > 0 {
		return fmt.Errorf("%w: (%s, %s)", ErrImplausibleChromaticity, xy.X, xy.Y)
	}
	return nil
}

// Matches reports exact equality. nil only matches nil.
func (xy *CIEXY) Matches(other *CIEXY) bool {
	if xy == nil || other == nil {
		return xy == other
	}
	return xy.X.Equal(other.X) && xy.Y.Equal(other.Y)
}

func (xy *CIEXY) String() string {
	return fmt.Sprintf("(%s, %s)", xy.X, xy.Y)
}
