package rational

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	ErrZeroDenominator = errors.New("rational: zero denominator")
	ErrDivisionByZero  = errors.New("rational: division by zero")
	ErrSyntax          = errors.New("rational: invalid syntax")
)

// plain base 10 only, big.Rat.SetString would also take 0x1p-2, 0b101 and
// unbounded exponents
var decimalPattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

// Rational is an exact fraction held in lowest terms with a positive
// denominator. Values are immutable: every operation returns a new Rational
// and the underlying big.Rat is never written after construction.
// The zero value is 0/1.
type Rational struct {
	r *big.Rat
}

// New returns num/den reduced to lowest terms.
func New(num *big.Int, den *big.Int) (Rational, error) {
	if den == nil || den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if num == nil {
		num = new(big.Int)
	}
	return Rational{r: new(big.Rat).SetFrac(num, den)}, nil
}

// NewFromInts is New for any Go integer type.
func NewFromInts[T constraints.Integer](num T, den T) (Rational, error) {
	return New(toBig(num), toBig(den))
}

// MustNew is NewFromInts that panics on a zero denominator. Only meant for
// literal tables.
func MustNew[T constraints.Integer](num T, den T) Rational {
	r, err := NewFromInts(num, den)
	if err != nil {
		panic(fmt.Sprintf("rational: MustNew(%d, %d): %v", num, den, err))
	}
	return r
}

func FromInt[T constraints.Integer](n T) Rational {
	return Rational{r: new(big.Rat).SetInt(toBig(n))}
}

func Zero() Rational {
	return Rational{}
}

func One() Rational {
	return FromInt(1)
}

// Parse reads "n/d", an integer or a finite decimal such as "0.3127".
// Decimals are converted exactly, never through a float.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}
	if num, den, found := strings.Cut(s, "/"); found {
		n, okN := new(big.Int).SetString(strings.TrimSpace(num), 10)
		d, okD := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !okN || !okD {
			return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		return New(n, d)
	}
	if !decimalPattern.MatchString(s) {
		return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return Rational{r: r}, nil
}

func toBig[T constraints.Integer](v T) *big.Int {
	// unsigned values above MaxInt64 do not survive the int64 conversion
	if v > 0 && uint64(v) > 1<<63-1 {
		return new(big.Int).SetUint64(uint64(v))
	}
	return big.NewInt(int64(v))
}

var zeroRat = new(big.Rat)

func (a Rational) rat() *big.Rat {
	if a.r == nil {
		return zeroRat
	}
	return a.r
}

func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.rat(), b.rat())}
}

func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{r: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

func (a Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(a.rat())}
}

func (a Rational) IsZero() bool {
	return a.rat().Sign() == 0
}

func (a Rational) Sign() int {
	return a.rat().Sign()
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a Rational) Cmp(b Rational) int {
	return a.rat().Cmp(b.rat())
}

func (a Rational) Equal(b Rational) bool {
	return a.Cmp(b) == 0
}

// Num returns a copy of the reduced numerator. The sign of the value lives here.
func (a Rational) Num() *big.Int {
	return new(big.Int).Set(a.rat().Num())
}

// Denom returns a copy of the reduced denominator, always > 0.
func (a Rational) Denom() *big.Int {
	return new(big.Int).Set(a.rat().Denom())
}

// Rat returns a copy as a big.Rat for callers that need the math/big API.
func (a Rational) Rat() *big.Rat {
	return new(big.Rat).Set(a.rat())
}

// Float64 returns the nearest float64 and whether it is exact. Display only.
func (a Rational) Float64() (float64, bool) {
	return a.rat().Float64()
}

// FloatString renders the value in decimal, rounded to prec fractional digits.
func (a Rational) FloatString(prec int) string {
	return a.rat().FloatString(prec)
}

func (a Rational) String() string {
	r := a.rat()
	return r.Num().String() + "/" + r.Denom().String()
}
