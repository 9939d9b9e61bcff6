package testcommon

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kainino0x/exact-css-xyz-matrices/rational"
)

// RationalComparer lets cmp compare values holding rational.Rational, which
// has unexported fields.
var RationalComparer = cmp.Comparer(func(a rational.Rational, b rational.Rational) bool {
	return a.Equal(b)
})

// R parses s with rational.Parse, failing the test on error.
func R(t *testing.T, s string) rational.Rational {
	t.Helper()
	r, err := rational.Parse(s)
	if err != nil {
		t.Fatalf("unable to parse rational %q : %v", s, err)
	}
	return r
}

// AssertExact fails the test with a diff when want and got are not exactly equal.
func AssertExact(t *testing.T, want any, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got, RationalComparer); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertNear checks every entry of got against want within delta.
func AssertNear(t *testing.T, want [3][3]float64, got [3][3]float64, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := want[i][j] - got[i][j]
			if d > delta || d < -delta {
				t.Errorf("entry [%d][%d] expected %f got %f", i, j, want[i][j], got[i][j])
			}
		}
	}
}

// ReadTestData reads a fixture file into a reader.
func ReadTestData(t *testing.T, filepath string) *bytes.Reader {
	t.Helper()
	data, err := os.ReadFile(filepath)
	if err != nil {
		t.Fatalf("error reading test data file : %v", err)
		return nil
	}
	return bytes.NewReader(data)
}
