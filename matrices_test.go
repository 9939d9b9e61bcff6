package exactxyz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kainino0x/exact-css-xyz-matrices/colour"
	"github.com/kainino0x/exact-css-xyz-matrices/testcommon"
)

func TestForSpace(t *testing.T) {
	m, err := ForSpace(colour.SPACE_SRGB)
	require.NoError(t, err)
	assert.Equal(t, "506752/1228815", m.ToXYZ[0][0].String())
	assert.Equal(t, "12831/3959", m.FromXYZ[0][0].String())
	testcommon.AssertExact(t, m.ToXYZ.Transpose(), m.Primaries)

	_, err = ForSpace("adobe-rgb-1998")
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

func TestForSingular(t *testing.T) {
	cs := colour.NewColourSpace("flat", colour.CM_WP_D65,
		colour.NewCIEPrimaries(colour.CM_WP_D65, colour.CM_WP_D65, colour.CM_WP_D50))
	_, err := For(cs)
	assert.ErrorIs(t, err, colour.ErrSingularPrimaries)
}

func BenchmarkForSpace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, cs := range colour.StandardSpaces() {
			if _, err := For(cs); err != nil {
				b.Fatal(err)
			}
		}
	}
}
