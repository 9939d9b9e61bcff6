package colour

import (
	"testing"
)

// BenchmarkDeriveProPhoto uses the space with the largest intermediate values
func BenchmarkDeriveProPhoto(b *testing.B) {
	white := CM_WP_D50.ToXYZ()
	for i := 0; i < b.N; i++ {
		if _, err := Derive(white, *CM_PRI_PROPHOTO); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdaptWhitePoint(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := AdaptWhitePoint(CM_WP_D50, CM_WP_D65); err != nil {
			b.Fatal(err)
		}
	}
}
