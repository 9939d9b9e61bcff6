package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kainino0x/exact-css-xyz-matrices/matrix"
	"github.com/kainino0x/exact-css-xyz-matrices/rational"
)

func TestVector(t *testing.T) {
	var buf bytes.Buffer
	v := matrix.NewVector3(rational.MustNew(3127, 3290), rational.One(), rational.MustNew(-3583, 3290))
	require.NoError(t, Vector(&buf, "D65 white point", v))
	assert.Equal(t, "D65 white point: [ 3127 / 3290, 1 / 1, -3583 / 3290 ]\n", buf.String())
}

func TestMatrixAlignsColumns(t *testing.T) {
	m := matrix.Matrix3{
		{rational.MustNew(12831, 3959), rational.MustNew(-329, 214), rational.MustNew(-1974, 3959)},
		{rational.MustNew(-851781, 878810), rational.MustNew(1648619, 878810), rational.MustNew(36519, 878810)},
		{rational.MustNew(705, 12673), rational.MustNew(-2585, 12673), rational.MustNew(705, 667)},
	}
	var buf bytes.Buffer
	require.NoError(t, Matrix(&buf, "  From XYZ", m))

	expected := "  From XYZ:\n" +
		"    [   12831 /   3959,    -329 /    214, -1974 /   3959 ],\n" +
		"    [ -851781 / 878810, 1648619 / 878810, 36519 / 878810 ],\n" +
		"    [     705 /  12673,   -2585 /  12673,   705 /    667 ],\n"
	assert.Equal(t, expected, buf.String())
}

func TestDecimalMatrix(t *testing.T) {
	m := matrix.Diagonal(matrix.NewVector3(rational.MustNew(1, 3), rational.MustNew(-2, 3), rational.FromInt(10)))
	var buf bytes.Buffer
	require.NoError(t, DecimalMatrix(&buf, "m", m, 3))

	expected := "m:\n" +
		"    [ 0.333,  0.000,  0.000 ],\n" +
		"    [ 0.000, -0.667,  0.000 ],\n" +
		"    [ 0.000,  0.000, 10.000 ],\n"
	assert.Equal(t, expected, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteErrorsPropagate(t *testing.T) {
	assert.Error(t, Vector(failingWriter{}, "v", matrix.Ones()))
	assert.Error(t, Matrix(failingWriter{}, "m", matrix.Identity()))
}
