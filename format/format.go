package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/kainino0x/exact-css-xyz-matrices/matrix"
	"github.com/kainino0x/exact-css-xyz-matrices/rational"
)

// Vector writes "header: [ n / d, n / d, n / d ]".
func Vector(output io.Writer, header string, v matrix.Vector3) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: [", header)
	for idx, value := range v {
		if idx > 0 {
			buf.WriteString(",")
		}
		fmt.Fprintf(&buf, " %s / %s", value.Num(), value.Denom())
	}
	buf.WriteString(" ]\n")
	_, err := output.Write(buf.Bytes())
	return err
}

// Matrix writes one row per line as "n / d" pairs. Numerators and
// denominators are right aligned to the widest entry of their column.
func Matrix(output io.Writer, header string, m matrix.Matrix3) error {
	return writeCells(output, header, m, func(value rational.Rational) []string {
		return []string{value.Num().String(), value.Denom().String()}
	}, " / ")
}

// DecimalMatrix is Matrix with every entry rounded to prec fractional digits.
func DecimalMatrix(output io.Writer, header string, m matrix.Matrix3, prec int) error {
	return writeCells(output, header, m, func(value rational.Rational) []string {
		return []string{value.FloatString(prec)}
	}, "")
}

func writeCells(output io.Writer, header string, m matrix.Matrix3, split func(rational.Rational) []string, joiner string) error {
	var cells [3][3][]string
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cells[row][col] = split(m[row][col])
		}
	}

	// widths[col][part]
	var widths [3][]int
	for col := 0; col < 3; col++ {
		widths[col] = make([]int, len(cells[0][col]))
		for row := 0; row < 3; row++ {
			for part, s := range cells[row][col] {
				widths[col][part] = max(widths[col][part], len(s))
			}
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s:\n", header)
	for row := 0; row < 3; row++ {
		buf.WriteString("    [ ")
		for col := 0; col < 3; col++ {
			if col > 0 {
				buf.WriteString(", ")
			}
			parts := make([]string, len(cells[row][col]))
			for part, s := range cells[row][col] {
				parts[part] = fmt.Sprintf("%*s", widths[col][part], s)
			}
			buf.WriteString(strings.Join(parts, joiner))
		}
		buf.WriteString(" ],\n")
	}
	_, err := output.Write(buf.Bytes())
	return err
}
