package report

import (
	"fmt"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/kainino0x/exact-css-xyz-matrices/colour"
	"github.com/kainino0x/exact-css-xyz-matrices/format"
	"github.com/kainino0x/exact-css-xyz-matrices/matrix"
	"github.com/kainino0x/exact-css-xyz-matrices/options"
)

// Result holds every matrix derived for one colour space, or the error that
// stopped the derivation.
type Result struct {
	Space     colour.ColourSpace
	Primaries matrix.Matrix3
	ToXYZ     matrix.Matrix3
	FromXYZ   matrix.Matrix3
	Err       error
}

type job struct {
	index int
	space colour.ColourSpace
}

// DeriveAll derives every space on a pool of opts.Workers goroutines. Results
// come back in input order. Failures are logged and kept in Result.Err.
func DeriveAll(spaces []colour.ColourSpace, opts *options.Options) []Result {
	opts = options.NewOptions(opts)
	results := make([]Result, len(spaces))

	inputChan := make(chan job, len(spaces))
	for i, cs := range spaces {
		inputChan <- job{index: i, space: cs}
	}
	close(inputChan)

	wg := sync.WaitGroup{}
	wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go func() {
			defer wg.Done()
			startWorker(inputChan, results, opts)
		}()
	}
	wg.Wait()
	return results
}

// each worker only writes results[j.index] so no locking is needed
func startWorker(inputChan chan job, results []Result, opts *options.Options) {
	for j := range inputChan {
		results[j.index] = Derive(j.space, opts)
		if err := results[j.index].Err; err != nil {
			log.Errorf("Error deriving %s : %v", j.space.Name, err)
		}
	}
}

// Derive computes the RGB to XYZ matrix of cs and the inverse and transpose
// built from it.
func Derive(cs colour.ColourSpace, opts *options.Options) Result {
	res := Result{Space: cs}
	var deriveOpts []colour.DeriveOption
	if opts != nil && opts.Validate {
		deriveOpts = append(deriveOpts, colour.WithPhysicalValidation())
	}

	log.Debugf("deriving %s", cs.Name)
	toXYZ, err := cs.ToXYZ(deriveOpts...)
	if err != nil {
		res.Err = err
		return res
	}
	fromXYZ, err := matrix.Invert(toXYZ)
	if err != nil {
		res.Err = err
		return res
	}
	res.ToXYZ = toXYZ
	res.FromXYZ = fromXYZ
	res.Primaries = matrix.Transpose(toXYZ)
	return res
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Err != nil {
			count++
		}
	}
	return count
}

// WriteWhitePoints prints the XYZ of the standard white points.
func WriteWhitePoints(output io.Writer) error {
	if err := format.Vector(output, "D50 white point", colour.CM_WP_D50.ToXYZ()); err != nil {
		return err
	}
	return format.Vector(output, "D65 white point", colour.CM_WP_D65.ToXYZ())
}

// Write prints, for each result, its primaries in XYZ and both conversion
// matrices. A failed result prints its error instead.
func Write(output io.Writer, results []Result, opts *options.Options) error {
	opts = options.NewOptions(opts)
	writeMatrix := func(header string, m matrix.Matrix3) error {
		if opts.Decimal {
			return format.DecimalMatrix(output, header, m, opts.Precision)
		}
		return format.Matrix(output, header, m)
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(output, "\n%s\n", r.Space.Name); err != nil {
			return err
		}
		if r.Err != nil {
			if _, err := fmt.Fprintf(output, "  error: %v\n", r.Err); err != nil {
				return err
			}
			continue
		}
		if err := writeMatrix("  Primaries", r.Primaries); err != nil {
			return err
		}
		if err := writeMatrix("  To XYZ", r.ToXYZ); err != nil {
			return err
		}
		if err := writeMatrix("  From XYZ", r.FromXYZ); err != nil {
			return err
		}
	}
	return nil
}
