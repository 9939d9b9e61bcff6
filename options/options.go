package options

import (
	"runtime"
)

const (
	DEFAULT_PRECISION = 16
)

// Options controls which colour spaces are derived and how they are printed.
type Options struct {
	Debug bool

	// Decimal prints rounded decimals instead of exact fractions.
	Decimal   bool
	Precision int

	// Validate rejects primaries outside the physical chromaticity range.
	Validate bool

	// Workers bounds how many colour spaces are derived at once.
	Workers int

	// SpacesFile is a YAML file of extra colour space definitions.
	SpacesFile string

	// Only restricts output to the named spaces. Empty means all.
	Only []string
}

func NewOptions(options *Options) *Options {

	opt := &Options{}
	if options != nil {
		opt.Debug = options.Debug
		opt.Decimal = options.Decimal
		opt.Precision = options.Precision
		opt.Validate = options.Validate
		opt.Workers = options.Workers
		opt.SpacesFile = options.SpacesFile
		opt.Only = append([]string(nil), options.Only...)
	}
	if opt.Precision <= 0 {
		opt.Precision = DEFAULT_PRECISION
	}
	if opt.Workers <= 0 {
		opt.Workers = runtime.NumCPU()
	}
	return opt
}

// Wanted reports whether the named space should be derived.
func (o *Options) Wanted(name string) bool {
	if len(o.Only) == 0 {
		return true
	}
	for _, n := range o.Only {
		if n == name {
			return true
		}
	}
	return false
}
