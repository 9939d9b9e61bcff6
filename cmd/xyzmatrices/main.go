package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kainino0x/exact-css-xyz-matrices/colour"
	"github.com/kainino0x/exact-css-xyz-matrices/config"
	"github.com/kainino0x/exact-css-xyz-matrices/options"
	"github.com/kainino0x/exact-css-xyz-matrices/report"
)

func main() {
	spacesFile := flag.String("spaces", "", "YAML file with extra colour space definitions")
	only := flag.String("only", "", "comma separated colour spaces to print, default all")
	decimal := flag.Bool("decimal", false, "print decimals instead of exact fractions")
	precision := flag.Int("precision", options.DEFAULT_PRECISION, "fractional digits for -decimal")
	validate := flag.Bool("validate", false, "reject primaries outside the physical chromaticity range")
	workers := flag.Int("workers", 0, "colour spaces derived concurrently, default number of CPUs")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	opts := options.NewOptions(&options.Options{
		Debug:      *debug,
		Decimal:    *decimal,
		Precision:  *precision,
		Validate:   *validate,
		Workers:    *workers,
		SpacesFile: *spacesFile,
	})
	if *only != "" {
		for _, name := range strings.Split(*only, ",") {
			opts.Only = append(opts.Only, strings.TrimSpace(name))
		}
	}

	if err := run(os.Stdout, opts); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(output io.Writer, opts *options.Options) error {
	spaces := colour.StandardSpaces()
	if opts.SpacesFile != "" {
		extra, err := config.LoadFile(opts.SpacesFile)
		if err != nil {
			return fmt.Errorf("loading %s: %w", opts.SpacesFile, err)
		}
		spaces = config.Merge(spaces, extra)
	}

	var wanted []colour.ColourSpace
	for _, cs := range spaces {
		if opts.Wanted(cs.Name) {
			wanted = append(wanted, cs)
		}
	}
	if len(wanted) == 0 {
		return fmt.Errorf("no colour space matches %s", strings.Join(opts.Only, ","))
	}

	results := report.DeriveAll(wanted, opts)

	if err := report.WriteWhitePoints(output); err != nil {
		return err
	}
	if err := report.Write(output, results, opts); err != nil {
		return err
	}
	if failed := report.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d colour spaces failed", failed, len(results))
	}
	return nil
}
