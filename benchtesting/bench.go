package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kainino0x/exact-css-xyz-matrices/colour"
	"github.com/kainino0x/exact-css-xyz-matrices/options"
	"github.com/kainino0x/exact-css-xyz-matrices/report"
)

func main() {
	iterations := flag.Int("n", 1000, "derivations of every standard colour space")
	mem := flag.Bool("mem", false, "heap profile instead of CPU")
	flag.Parse()

	var p interface{ Stop() }
	if *mem {
		p = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	} else {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer p.Stop()

	spaces := colour.StandardSpaces()
	start := time.Now()
	for count := 0; count < *iterations; count++ {
		// single worker so the profile shows the arithmetic, not scheduling
		results := report.DeriveAll(spaces, &options.Options{Workers: 1})
		if failed := report.Failed(results); failed > 0 {
			log.Fatalf("%d colour spaces failed", failed)
		}
	}
	fmt.Printf("derivation took %d ms for %d iterations\n", time.Since(start).Milliseconds(), *iterations)

	start = time.Now()
	for count := 0; count < *iterations; count++ {
		for _, target := range spaces {
			for _, current := range spaces {
				if _, err := colour.ConversionMatrix(target, current); err != nil {
					log.Fatalf("converting %s to %s : %v", current.Name, target.Name, err)
				}
			}
		}
	}
	fmt.Printf("conversion matrices took %d ms\n", time.Since(start).Milliseconds())
}
