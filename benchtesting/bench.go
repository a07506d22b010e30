package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/illuminant-go/illuminant"
	"github.com/kpfaulkner/illuminant-go/spectral"
	"github.com/kpfaulkner/illuminant-go/testcommon"
)

// Repeatedly generates daylight illuminants across the locus and a fine
// Illuminant A grid, under the profiler.
func main() {
	iterations := flag.Int("n", 10000, "number of iterations")
	mem := flag.Bool("mem", false, "memory profile instead of CPU")
	flag.Parse()

	var p interface{ Stop() }
	if *mem {
		p = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	} else {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer p.Stop()

	reference, err := spectral.NewSPDFromMap(testcommon.D60Reference)
	if err != nil {
		log.Fatalf("boomage %v", err)
	}

	start := time.Now()
	for count := 0; count < *iterations; count++ {
		cct := illuminant.MinDaylightCCT + float64(count%210)*100
		if _, err := illuminant.DIlluminantFromCCT(cct); err != nil {
			log.Errorf("Error computing daylight at %vK: %v\n", cct, err)
			return
		}
	}
	fmt.Printf("daylight took %d ms\n", time.Since(start).Milliseconds())

	d60, err := illuminant.DIlluminantRelativeSPD(0.32168, 0.33767)
	if err != nil {
		log.Fatalf("boomage %v", err)
	}
	fmt.Printf("D60 matches reference %v\n", d60.AlmostEquals(reference, 7))

	shape := spectral.SpectralShape{Start: 300, End: 830, Interval: 0.1}
	start = time.Now()
	for count := 0; count < *iterations/100+1; count++ {
		if _, err := illuminant.IlluminantASPD(shape); err != nil {
			log.Errorf("Error computing illuminant A: %v\n", err)
			return
		}
	}
	fmt.Printf("illuminant A took %d ms\n", time.Since(start).Milliseconds())
}
