package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hupe1980/fisika"
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/testutil"
	"github.com/hupe1980/fisika/units"
)

func main() {
	seed := int64(4711)
	size := 50000

	rng := testutil.NewRNG(seed)
	xs := rng.Magnitudes(size, -12, 12)

	fmt.Println("--- Round trip ---")
	fmt.Println("Quantities:", len(units.Catalogue()))
	fmt.Println("Prefixes:", prefix.Count)
	fmt.Println("Size:", size)

	start := time.Now()

	worst := 0.0
	for _, def := range units.Catalogue() {
		for _, p := range prefix.All() {
			for _, x := range xs {
				got := def.As(p, def.In(p, x))
				worst = math.Max(worst, math.Abs(got-x)/x)
			}
		}
	}

	end := time.Since(start)

	fmt.Printf("Worst relative error: %.3g\n", worst)
	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	fmt.Println("--- Convert by name ---")

	c, err := fisika.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	start = time.Now()

	for _, x := range xs {
		if _, err := c.Convert(ctx, x, "km/h", "mm/s"); err != nil {
			log.Fatal(err)
		}
	}

	end = time.Since(start)

	fmt.Printf("Seconds: %.8f\n\n", end.Seconds())
}
