package optics

import (
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
)

type batchItem struct {
	index int
	res   *MaterialResult
	err   error
}

// Batch computes every (formula, density) pair against one shared energy
// axis, sorted ascending once for the whole batch. Shape and range problems
// abort with ValidationError before any work starts; a failing material is
// logged and left out of the returned map without disturbing its siblings.
// Duplicate formulas collapse onto one key; the last input occurrence wins,
// regardless of worker timing.
func (c *Calculator) Batch(formulas []string, energiesKeV []float64, densities []float64) (map[string]*MaterialResult, error) {
	if len(formulas) == 0 {
		return nil, ValidationError{Reason: "no formulas"}
	}
	if len(energiesKeV) == 0 {
		return nil, ValidationError{Reason: "no energies"}
	}
	if len(formulas) != len(densities) {
		return nil, ValidationError{Reason: fmt.Sprintf("%d formulas against %d densities", len(formulas), len(densities))}
	}
	for _, e := range energiesKeV {
		// NaN compares false against both bounds
		if math.IsNaN(e) || e < MinEnergyKeV || e > MaxEnergyKeV {
			return nil, ValidationError{Reason: fmt.Sprintf("energy %g keV outside [%g, %g]", e, MinEnergyKeV, MaxEnergyKeV)}
		}
	}

	energies := append([]float64(nil), energiesKeV...)
	sort.Float64s(energies)

	jobs := make(chan int)
	dataflow := make(chan batchItem)
	var wg sync.WaitGroup
	wg.Add(len(formulas))

	workers := min(c.threads, len(formulas))
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				res, err := c.SingleMaterial(formulas[i], energies, densities[i])
				dataflow <- batchItem{index: i, res: res, err: err}
				wg.Done()
			}
		}()
	}

	go func() {
		for i := range formulas {
			jobs <- i
		}
		close(jobs)
	}()

	// chan killer
	go func() {
		wg.Wait()
		close(dataflow)
	}()

	slots := make([]batchItem, len(formulas))
	for item := range dataflow {
		slots[item.index] = item
	}

	results := make(map[string]*MaterialResult, len(formulas))
	for i := range slots {
		if slots[i].err != nil {
			log.Printf("skipping %q: %v", formulas[i], slots[i].err)
			continue
		}
		results[formulas[i]] = slots[i].res
	}
	return results, nil
}
