// Package condensed runs the allele summary pipeline behind the condensed diagram: an
// optional surrogate resampling step followed by per copy number aggregation.
package condensed

import (
	"fmt"
	"github.com/dasnellings/cnvAlleles/aggregate"
	"github.com/dasnellings/cnvAlleles/genome"
	"github.com/dasnellings/cnvAlleles/resample"
	"golang.org/x/exp/rand"
	"log"
)

// DefaultCnMax is the largest copy number reported unless otherwise requested.
const DefaultCnMax int = 5

// Options controls a pipeline run.
type Options struct {
	CnMax   int    // largest copy number to report
	Random  bool   // replace the population with a surrogate drawn at the population af
	Seed    uint64 // seed for the surrogate draw
	Verbose int
}

// DefaultOptions reports copy numbers up to DefaultCnMax from the observed population.
func DefaultOptions() Options {
	return Options{CnMax: DefaultCnMax}
}

// Result is the output of Run.
type Result struct {
	CnMax      int
	Tables     map[int]aggregate.Table
	Population genome.Population // population that was aggregated
}

// Run summarizes pop according to opts.
func Run(pop genome.Population, opts Options) (Result, error) {
	var err error
	if opts.CnMax < 1 {
		return Result{}, fmt.Errorf("maximum copy number must be >= 1, found %d: %w", opts.CnMax, genome.ErrInvalidArgument)
	}
	if err = pop.Validate(); err != nil {
		return Result{}, err
	}

	if opts.Random {
		pop, err = resample.Resample(pop, pop.AF, opts.CnMax, rand.NewSource(opts.Seed))
		if err != nil {
			return Result{}, err
		}
		if opts.Verbose > 0 {
			log.Printf("resampled %d genomes at af %.4f with seed %d\n", len(pop.Genomes), pop.AF, opts.Seed)
		}
	}

	ans := Result{CnMax: opts.CnMax, Population: pop}
	ans.Tables, err = aggregate.Aggregate(pop.Genomes, opts.CnMax)
	if err != nil {
		return Result{}, err
	}

	if opts.Verbose > 0 {
		log.Printf("summarized %d of %d genomes across %d copy numbers\n", aggregate.Total(ans.Tables), len(pop.Genomes), len(ans.Tables))
	}
	return ans, nil
}
