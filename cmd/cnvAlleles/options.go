package main

import (
	"flag"
	"github.com/dasnellings/cnvAlleles/condensed"
	"log"
	"time"
)

// pipelineFlags configure the resample and aggregate steps.
type pipelineFlags struct {
	cn      *int
	rand    *bool
	seed    *uint64
	verbose *int
}

func addPipelineFlags(fs *flag.FlagSet) *pipelineFlags {
	return &pipelineFlags{
		cn:      fs.Int("cn", condensed.DefaultCnMax, "Report genomes with up to this many copies of the locus."),
		rand:    fs.Bool("rand", false, "Replace the observed alleles with a surrogate population of the same copy numbers where every copy is mutant with probability equal to the observed allele frequency."),
		seed:    fs.Uint64("seed", 0, "Seed for -rand. 0 seeds from the current time."),
		verbose: fs.Int("v", 0, "Verbose output by setting to >0."),
	}
}

func (pf *pipelineFlags) options() condensed.Options {
	opts := condensed.Options{CnMax: *pf.cn, Random: *pf.rand, Seed: *pf.seed, Verbose: *pf.verbose}
	if opts.Random && opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
		if opts.Verbose > 0 {
			log.Printf("seeding surrogate population with %d\n", opts.Seed)
		}
	}
	return opts
}
