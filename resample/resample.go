// Package resample builds surrogate populations that keep the copy number of every genome
// but redraw each allele call independently at a fixed allele frequency.
package resample

import (
	"fmt"
	"github.com/dasnellings/cnvAlleles/genome"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Resample returns a population with one genome for every genome in pop carrying at most
// cnMax copies. Each output genome has the same copy number as its source and every call
// is mutant with probability af. Genomes above cnMax are dropped. The returned population
// reports af as its allele frequency. Every genome in pop, including those above cnMax,
// must be valid.
func Resample(pop genome.Population, af float64, cnMax int, src rand.Source) (genome.Population, error) {
	if !genome.IsFraction(af) {
		return genome.Population{}, fmt.Errorf("allele frequency %g outside [0,1]: %w", af, genome.ErrInvalidArgument)
	}
	if cnMax < 1 {
		return genome.Population{}, fmt.Errorf("maximum copy number must be >= 1, found %d: %w", cnMax, genome.ErrInvalidArgument)
	}
	if src == nil {
		return genome.Population{}, fmt.Errorf("nil random source: %w", genome.ErrInvalidArgument)
	}

	b := distuv.Bernoulli{P: af, Src: src}
	ans := genome.Population{AF: af}
	var cn int
	var err error
	for i := range pop.Genomes {
		if err = pop.Genomes[i].Validate(); err != nil {
			return genome.Population{}, fmt.Errorf("genome %d: %w", i, err)
		}
		cn = len(pop.Genomes[i])
		if cn > cnMax {
			continue
		}
		ans.Genomes = append(ans.Genomes, draw(b, cn))
	}
	return ans, nil
}

func draw(b distuv.Bernoulli, cn int) genome.Genome {
	ans := make(genome.Genome, cn)
	for i := range ans {
		if b.Rand() == 1 {
			ans[i] = genome.Mutant
		}
	}
	return ans
}
