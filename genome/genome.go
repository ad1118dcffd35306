package genome

import (
	"errors"
	"fmt"
	"golang.org/x/exp/slices"
	"strings"
)

// Allele calls for a single copy of the locus.
const (
	WildType uint8 = 0
	Mutant   uint8 = 1
)

var (
	// ErrInvalidArgument is returned when a caller supplied parameter is out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput is returned when a genome breaks the binary call contract.
	ErrInvalidInput = errors.New("invalid input")
)

// Genome is the ordered list of allele calls for one sequenced genome, one call per copy
// of the locus. The length of the slice is the copy number.
type Genome []uint8

// CopyNumber is the number of copies of the locus carried by g.
func (g Genome) CopyNumber() int {
	return len(g)
}

// Mutants counts the copies of g with a mutant call.
func (g Genome) Mutants() int {
	var ans int
	for i := range g {
		if g[i] == Mutant {
			ans++
		}
	}
	return ans
}

// Validate reports ErrInvalidInput if g is empty or has a call other than 0 or 1.
func (g Genome) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("genome has no copies: %w", ErrInvalidInput)
	}
	for i := range g {
		if g[i] != WildType && g[i] != Mutant {
			return fmt.Errorf("genome %v has non-binary call %d at copy %d: %w", []uint8(g), g[i], i, ErrInvalidInput)
		}
	}
	return nil
}

// String returns the calls of g separated by commas, e.g. 1,0,1.
func (g Genome) String() string {
	s := new(strings.Builder)
	for i := range g {
		if i > 0 {
			s.WriteByte(',')
		}
		s.WriteByte('0' + g[i])
	}
	return s.String()
}

// Compare orders genomes lexicographically over their calls. A genome that is a prefix
// of another sorts first.
func Compare(a, b Genome) int {
	return slices.Compare(a, b)
}

// Sort orders genomes in place in ascending lexicographic order. Equal genomes keep their
// relative order.
func Sort(g []Genome) {
	slices.SortStableFunc(g, Compare)
}

// Population is a collection of genomes of possibly differing copy number together with
// the allele frequency reported by the upstream allele caller.
type Population struct {
	Genomes []Genome
	AF      float64
}

// Validate checks every genome in p and that AF is a fraction.
func (p Population) Validate() error {
	if !IsFraction(p.AF) {
		return fmt.Errorf("allele frequency %g outside [0,1]: %w", p.AF, ErrInvalidArgument)
	}
	var err error
	for i := range p.Genomes {
		if err = p.Genomes[i].Validate(); err != nil {
			return fmt.Errorf("genome %d: %w", i, err)
		}
	}
	return nil
}

// AlleleFrequency is the fraction of all copies in p with a mutant call. An empty
// population has an allele frequency of 0.
func (p Population) AlleleFrequency() float64 {
	var mutants, total int
	for i := range p.Genomes {
		mutants += p.Genomes[i].Mutants()
		total += len(p.Genomes[i])
	}
	if total == 0 {
		return 0
	}
	return float64(mutants) / float64(total)
}

// CopyNumbers counts the genomes in p at each copy number.
func (p Population) CopyNumbers() map[int]int {
	ans := make(map[int]int)
	for i := range p.Genomes {
		ans[len(p.Genomes[i])]++
	}
	return ans
}

// MaxCopyNumber is the largest copy number present in p, or 0 if p is empty.
func (p Population) MaxCopyNumber() int {
	var ans int
	for i := range p.Genomes {
		if len(p.Genomes[i]) > ans {
			ans = len(p.Genomes[i])
		}
	}
	return ans
}

// IsFraction reports whether f is a number in [0,1]. NaN is not a fraction.
func IsFraction(f float64) bool {
	return f >= 0 && f <= 1
}
