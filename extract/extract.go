package extract

import (
	"fmt"
	"github.com/dasnellings/cnvAlleles/fai"
	"github.com/dasnellings/cnvAlleles/genome"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"github.com/vertgenlab/gonomics/sam"
	"log"
	"strings"
)

// reads with either flag set are alternate alignments of a read already seen
const secondaryOrSupplementary uint16 = 0x100 | 0x800

// Filter decides what happens to reads with a copy whose call is neither the reference nor
// the alternate base.
type Filter byte

const (
	Hard Filter = iota // discard the read
	Soft               // call the copy wild type
)

// ParseFilter converts "hard" or "soft" to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(s) {
	case "hard":
		return Hard, nil
	case "soft":
		return Soft, nil
	default:
		return Hard, fmt.Errorf("unknown allele filter %q, must be hard or soft: %w", s, genome.ErrInvalidArgument)
	}
}

func (f Filter) String() string {
	if f == Soft {
		return "soft"
	}
	return "hard"
}

// Site is the variable position in one copy of the locus. Each copy carried by a read is
// found by an exact match to the bases immediately upstream of the site.
type Site struct {
	Chrom string
	Pos   int // 1-based
	Ref   dna.Base
	Alt   dna.Base
	Flank []dna.Base

	flank string
}

// NewSite builds a Site from strings. flank must be non-empty and ref and alt must be
// distinct single bases.
func NewSite(chrom string, pos int, flank, ref, alt string) (Site, error) {
	var err error
	var ans Site
	ans.Chrom = chrom
	ans.Pos = pos
	if len(flank) == 0 {
		return Site{}, fmt.Errorf("flank must have at least one base: %w", genome.ErrInvalidArgument)
	}
	ans.flank = strings.ToUpper(flank)
	ans.Flank = dna.StringToBases(ans.flank)
	if ans.Ref, err = parseBase(ref); err != nil {
		return Site{}, err
	}
	if ans.Alt, err = parseBase(alt); err != nil {
		return Site{}, err
	}
	if ans.Ref == ans.Alt {
		return Site{}, fmt.Errorf("alternate base %s matches the reference: %w", alt, genome.ErrInvalidArgument)
	}
	return ans, nil
}

func parseBase(s string) (dna.Base, error) {
	s = strings.ToUpper(s)
	if len(s) != 1 || !strings.Contains("ACGT", s) {
		return dna.N, fmt.Errorf("allele %q must be one of A, C, G, T: %w", s, genome.ErrInvalidArgument)
	}
	return dna.StringToBase(s), nil
}

// LoadSite reads the reference base at chrom:pos and the flank bases upstream of it from
// ref. ref must be indexed (.fai).
func LoadSite(ref, chrom string, pos int, alt string, flank int) (Site, error) {
	idx, err := fai.ReadIndex(ref + ".fai")
	if err != nil {
		return Site{}, err
	}
	size, found := idx.Size(chrom)
	if !found {
		return Site{}, fmt.Errorf("%s not found in %s: %w", chrom, ref, genome.ErrInvalidArgument)
	}
	if flank < 1 || pos-flank < 1 || pos > size {
		return Site{}, fmt.Errorf("site %s:%d with flank %d does not fit in a record of length %d: %w", chrom, pos, flank, size, genome.ErrInvalidArgument)
	}

	seeker := fasta.NewSeeker(ref, "")
	seq, err := fasta.SeekByName(seeker, chrom, (pos-1)-flank, pos)
	closeErr := seeker.Close()
	if err != nil {
		return Site{}, err
	}
	if closeErr != nil {
		return Site{}, closeErr
	}
	dna.AllToUpper(seq)
	return NewSite(chrom, pos, dna.BasesToString(seq[:flank]), dna.BaseToString(seq[flank]), alt)
}

// Call returns the allele call of each copy of the locus in seq, in the order the copies
// appear along the reference. The reverse complement of seq is searched when no copy is
// found on the forward strand. ok is false when seq carries no copy, or when the filter is
// Hard and a copy has an ambiguous call.
func (s Site) Call(seq []dna.Base, f Filter) (g genome.Genome, ok bool) {
	g, ambiguous := s.call(seq)
	if len(g) == 0 || (ambiguous > 0 && f == Hard) {
		return nil, false
	}
	return g, true
}

func (s Site) call(seq []dna.Base) (genome.Genome, int) {
	fwd := make([]dna.Base, len(seq))
	copy(fwd, seq)
	dna.AllToUpper(fwd)

	g, ambiguous := s.scan(fwd)
	if len(g) == 0 {
		dna.ReverseComplement(fwd)
		g, ambiguous = s.scan(fwd)
	}
	return g, ambiguous
}

// scan calls every copy on the forward strand of seq. Ambiguous copies are called wild
// type and counted.
func (s Site) scan(seq []dna.Base) (g genome.Genome, ambiguous int) {
	str := dna.BasesToString(seq)
	var idx, callIdx int
	for start := 0; start < len(str); start = callIdx {
		idx = strings.Index(str[start:], s.flank)
		if idx == -1 {
			break
		}
		callIdx = start + idx + len(s.flank)
		if callIdx >= len(seq) {
			break
		}

		switch seq[callIdx] {
		case s.Alt:
			g = append(g, genome.Mutant)
		case s.Ref:
			g = append(g, genome.WildType)
		default:
			g = append(g, genome.WildType)
			ambiguous++
		}
	}
	return g, ambiguous
}

// Settings controls which reads are called.
type Settings struct {
	Filter  Filter
	MinMapQ uint8
	Verbose int
}

// Stats counts the fate of reads seen by Genomes.
type Stats struct {
	Reads     int // total reads read
	Skipped   int // secondary, supplementary, or below minimum mapping quality
	NoCopies  int // no copy of the locus found
	Ambiguous int // discarded by the hard filter
	Genomes   int
}

func (s Stats) String() string {
	return fmt.Sprintf("Reads: %d\tSkipped: %d\tNoCopies: %d\tAmbiguous: %d\tGenomes: %d", s.Reads, s.Skipped, s.NoCopies, s.Ambiguous, s.Genomes)
}

// Genomes calls every primary read from reads. The allele frequency of the returned
// population is the fraction of mutant calls over all copies called.
func Genomes(reads <-chan sam.Sam, s Site, opts Settings) (genome.Population, Stats) {
	var pop genome.Population
	var stats Stats
	var g genome.Genome
	var ambiguous int
	for r := range reads {
		stats.Reads++
		if r.Flag&secondaryOrSupplementary != 0 || r.MapQ < opts.MinMapQ {
			stats.Skipped++
			continue
		}

		g, ambiguous = s.call(r.Seq)
		switch {
		case len(g) == 0:
			stats.NoCopies++
			continue
		case ambiguous > 0 && opts.Filter == Hard:
			stats.Ambiguous++
			continue
		}
		pop.Genomes = append(pop.Genomes, g)
		if opts.Verbose > 1 {
			log.Printf("%s\t%s\n", r.QName, g)
		}
	}
	stats.Genomes = len(pop.Genomes)
	pop.AF = pop.AlleleFrequency()
	return pop, stats
}

// FromBam calls genomes from every read in a sam or bam file.
func FromBam(bam string, s Site, opts Settings) (genome.Population, Stats, error) {
	reads, header := sam.GoReadToChan(bam)
	if !hasChrom(header, s.Chrom) {
		log.Printf("WARNING: %s is not a reference in the header of %s. Unmapped reads will still be searched.\n", s.Chrom, bam)
	}
	pop, stats := Genomes(reads, s, opts)
	if opts.Verbose > 0 {
		log.Println(stats)
		log.Printf("max copy number observed: %d\n", pop.MaxCopyNumber())
	}
	if len(pop.Genomes) == 0 {
		return pop, stats, fmt.Errorf("no reads in %s carry a copy of %s:%d: %w", bam, s.Chrom, s.Pos, genome.ErrInvalidInput)
	}
	return pop, stats, nil
}

func hasChrom(h sam.Header, chr string) bool {
	for i := range h.Chroms {
		if h.Chroms[i].Name == chr {
			return true
		}
	}
	return false
}
