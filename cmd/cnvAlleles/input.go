package main

import (
	"errors"
	"flag"
	"github.com/dasnellings/cnvAlleles/extract"
	"github.com/dasnellings/cnvAlleles/genome"
)

// inputFlags are shared by subcommands that start from either a population file or a bam.
type inputFlags struct {
	genomes *string
	bam     *string
	ref     *string
	chrom   *string
	pos     *int
	alt     *string
	flank   *int
	filter  *string
	minMapQ *int
}

func addInputFlags(fs *flag.FlagSet) *inputFlags {
	return &inputFlags{
		genomes: fs.String("genomes", "", "Population file written by 'cnvAlleles extract'. Used instead of -bam and -ref."),
		bam:     fs.String("bam", "", "Sam or bam file of long reads spanning the locus."),
		ref:     fs.String("ref", "", "Fasta file with the reference sequence of the locus. Must be indexed (.fai)."),
		chrom:   fs.String("chrom", "", "Name of the reference record holding the variable site."),
		pos:     fs.Int("pos", 0, "1-based position of the variable site in -chrom."),
		alt:     fs.String("alt", "", "Mutant (alternate) base at -pos."),
		flank:   fs.Int("flank", 20, "Number of reference bases upstream of -pos that must match exactly to identify a copy of the locus in a read."),
		filter:  fs.String("filter", "hard", "Allele filter. 'hard' discards reads with any copy whose base at the site is neither reference nor mutant. 'soft' calls those copies wild type."),
		minMapQ: fs.Int("minMapQ", 0, "Minimum mapping quality of reads to call."),
	}
}

func (in *inputFlags) fromBam() bool {
	return *in.genomes == ""
}

func (in *inputFlags) check() error {
	if *in.genomes != "" {
		if *in.bam != "" {
			return errors.New("ERROR: declare either -genomes or -bam, not both")
		}
		return nil
	}
	if *in.bam == "" || *in.ref == "" || *in.chrom == "" || *in.pos == 0 || *in.alt == "" {
		return errors.New("ERROR: must declare -genomes, or all of -bam, -ref, -chrom, -pos, and -alt")
	}
	if *in.minMapQ < 0 || *in.minMapQ > 255 {
		return errors.New("ERROR: -minMapQ must be in [0,255]")
	}
	return nil
}

// population reads the genomes and allele frequency declared by the input flags.
func (in *inputFlags) population(verbose int) (genome.Population, error) {
	if !in.fromBam() {
		return genome.Read(*in.genomes)
	}

	filter, err := extract.ParseFilter(*in.filter)
	if err != nil {
		return genome.Population{}, err
	}
	site, err := extract.LoadSite(*in.ref, *in.chrom, *in.pos, *in.alt, *in.flank)
	if err != nil {
		return genome.Population{}, err
	}
	pop, _, err := extract.FromBam(*in.bam, site, extract.Settings{Filter: filter, MinMapQ: uint8(*in.minMapQ), Verbose: verbose})
	return pop, err
}
