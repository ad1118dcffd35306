package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/cnvAlleles/genome"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func extractUsage(extractFlags *flag.FlagSet) {
	fmt.Print(
		"extract - call the allele at each copy of a locus carried by each read and write one genome per read\n\n" +
			"Usage:\n" +
			"  cnvAlleles extract [options] -bam reads.bam -ref locus.fa -chrom K3L -pos 140 -alt G > population.txt\n\n" +
			"Options:\n")
	extractFlags.PrintDefaults()
}

func runExtract(args []string) {
	var err error
	extractFlags := flag.NewFlagSet("extract", flag.ExitOnError)
	in := addInputFlags(extractFlags)
	output := extractFlags.String("o", "stdout", "Output population file.")
	verbose := extractFlags.Int("v", 0, "Verbose output by setting to >0. Set to >1 to log the genome called from each read.")

	err = extractFlags.Parse(args)
	exception.PanicOnErr(err)
	extractFlags.Usage = func() { extractUsage(extractFlags) }

	if *in.genomes != "" {
		extractFlags.Usage()
		errExit("\nERROR: -genomes is not an input for extract")
	}
	if err = in.check(); err != nil {
		extractFlags.Usage()
		errExit("\n" + err.Error())
	}

	pop, err := in.population(*verbose)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	out := fileio.EasyCreate(*output)
	err = genome.Write(out, pop)
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
}
