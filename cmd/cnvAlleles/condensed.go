package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/cnvAlleles/condensed"
	"github.com/dasnellings/cnvAlleles/diagram"
	"github.com/dasnellings/cnvAlleles/report"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
)

func condensedUsage(condensedFlags *flag.FlagSet) {
	fmt.Print(
		"condensed - draw one row per copy number with a box for each copy showing the proportion of genomes with the mutant allele at that copy\n\n" +
			"Usage:\n" +
			"  cnvAlleles condensed [options] -genomes population.txt\n" +
			"  cnvAlleles condensed [options] -bam reads.bam -ref locus.fa -chrom K3L -pos 140 -alt G\n\n" +
			"Options:\n")
	condensedFlags.PrintDefaults()
}

func runCondensed(args []string) {
	var err error
	condensedFlags := flag.NewFlagSet("condensed", flag.ExitOnError)
	in := addInputFlags(condensedFlags)
	pf := addPipelineFlags(condensedFlags)
	png := condensedFlags.Bool("png", false, "Output as PNG. Default output is EPS.")
	output := condensedFlags.String("o", "condensed", "Name of output plot. The file extension is added automatically.")
	tableFile := condensedFlags.String("table", "", "Also write the plotted proportions to this file.")

	err = condensedFlags.Parse(args)
	exception.PanicOnErr(err)
	condensedFlags.Usage = func() { condensedUsage(condensedFlags) }

	if err = in.check(); err != nil {
		condensedFlags.Usage()
		errExit("\n" + err.Error())
	}
	if *pf.cn < 1 {
		condensedFlags.Usage()
		errExit("\nERROR: -cn must be >= 1")
	}

	pop, err := in.population(*pf.verbose)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	res, err := condensed.Run(pop, pf.options())
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	if *pf.verbose > 0 {
		log.Println("\n" + report.CopyNumberHistogram(res.Population, res.CnMax))
	}

	filename := *output + ".eps"
	if *png {
		filename = *output + ".png"
	}
	err = diagram.Render(diagram.Layout(res.CnMax, res.Tables), filename)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	if *tableFile != "" {
		out := fileio.EasyCreate(*tableFile)
		err = report.WriteTable(out, res.Tables)
		exception.PanicOnErr(err)
		err = out.Close()
		exception.PanicOnErr(err)
	}
}
