package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/cnvAlleles/condensed"
	"github.com/dasnellings/cnvAlleles/report"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
)

func tableUsage(tableFlags *flag.FlagSet) {
	fmt.Print(
		"table - write the proportion of genomes with the mutant allele at each copy for each copy number\n\n" +
			"Usage:\n" +
			"  cnvAlleles table [options] -genomes population.txt > proportions.tsv\n\n" +
			"Options:\n")
	tableFlags.PrintDefaults()
}

func runTable(args []string) {
	var err error
	tableFlags := flag.NewFlagSet("table", flag.ExitOnError)
	in := addInputFlags(tableFlags)
	pf := addPipelineFlags(tableFlags)
	list := tableFlags.Bool("list", false, "List the sorted genomes of each copy number instead of the proportions.")
	output := tableFlags.String("o", "stdout", "Output file.")

	err = tableFlags.Parse(args)
	exception.PanicOnErr(err)
	tableFlags.Usage = func() { tableUsage(tableFlags) }

	if err = in.check(); err != nil {
		tableFlags.Usage()
		errExit("\n" + err.Error())
	}
	if *pf.cn < 1 {
		tableFlags.Usage()
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

	out := fileio.EasyCreate(*output)
	if *list {
		err = report.WriteGenomes(out, res.Tables)
	} else {
		err = report.WriteTable(out, res.Tables)
	}
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
}
