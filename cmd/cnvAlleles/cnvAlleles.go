// Command cnvAlleles summarizes the allele calls at a single variable site across every
// copy of a copy number variable locus carried by long reads.
//
// Each read covering the locus is one genome: its copies are found by an exact match to the
// reference bases upstream of the site, and the base after each match is called mutant or
// wild type. extract writes these genomes to a population file (an "af" line followed by one
// comma separated genome per line), which condensed and table read back with -genomes so a
// bam only needs to be scanned once. Both can also call directly from a bam with -bam/-ref.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.0.1"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to cnvAlleles by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"extract", runExtract, "call alleles at each copy of a locus from long reads"},
	{"condensed", runCondensed, "plot mutant allele proportions by copy number"},
	{"table", runTable, "tabulate mutant allele proportions by copy number"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: cnvAlleles (allele composition of copy number variable loci)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\tcnvAlleles <command> [options]\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	s.WriteString(workflow)
	fmt.Print(s.String())
}

const workflow string = "\nTypical workflow:\n" +
	"\tcnvAlleles extract -bam reads.bam -ref locus.fa -chrom K3L -pos 140 -alt G -o population.txt\n" +
	"\tcnvAlleles condensed -genomes population.txt -png -o condensed\n" +
	"\tcnvAlleles table -genomes population.txt -rand -seed 7\n"

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}

	command := commandMap()[flag.Arg(0)]
	if command == nil {
		flag.Usage()
		errExit(fmt.Sprintf("\nERROR: unknown command '%s'", flag.Arg(0)))
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
