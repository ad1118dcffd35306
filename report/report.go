package report

import (
	"fmt"
	"github.com/dasnellings/cnvAlleles/aggregate"
	"github.com/dasnellings/cnvAlleles/genome"
	"github.com/guptarohit/asciigraph"
	"io"
	"strings"
)

// WriteTable writes one row per copy of each copy number group with the fraction of the
// group's genomes carrying a mutant call at that copy. Copies are numbered from 1.
func WriteTable(out io.Writer, tables map[int]aggregate.Table) error {
	var err error
	_, err = fmt.Fprintln(out, "CopyNumber\tGenomes\tCopy\tMutantProportion")
	if err != nil {
		return err
	}
	var t aggregate.Table
	for _, cn := range aggregate.CopyNumbers(tables) {
		t = tables[cn]
		for i := range t.Proportions {
			_, err = fmt.Fprintf(out, "%d\t%d\t%d\t%.4f\n", cn, t.Count, i+1, t.Proportions[i])
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteGenomes lists the sorted genomes of each copy number group.
func WriteGenomes(out io.Writer, tables map[int]aggregate.Table) error {
	var err error
	var t aggregate.Table
	for _, cn := range aggregate.CopyNumbers(tables) {
		t = tables[cn]
		for i := range t.Genomes {
			_, err = fmt.Fprintf(out, "%d\t%s\n", cn, t.Genomes[i])
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// CopyNumberHistogram plots the number of genomes at each copy number from 1 to cnMax. The
// x axis of the plot runs from copy number 1 at the left edge.
func CopyNumberHistogram(pop genome.Population, cnMax int) string {
	if cnMax < 1 {
		return ""
	}
	counts := pop.CopyNumbers()
	data := make([]float64, cnMax)
	var above int
	for cn, n := range counts {
		if cn > cnMax {
			above += n
			continue
		}
		data[cn-1] = float64(n)
	}

	s := new(strings.Builder)
	s.WriteString(asciigraph.Plot(data, asciigraph.Height(10), asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("genomes per copy number (1-%d)", cnMax))))
	if above > 0 {
		s.WriteString(fmt.Sprintf("\n%d genomes with more than %d copies not shown", above, cnMax))
	}
	return s.String()
}
