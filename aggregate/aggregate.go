// Package aggregate groups genomes by copy number and computes the fraction of genomes
// carrying a mutant call at each copy position within a group.
package aggregate

import (
	"fmt"
	"github.com/dasnellings/cnvAlleles/genome"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Group holds every genome of a single copy number, sorted in ascending order.
type Group struct {
	CopyNumber int
	Genomes    []genome.Genome
}

// Table is the summary of a Group handed to renderers.
type Table struct {
	CopyNumber  int
	Count       int             // number of genomes in the group
	Proportions []float64       // fraction of genomes with a mutant call at each copy
	Genomes     []genome.Genome // sorted genomes, for listings only
}

// Partition splits genomes into one Group per copy number in [1, cnMax]. Copy numbers with
// no genomes are omitted and genomes with more than cnMax copies are ignored. The returned
// groups are in ascending copy number order.
func Partition(genomes []genome.Genome, cnMax int) ([]Group, error) {
	if cnMax < 1 {
		return nil, fmt.Errorf("maximum copy number must be >= 1, found %d: %w", cnMax, genome.ErrInvalidArgument)
	}

	var err error
	byCopyNumber := make([][]genome.Genome, cnMax+1)
	for i := range genomes {
		if err = genomes[i].Validate(); err != nil {
			return nil, fmt.Errorf("genome %d: %w", i, err)
		}
		if len(genomes[i]) > cnMax {
			continue
		}
		byCopyNumber[len(genomes[i])] = append(byCopyNumber[len(genomes[i])], genomes[i])
	}

	var ans []Group
	for cn := 1; cn <= cnMax; cn++ {
		if len(byCopyNumber[cn]) == 0 {
			continue
		}
		genome.Sort(byCopyNumber[cn])
		ans = append(ans, Group{CopyNumber: cn, Genomes: byCopyNumber[cn]})
	}
	return ans, nil
}

// Matrix lays out the group as a dense matrix with one row per genome and one column per
// copy position.
func (g Group) Matrix() *mat.Dense {
	data := make([]float64, 0, len(g.Genomes)*g.CopyNumber)
	for i := range g.Genomes {
		for _, call := range g.Genomes[i] {
			data = append(data, float64(call))
		}
	}
	return mat.NewDense(len(g.Genomes), g.CopyNumber, data)
}

// Proportions returns, for each copy position, the number of genomes with a mutant call
// divided by the number of genomes in the group.
func (g Group) Proportions() []float64 {
	m := g.Matrix()
	rows, cols := m.Dims()
	ans := make([]float64, cols)
	col := make([]float64, rows)
	for j := range ans {
		mat.Col(col, j, m)
		ans[j] = floats.Sum(col) / float64(rows)
	}
	return ans
}

// Table summarizes the group.
func (g Group) Table() Table {
	return Table{
		CopyNumber:  g.CopyNumber,
		Count:       len(g.Genomes),
		Proportions: g.Proportions(),
		Genomes:     g.Genomes,
	}
}

// Aggregate computes a Table for each copy number in [1, cnMax] carried by at least one
// genome. Copy numbers without genomes have no entry in the returned map.
func Aggregate(genomes []genome.Genome, cnMax int) (map[int]Table, error) {
	groups, err := Partition(genomes, cnMax)
	if err != nil {
		return nil, err
	}
	ans := make(map[int]Table, len(groups))
	for i := range groups {
		ans[groups[i].CopyNumber] = groups[i].Table()
	}
	return ans, nil
}

// CopyNumbers returns the copy numbers present in tables in ascending order.
func CopyNumbers(tables map[int]Table) []int {
	ans := maps.Keys(tables)
	slices.Sort(ans)
	return ans
}

// Total is the number of genomes summarized across all tables.
func Total(tables map[int]Table) int {
	var ans int
	for _, t := range tables {
		ans += t.Count
	}
	return ans
}
