package condensed

import (
	"errors"
	"github.com/dasnellings/cnvAlleles/genome"
	"reflect"
	"testing"
)

var testPopulation = genome.Population{
	Genomes: []genome.Genome{{1, 0}, {1, 1}, {0, 0}, {1}, {0, 1, 1, 0, 1, 1}},
	AF:      0.5,
}

func TestRunObserved(t *testing.T) {
	opts := DefaultOptions()
	opts.CnMax = 2
	res, err := Run(testPopulation, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CnMax != 2 || len(res.Tables) != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if !reflect.DeepEqual(res.Tables[2].Proportions, []float64{2.0 / 3.0, 1.0 / 3.0}) {
		t.Errorf("unexpected proportions for copy number 2: %v", res.Tables[2].Proportions)
	}
	if len(res.Population.Genomes) != len(testPopulation.Genomes) {
		t.Errorf("observed run should aggregate the input population")
	}
}

func TestRunRandom(t *testing.T) {
	opts := Options{CnMax: 5, Random: true, Seed: 3}
	res, err := Run(testPopulation, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Population.Genomes) != 4 {
		t.Errorf("expected the 6 copy genome to be dropped, found %d genomes", len(res.Population.Genomes))
	}
	if res.Tables[1].Count != 1 || res.Tables[2].Count != 3 {
		t.Errorf("surrogate changed group sizes: %+v", res.Tables)
	}

	again, err := Run(testPopulation, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Tables, again.Tables) {
		t.Errorf("runs with the same seed differ")
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run(testPopulation, Options{}); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for cnMax 0, found %v", err)
	}
	bad := genome.Population{Genomes: []genome.Genome{{1}}, AF: 1.2}
	if _, err := Run(bad, DefaultOptions()); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for af 1.2, found %v", err)
	}
	bad = genome.Population{Genomes: []genome.Genome{{5}}}
	if _, err := Run(bad, DefaultOptions()); !errors.Is(err, genome.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for non-binary genome, found %v", err)
	}
}
