package report

import (
	"bytes"
	"github.com/dasnellings/cnvAlleles/aggregate"
	"github.com/dasnellings/cnvAlleles/genome"
	"strings"
	"testing"
)

var testGenomes = []genome.Genome{{1, 0}, {1, 1}, {0, 0}, {1}, {1, 1, 1, 1, 1, 1}}

func TestWriteTable(t *testing.T) {
	tables, err := aggregate.Aggregate(testGenomes, 3)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = WriteTable(&buf, tables); err != nil {
		t.Fatal(err)
	}
	expected := "CopyNumber\tGenomes\tCopy\tMutantProportion\n" +
		"1\t1\t1\t1.0000\n" +
		"2\t3\t1\t0.6667\n" +
		"2\t3\t2\t0.3333\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%s\nfound:\n%s", expected, buf.String())
	}
}

func TestWriteGenomes(t *testing.T) {
	tables, err := aggregate.Aggregate(testGenomes, 2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = WriteGenomes(&buf, tables); err != nil {
		t.Fatal(err)
	}
	expected := "1\t1\n2\t0,0\n2\t1,0\n2\t1,1\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%s\nfound:\n%s", expected, buf.String())
	}
}

func TestCopyNumberHistogram(t *testing.T) {
	h := CopyNumberHistogram(genome.Population{Genomes: testGenomes}, 5)
	if !strings.Contains(h, "genomes per copy number (1-5)") {
		t.Errorf("missing caption in histogram:\n%s", h)
	}
	if !strings.Contains(h, "1 genomes with more than 5 copies not shown") {
		t.Errorf("missing note on genomes above maximum:\n%s", h)
	}
	if CopyNumberHistogram(genome.Population{}, 0) != "" {
		t.Errorf("expected empty histogram for cnMax 0")
	}
}
