package diagram

import (
	"github.com/dasnellings/cnvAlleles/aggregate"
	"github.com/dasnellings/cnvAlleles/genome"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func testTables(t *testing.T) map[int]aggregate.Table {
	tables, err := aggregate.Aggregate([]genome.Genome{{1, 0}, {1, 1}, {0, 0}, {1}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	return tables
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayout(t *testing.T) {
	fig := Layout(2, testTables(t))
	if fig.XMin != 1 || fig.XMax != 3 || fig.YMin != 0.5 || !near(fig.YMax, 2.4) {
		t.Errorf("unexpected figure range %v %v %v %v", fig.XMin, fig.XMax, fig.YMin, fig.YMax)
	}

	// copy number 1 has a single fully mutant copy, copy number 2 has two copies
	if len(fig.Boxes) != 6 {
		t.Fatalf("expected 6 boxes, found %d", len(fig.Boxes))
	}
	expected := []Box{
		{X: 1.2, Y: 1, Width: 1, Height: 0.5, Mutant: true},
		{X: 2.2, Y: 1, Width: 0, Height: 0.5},
		{X: 1.2, Y: 2, Width: 2.0 / 3.0, Height: 0.5, Mutant: true},
		{X: 1.2 + 2.0/3.0, Y: 2, Width: 1.0 / 3.0, Height: 0.5},
		{X: 2.4, Y: 2, Width: 1.0 / 3.0, Height: 0.5, Mutant: true},
		{X: 2.4 + 1.0/3.0, Y: 2, Width: 2.0 / 3.0, Height: 0.5},
	}
	for i := range expected {
		b := fig.Boxes[i]
		if !near(b.X, expected[i].X) || b.Y != expected[i].Y || !near(b.Width, expected[i].Width) || b.Height != expected[i].Height || b.Mutant != expected[i].Mutant {
			t.Errorf("box %d: expected %+v, found %+v", i, expected[i], b)
		}
	}

	if len(fig.Connectors) != 1 {
		t.Fatalf("expected 1 connector, found %d", len(fig.Connectors))
	}
	c := fig.Connectors[0]
	if !near(c.X1, 2.2) || !near(c.X2, 2.4) || c.Y != 2.25 {
		t.Errorf("unexpected connector %+v", c)
	}

	if len(fig.Labels) != 2 {
		t.Fatalf("expected 2 labels, found %d", len(fig.Labels))
	}
	if fig.Labels[0].Text != "1" || !near(fig.Labels[0].X, 2.4) || !near(fig.Labels[0].Y, 1.15) {
		t.Errorf("unexpected label for copy number 1: %+v", fig.Labels[0])
	}
	if fig.Labels[1].Text != "3" || !near(fig.Labels[1].X, 3.6) || !near(fig.Labels[1].Y, 2.15) {
		t.Errorf("unexpected label for copy number 2: %+v", fig.Labels[1])
	}
}

func TestLayoutIgnoresLargerCopyNumbers(t *testing.T) {
	fig := Layout(1, testTables(t))
	if len(fig.Boxes) != 2 || len(fig.Connectors) != 0 || len(fig.Labels) != 1 {
		t.Errorf("expected only copy number 1 in layout, found %+v", fig)
	}
}

func TestRender(t *testing.T) {
	fig := Layout(5, testTables(t))
	dir := t.TempDir()
	for _, name := range []string{"condensed.png", "condensed.eps", "condensed.svg"} {
		file := filepath.Join(dir, name)
		if err := Render(fig, file); err != nil {
			t.Errorf("problem rendering %s: %v", name, err)
			continue
		}
		info, err := os.Stat(file)
		if err != nil || info.Size() == 0 {
			t.Errorf("expected non-empty %s, found %v", name, err)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.png")
	if err := Render(Layout(3, nil), file); err != nil {
		t.Errorf("problem rendering empty diagram: %v", err)
	}
}
