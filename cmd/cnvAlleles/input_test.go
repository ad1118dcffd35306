package main

import (
	"flag"
	"strings"
	"testing"
)

func TestInputFlagsCheck(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{[]string{"-genomes", "population.txt"}, false},
		{[]string{"-bam", "reads.bam", "-ref", "locus.fa", "-chrom", "K3L", "-pos", "140", "-alt", "G"}, false},
		{[]string{"-genomes", "population.txt", "-bam", "reads.bam"}, true},
		{[]string{"-bam", "reads.bam", "-ref", "locus.fa", "-chrom", "K3L", "-pos", "140"}, true},
		{[]string{"-bam", "reads.bam", "-ref", "locus.fa", "-chrom", "K3L", "-pos", "140", "-alt", "G", "-minMapQ", "300"}, true},
		{[]string{}, true},
	}
	for _, test := range tests {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		in := addInputFlags(fs)
		if err := fs.Parse(test.args); err != nil {
			t.Fatal(err)
		}
		err := in.check()
		if (err != nil) != test.wantErr {
			t.Errorf("check(%v) returned %v, expected error: %t", test.args, err, test.wantErr)
		}
	}
}

func TestPipelineFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	pf := addPipelineFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	opts := pf.options()
	if opts.CnMax != 5 || opts.Random || opts.Seed != 0 {
		t.Errorf("unexpected default options %+v", opts)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	pf = addPipelineFlags(fs)
	if err := fs.Parse([]string{"-rand", "-cn", "3"}); err != nil {
		t.Fatal(err)
	}
	opts = pf.options()
	if opts.CnMax != 3 || !opts.Random || opts.Seed == 0 {
		t.Errorf("expected random options with a time seed, found %+v", opts)
	}
}

func TestCommandMap(t *testing.T) {
	m := commandMap()
	for _, name := range []string{"extract", "condensed", "table"} {
		if m[name] == nil {
			t.Errorf("missing subcommand %s", name)
		}
	}
}

func TestWorkflowUsesSubcommands(t *testing.T) {
	m := commandMap()
	for _, line := range strings.Split(strings.TrimSpace(workflow), "\n")[1:] {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "cnvAlleles" || m[fields[1]] == nil {
			t.Errorf("workflow line %q does not run a subcommand", line)
		}
	}
}
