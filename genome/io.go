package genome

import (
	"fmt"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"strconv"
	"strings"
)

// afKey starts the optional first line of a population file holding the allele frequency.
const afKey string = "af"

// Read parses a population file. The file may start with a line "af\t<frequency>" and then
// holds one genome per line with calls separated by commas. If the allele frequency line is
// absent the frequency is computed from the genomes. Files ending in .gz are decompressed.
func Read(filename string) (Population, error) {
	var ans Population
	var err error
	var line string
	var done, foundAf bool
	var g Genome
	var lineNum int
	file := fileio.EasyOpen(filename)
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		lineNum++
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, afKey) {
			if foundAf || len(ans.Genomes) > 0 {
				file.Close()
				return Population{}, fmt.Errorf("%s line %d: af must be declared once before any genome: %w", filename, lineNum, ErrInvalidInput)
			}
			ans.AF, err = parseAf(line)
			if err != nil {
				file.Close()
				return Population{}, fmt.Errorf("%s line %d: %w", filename, lineNum, err)
			}
			foundAf = true
			continue
		}

		g, err = ParseGenome(line)
		if err != nil {
			file.Close()
			return Population{}, fmt.Errorf("%s line %d: %w", filename, lineNum, err)
		}
		ans.Genomes = append(ans.Genomes, g)
	}

	err = file.Close()
	if err != nil {
		return Population{}, err
	}

	if !foundAf {
		ans.AF = ans.AlleleFrequency()
	}
	return ans, nil
}

func parseAf(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != afKey {
		return 0, fmt.Errorf("malformed af line %q: %w", line, ErrInvalidInput)
	}
	af, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed af line %q: %w", line, ErrInvalidInput)
	}
	if !IsFraction(af) {
		return 0, fmt.Errorf("af %g outside [0,1]: %w", af, ErrInvalidInput)
	}
	return af, nil
}

// ParseGenome parses a comma separated list of 0/1 calls.
func ParseGenome(s string) (Genome, error) {
	words := strings.Split(s, ",")
	ans := make(Genome, len(words))
	for i := range words {
		switch strings.TrimSpace(words[i]) {
		case "0":
			ans[i] = WildType
		case "1":
			ans[i] = Mutant
		default:
			return nil, fmt.Errorf("non-binary call %q in genome %q: %w", words[i], s, ErrInvalidInput)
		}
	}
	return ans, nil
}

// Write writes p in the format understood by Read.
func Write(out io.Writer, p Population) error {
	var err error
	_, err = fmt.Fprintf(out, "%s\t%g\n", afKey, p.AF)
	if err != nil {
		return err
	}
	for i := range p.Genomes {
		_, err = fmt.Fprintln(out, p.Genomes[i].String())
		if err != nil {
			return err
		}
	}
	return nil
}
