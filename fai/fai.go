package fai

import (
	"fmt"
	"github.com/vertgenlab/gonomics/fileio"
	"strconv"
	"strings"
)

// Index stores the length and byte offset of each fasta record.
type Index struct {
	chroms  []chrOffset    // for search by index
	nameMap map[string]int // maps chr name to index in chroms
}

// String method for Index enables easy writing with the fmt package.
func (idx Index) String() string {
	answer := new(strings.Builder)
	for i := range idx.chroms {
		answer.WriteString(idx.chroms[i].String())
		answer.WriteByte('\n')
	}
	return answer.String()
}

// Size returns the length of chr and whether chr is present in the index.
func (idx Index) Size(chr string) (int, bool) {
	i, found := idx.nameMap[chr]
	if !found {
		return 0, false
	}
	return idx.chroms[i].len, true
}

// Names returns the record names in file order.
func (idx Index) Names() []string {
	ans := make([]string, len(idx.chroms))
	for i := range idx.chroms {
		ans[i] = idx.chroms[i].name
	}
	return ans
}

// chrOffset has offset information about each reference. Equivalent to one line of a fai file.
type chrOffset struct {
	name         string // Name of this reference sequence
	len          int    // Total length of this reference sequence, in bases
	offset       int    // Offset within the FASTA file of this sequence's first base
	basesPerLine int    // The number of bases on each line
	bytesPerLine int    // The number of bytes in each line, including the newline
}

// String method for chrOffset enables easy writing with the fmt package.
func (c chrOffset) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d", c.name, c.len, c.offset, c.basesPerLine, c.bytesPerLine)
}

// ReadIndex reads a fai index file.
func ReadIndex(filename string) (Index, error) {
	file := fileio.EasyOpen(filename)
	var answer Index
	var curr chrOffset
	var line string
	var col []string
	var done bool
	var err error
	var vals [4]int
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		col = strings.Split(line, "\t")
		if len(col) != 5 {
			file.Close()
			return Index{}, fmt.Errorf("malformed index file: %s\nerror on line:\n%s", filename, line)
		}

		for i := range vals {
			vals[i], err = strconv.Atoi(col[i+1])
			if err != nil {
				file.Close()
				return Index{}, fmt.Errorf("malformed index file: %s: %w", filename, err)
			}
		}
		curr.name = col[0]
		curr.len, curr.offset, curr.basesPerLine, curr.bytesPerLine = vals[0], vals[1], vals[2], vals[3]
		answer.chroms = append(answer.chroms, curr)
	}

	err = file.Close()
	if err != nil {
		return Index{}, err
	}

	answer.nameMap = make(map[string]int)
	for i := range answer.chroms {
		answer.nameMap[answer.chroms[i].name] = i
	}
	return answer, nil
}
