// Package fragio reads fragment (read) inputs for assembly. Two
// formats are supported: plain text with one fragment per line (the
// *.frag format) and FASTA.
package fragio

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Record is a single named read from an input file.
type Record struct {
	// Name is the FASTA header, or "fragment-N" for line inputs
	Name string

	// Seq is the read's raw sequence
	Seq string
}

// unwantedChars matches everything that isn't a recognized base,
// used to clean FASTA sequence lines
var unwantedChars = regexp.MustCompile(`(?im)[^atgc]|\W`)

// Read parses the fragments in the file at path. FASTA files are
// recognized by a leading ">", anything else is treated as one
// fragment per line.
func Read(path string) ([]Record, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fragments file: %v", err)
	}

	file := string(dat)
	if strings.HasPrefix(strings.TrimSpace(file), ">") {
		return parseFASTA(file)
	}
	return parseLines(file)
}

// parseLines reads one fragment per line, skipping blank lines.
func parseLines(file string) ([]Record, error) {
	var records []Record
	for _, line := range strings.Split(file, "\n") {
		seq := strings.TrimSpace(line)
		if seq == "" {
			continue
		}
		records = append(records, Record{
			Name: fmt.Sprintf("fragment-%d", len(records)+1),
			Seq:  seq,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no fragments in input")
	}
	return records, nil
}

// parseFASTA reads every record of a (multi-)FASTA file. Sequence
// lines are cleaned of whitespace and characters outside the alphabet.
func parseFASTA(file string) ([]Record, error) {
	lines := strings.Split(file, "\n")

	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.TrimSpace(line[1:]))
		}
	}

	// accumulate the sequences from between the headers
	var records []Record
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqJoined := strings.Join(lines[headerIndex+1:nextLine], "")
		seq := unwantedChars.ReplaceAllString(seqJoined, "")

		if seq == "" {
			return nil, fmt.Errorf("no sequence for FASTA record %q", ids[i])
		}
		records = append(records, Record{Name: ids[i], Seq: seq})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no fragments in input")
	}
	return records, nil
}
