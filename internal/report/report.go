// Package report renders assembly progress and results for external
// consumption: per-merge Graphviz DOT snapshots of the overlap graph
// and a final JSON summary of the run.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pgoelter/sequence-assembly/internal/assembly"
)

// Contig is one sequence left in the terminal graph.
type Contig struct {
	ID      int64  `json:"id"`
	Seq     string `json:"seq"`
	Length  int    `json:"length"`
	Origins []int  `json:"origins"`
}

// Output is a struct containing the results of one assembly run.
type Output struct {
	// RunID uniquely identifies this run
	RunID string `json:"runId"`

	// Target is the input file the fragments were read from
	Target string `json:"target"`

	// Mode is the assembly mode, "greedy" or "hamilton"
	Mode string `json:"mode"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute
	Execution float64 `json:"execution"`

	// Complete is whether the fragments chained into one sequence
	Complete bool `json:"complete"`

	// Sequence is the assembled sequence, empty when incomplete
	Sequence string `json:"seq,omitempty"`

	// Contigs left when assembly halted
	Contigs []Contig `json:"contigs"`

	// Steps is the number of merges applied
	Steps int `json:"steps"`

	// Conditions are the recoverable conditions hit during the run
	Conditions []string `json:"conditions,omitempty"`
}

// Snapshotter writes a numbered DOT file for each snapshot it
// receives. The zero-value Snapshotter (no directory) drops snapshots.
type Snapshotter struct {
	dir  string
	step int
	err  error
}

// NewSnapshotter returns a Snapshotter writing graph_N.gv files into
// dir. An empty dir disables writing.
func NewSnapshotter(dir string) (*Snapshotter, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot dir: %v", err)
		}
	}
	return &Snapshotter{dir: dir}, nil
}

// Observe renders and writes one snapshot. Implements
// assembly.Observer; write failures are held and reported by Err so
// the observer can stay error-free for the assembler.
func (s *Snapshotter) Observe(snap assembly.Snapshot) {
	if s.dir == "" || s.err != nil {
		return
	}

	name := fmt.Sprintf("graph_%d", s.step)
	b, err := marshalDOT(snap, name)
	if err != nil {
		s.err = err
		return
	}

	s.err = os.WriteFile(filepath.Join(s.dir, name+".gv"), b, 0644)
	s.step++
}

// Err returns the first error hit while writing snapshots.
func (s *Snapshotter) Err() error { return s.err }

// WriteJSON converts the run's result into an Output and writes it to
// the filename requested. An empty filename skips the file write and
// just returns the marshalled output.
func WriteJSON(filename, target, mode string, result *assembly.Result, seconds float64) ([]byte, error) {
	// store save time, using same format as log.Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		RunID:     uuid.New().String(),
		Target:    target,
		Mode:      mode,
		Time:      stamp,
		Execution: seconds,
		Complete:  result.Complete,
		Steps:     result.Steps,
		Contigs:   make([]Contig, 0, len(result.Contigs)),
	}

	if seq, ok := result.Sequence(); ok {
		out.Sequence = seq
	}
	for _, c := range result.Contigs {
		out.Contigs = append(out.Contigs, Contig{
			ID:      c.ID,
			Seq:     c.Seq,
			Length:  len(c.Seq),
			Origins: c.Origins,
		})
	}
	for _, cond := range result.Conditions() {
		out.Conditions = append(out.Conditions, cond.Error())
	}

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %v", err)
	}

	if filename != "" {
		if err := os.WriteFile(filename, output, 0666); err != nil {
			return nil, fmt.Errorf("failed to write output to %s: %v", filename, err)
		}
	}

	return output, nil
}
