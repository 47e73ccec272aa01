// Package report evaluates files of hands and writes JSON reports.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lox/niuniu/internal/deck"
	"github.com/lox/niuniu/niuniu"
)

// Entry is the outcome for one input line
type Entry struct {
	Line     int                 `json:"line"`
	Input    string              `json:"input"`
	HasNiu   bool                `json:"hasNiu"`
	Score    int                 `json:"score"`
	IsDouble bool                `json:"isDouble"`
	Triple   []int               `json:"triple,omitempty"`
	Pair     []int               `json:"pair,omitempty"`
	Variant  []int               `json:"variant,omitempty"`
	Swapped  bool                `json:"swapped"`
	Changes  []niuniu.RankChange `json:"changes,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// Summary totals a report
type Summary struct {
	Total   int `json:"total"`
	Invalid int `json:"invalid"`
	NoNiu   int `json:"noNiu"`
	NiuNiu  int `json:"niuNiu"`
	Doubles int `json:"doubles"`
	Swapped int `json:"swapped"`
}

// Report is the full batch result
type Report struct {
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// Build evaluates one hand per line of r. Blank lines and lines starting
// with '#' are skipped. Unparseable lines are recorded with an error rather
// than aborting the batch.
func Build(r io.Reader) (*Report, error) {
	rep := &Report{Entries: []Entry{}}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rep.add(evaluateLine(lineNo, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return rep, nil
}

func evaluateLine(lineNo int, line string) Entry {
	e := Entry{Line: lineNo, Input: line}

	h, err := deck.ParseHand(line)
	if err != nil {
		e.Error = err.Error()
		return e
	}

	r := niuniu.EvaluateHand(h)
	e.HasNiu = r.HasNiu
	e.Score = r.Score
	e.IsDouble = r.IsDouble
	e.Triple = r.Triple
	e.Pair = r.Pair
	e.Swapped = r.Swapped
	e.Changes = r.Changes
	if r.Variant != nil {
		e.Variant = r.Variant[:]
	}
	return e
}

func (r *Report) add(e Entry) {
	r.Entries = append(r.Entries, e)
	r.Summary.Total++

	switch {
	case e.Error != "":
		r.Summary.Invalid++
		return
	case !e.HasNiu:
		r.Summary.NoNiu++
		return
	}
	if e.Score == niuniu.MaxScore {
		r.Summary.NiuNiu++
	}
	if e.IsDouble {
		r.Summary.Doubles++
	}
	if e.Swapped {
		r.Summary.Swapped++
	}
}

// Encode writes the report to w as indented JSON
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteFile replaces filename with the report. Readers see either the
// previous file or the complete new report, never a partial one.
func (r *Report) WriteFile(filename string) error {
	return writeAtomic(filename, 0o644, r.Encode)
}
