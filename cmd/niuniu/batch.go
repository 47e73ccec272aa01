package main

import (
	"fmt"
	"os"

	"github.com/lox/niuniu/internal/report"
)

// BatchCmd evaluates one hand per line of a file
type BatchCmd struct {
	Input string `arg:"" type:"existingfile" help:"File with one hand per line ('#' starts a comment)"`
	Out   string `short:"o" required:"" help:"Path of the JSON report to write"`
}

func (c *BatchCmd) Run(rt *Runtime) error {
	f, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	rep, err := report.Build(f)
	if err != nil {
		return err
	}
	if err := rep.WriteFile(c.Out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	s := rep.Summary
	rt.Logger.Info("Wrote report", "path", c.Out, "hands", s.Total, "invalid", s.Invalid)
	_, err = fmt.Fprintf(rt.Out, "%d hands, %d invalid, %d without niu, %d niu niu, %d doubles -> %s\n",
		s.Total, s.Invalid, s.NoNiu, s.NiuNiu, s.Doubles, c.Out)
	return err
}
