package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lox/niuniu/internal/deck"
	"github.com/lox/niuniu/internal/display"
	"github.com/lox/niuniu/internal/server"
	"github.com/lox/niuniu/niuniu"
)

// EvalCmd evaluates one hand from the command line
type EvalCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'K Q J 5 5' or K,Q,J,5,5"`
	JSON  bool     `help:"Print the result as JSON"`
}

func (c *EvalCmd) Run(rt *Runtime) error {
	h, err := deck.ParseTokens(c.Cards)
	if err != nil {
		return err
	}

	r := niuniu.EvaluateHand(h)
	rt.Logger.Debug("Evaluated hand", "hand", display.FormatHand(h), "score", r.Score, "double", r.IsDouble)

	if c.JSON {
		enc := json.NewEncoder(rt.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(server.NewResponse("", h, r, time.Now()))
	}

	_, err = fmt.Fprintln(rt.Out, display.RenderResult(h, r))
	return err
}
