package main

import "github.com/lox/niuniu/internal/tui"

// PlayCmd runs the interactive calculator
type PlayCmd struct{}

func (c *PlayCmd) Run(rt *Runtime) error {
	rt.Logger.Info("Starting interactive calculator")
	return tui.Run(rt.Logger)
}
