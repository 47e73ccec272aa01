package main

import (
	"time"

	"github.com/lox/niuniu/internal/server"
)

// ServeCmd runs the HTTP/WebSocket evaluation service
type ServeCmd struct {
	Addr string `short:"a" help:"Server address to bind to (overrides config)"`
}

func (c *ServeCmd) Run(rt *Runtime) error {
	settings := rt.Config.Server
	addr := rt.Config.ServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	s := server.NewServer(server.Options{
		Addr:           addr,
		WriteTimeout:   time.Duration(settings.WriteTimeoutSeconds) * time.Second,
		MaxMessageSize: settings.MaxMessageSize,
	}, rt.Logger)

	ctx, cancel := setupSignalHandler(rt.Logger)
	defer cancel()
	return s.Run(ctx)
}
