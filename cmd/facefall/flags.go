package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/facefall/config"
)

// parseHost overlays command line flags on environment-derived host options
func parseHost(args []string, base config.Host) (config.Host, error) {
	h := base
	fs := flag.NewFlagSet("facefall", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&h.Limit, "limit", h.Limit, "time limit: beginner, intermediate, advanced")
	fs.BoolVar(&h.Debug, "debug", h.Debug, "write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&h.ConfigPath, "config", h.ConfigPath, "TOML gameplay table overlay")
	fs.StringVar(&h.DBPath, "db", h.DBPath, "score database path, empty disables")
	fs.StringVar(&h.Listen, "listen", h.Listen, "spectator stream address, e.g. :8090")
	fs.BoolVar(&h.Mute, "mute", h.Mute, "start with sound muted")
	fs.Int64Var(&h.Seed, "seed", h.Seed, "spawn seed, 0 picks a random one")

	if err := fs.Parse(args); err != nil {
		return config.Host{}, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return config.Host{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return h, nil
}
