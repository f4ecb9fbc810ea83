package main

import (
	flag "github.com/spf13/pflag"
)

// serverFlags holds command line flags for the API server.
type serverFlags struct {
	config  string
	listen  string
	workers int
	verbose bool
}

// parseFlags parses the server flags from args (including argv[0]).
func parseFlags(args []string) (*serverFlags, error) {
	fs := flag.NewFlagSet("sow-api", flag.ContinueOnError)
	f := &serverFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path (YAML)")
	fs.StringVarP(&f.listen, "listen", "l", "", "listen address (overrides config)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent document builds (0 = auto)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
