package main

import (
	"fmt"
	"os"

	"pocketedit/config"
	"pocketedit/editor"
	"pocketedit/logs"
)

func main() {
	args := os.Args[1:]
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintln(os.Stderr, "usage: pocketedit <file>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	log := logs.NewFromEnv()
	defer log.Close()

	e := editor.New(cfg, log)
	if err := e.Run(args[0]); err != nil {
		log.Close()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
