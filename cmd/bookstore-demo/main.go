package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err = run(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
		log.Printf("Demo failed: %v", err)
		os.Exit(1)
	}
}
