package main

import (
	"fmt"
	"os"

	"github.com/marcodamonte/algorithms/internal/config"
)

// Each subcommand runs one snippet. Without arguments it uses the sample
// input the snippet was written around.
//
// Run:
//
//	go run ./cmd/snippets all
//	go run ./cmd/snippets compact -k 2 1 1 1 2 2 3
//	go run ./cmd/snippets -o json rotate -k 3 1 2 3 4 5 6 7
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load config:", err)
		os.Exit(1)
	}

	a := &app{cfg: cfg, stdout: os.Stdout}
	if err := a.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
