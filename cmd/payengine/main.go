package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/amirasaad/payengine/internal/initializer"
	"github.com/amirasaad/payengine/pkg/app"
	"github.com/amirasaad/payengine/pkg/config"
)

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		fatal("could not load config:", err)
	}
	logger := initializer.SetupLogger(cfg.Log)

	input := cfg.Input
	if len(os.Args) > 1 {
		input = os.Args[1]
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "Usage: payengine <transactions.csv>")
		fmt.Fprintln(os.Stderr, "Reads payment instructions from the CSV file and writes the final account snapshot to stdout.")
		os.Exit(1)
	}

	a := app.New(&app.Deps{Logger: logger}, cfg)
	if err := a.Run(input, os.Stdout); err != nil {
		fatal("run failed:", err)
	}
}

func fatal(msg string, err error) {
	color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, msg, err)
	os.Exit(1)
}
