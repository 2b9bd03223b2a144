// Command virtwire is an interactive workbench for wire simulations.
//
// It hosts a readline shell for creating wires and drivers, driving
// them (singly or in batches), sensing, and watching changes, with
// optional netlist preloading and binary trace capture.
//
// Usage:
//
//	virtwire [-netlist bus.yaml] [-trace run.vtrace] [-verbose]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/virtwire/virtwire-go/cmd/virtwire/interactive"
	"github.com/virtwire/virtwire-go/pkg/log"
	"github.com/virtwire/virtwire-go/pkg/wire"
)

func main() {
	var (
		netlistPath = flag.String("netlist", "", "YAML netlist to preload")
		tracePath   = flag.String("trace", "", "capture trace events to this file (CBOR)")
		verbose     = flag.Bool("verbose", false, "echo trace events to the console")
	)
	flag.Parse()

	shell, err := interactive.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "virtwire: %v\n", err)
		os.Exit(1)
	}

	// Route operational logging through readline so it does not
	// interfere with the prompt.
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(shell.Stdout(), &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	var sinks []log.Logger
	if *tracePath != "" {
		fl, err := log.NewFileLogger(*tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "virtwire: open trace file: %v\n", err)
			os.Exit(1)
		}
		defer fl.Close()
		sinks = append(sinks, fl)
	}
	if *verbose {
		sinks = append(sinks, log.NewSlogAdapter(logger))
	}
	if len(sinks) > 0 {
		rec := log.NewRecorder(log.NewMultiLogger(sinks...))
		wire.SetTracer(rec)
		logger.Info("trace capture enabled", slog.String("session", rec.SessionID()))
	}

	if *netlistPath != "" {
		if err := shell.LoadNetlist(*netlistPath); err != nil {
			fmt.Fprintf(os.Stderr, "virtwire: %v\n", err)
			os.Exit(1)
		}
	}

	shell.Run()
}
