// cmd/mathtag/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/mathtag/internal/app"
	"github.com/bethropolis/mathtag/internal/buffer"
	"github.com/bethropolis/mathtag/internal/config"
	"github.com/bethropolis/mathtag/internal/fidelity"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/report"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// --- Argument & Flag Parsing ---
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <file>\n", config.AppName)
		fmt.Fprintf(stderr, "       %s -report <edited-file> <original-file>\n\nFlags:\n", config.AppName)
		fs.PrintDefaults()
	}
	flags := config.NewFlags(fs)
	rest, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *flags.Version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, version)
		return 0
	}

	wantArgs := 1
	if *flags.Report {
		wantArgs = 2
	}
	if len(rest) != wantArgs {
		fs.Usage()
		return 2
	}

	// --- Configuration & Logger ---
	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)

	logOutput, closeLog, err := openLog(cfg.Logger.LogFilePath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)

	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	if unknown := config.UnknownKeys(); len(unknown) > 0 {
		logger.Warnf("Config: Ignoring unknown keys: %v", unknown)
	}

	if *flags.Report {
		return runReport(cfg, rest[0], rest[1], stdout, stderr)
	}

	// --- Create and Run App ---
	logger.Infof("Starting %s %s on %q", config.AppName, version, rest[0])
	mathtagApp, err := app.NewApp(cfg, rest[0])
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	if err := mathtagApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	logger.Infof("%s finished.", config.AppName)
	return 0
}

// runReport scores an edited file against its original and prints the result.
func runReport(cfg *config.Config, editedPath, originalPath string, stdout, stderr io.Writer) int {
	edited := buffer.NewSentenceBuffer(cfg.Document.MarkedOnly)
	original := buffer.NewSentenceBuffer(cfg.Document.MarkedOnly)
	for _, load := range []struct {
		buf  *buffer.SentenceBuffer
		path string
	}{{edited, editedPath}, {original, originalPath}} {
		if err := load.buf.Load(load.path); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
			return 1
		}
	}

	if edited.Count() != original.Count() {
		logger.Warnf("Report: %d edited vs %d original sentences", edited.Count(), original.Count())
	}
	rep := fidelity.Score(original.Sentences(), edited.Sentences())
	if err := report.Write(stdout, rep, true); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	return 0
}

// openLog opens the log destination. Empty means the default log file, "-" means stderr.
func openLog(path string, stderr io.Writer) (io.Writer, func(), error) {
	if path == "-" {
		return stderr, func() {}, nil
	}
	if path == "" {
		path = config.DefaultLogFileName
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return logFile, func() { _ = logFile.Close() }, nil
}
