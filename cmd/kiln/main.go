// Package main is the entry point for the kiln editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/kiln/internal/app"
	"github.com/dshills/kiln/internal/config"
	"github.com/dshills/kiln/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = app.Version
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading configuration: %v\n", err)
		return 1
	}

	// Flags beat the config file.
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
		return 1
	}
	defer closeLog()

	term := terminal.New(os.Stdin, os.Stdout)
	editor := app.New(term, app.Options{
		Filename: opts.filename,
		Logger:   logger,
	})

	// Run blocks until quit or failure. Any error is printed after the
	// terminal has been restored, so it lands on a usable screen.
	if err := editor.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// newLogger builds the application logger from the log configuration.
// With no log file set, logging is disabled; the editor owns the
// terminal while it runs, so logs must never go to stdout or stderr.
func newLogger(cfg config.LogConfig) (*app.Logger, func(), error) {
	if cfg.File == "" {
		return app.NullLogger, func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Level),
		Output: f,
		Prefix: "kiln",
	})
	return logger, func() { _ = f.Close() }, nil
}

type options struct {
	configPath string
	logFile    string
	logLevel   string
	filename   string
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Kiln - minimal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: kiln [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kiln                        Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  kiln notes.txt              Open a file\n")
		fmt.Fprintf(os.Stderr, "  kiln -log-file kiln.log     Log to a file while editing\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Kiln %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level when given; empty defers to the config file.
	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	// The first positional argument is the file to open.
	if flag.NArg() > 0 {
		opts.filename = flag.Arg(0)
	}

	return opts
}
