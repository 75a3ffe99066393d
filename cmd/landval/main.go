package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/landval/crawl"
	"github.com/fwojciec/landval/goquery"
	landvalhttp "github.com/fwojciec/landval/http"
	lvslog "github.com/fwojciec/landval/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// RunID identifies one invocation in log output. Generated when empty.
	RunID string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("landval"),
		kong.Description("Build a geocoded land valuation dataset from region valuation pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"base_url":   landvalhttp.DefaultValuationBaseURL,
			"base_date":  landvalhttp.DefaultBaseDate,
			"user_agent": landvalhttp.DefaultUserAgent,
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'landval --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	runID := m.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", runID)

	deps.Dir = cli.Dir
	deps.Logger = logger
	deps.Extractor = lvslog.NewLoggingTableExtractor(goquery.NewTableExtractor(logger), logger)

	// Wire command-specific dependencies based on command
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")
	if cmd == "fetch" {
		fetcher := lvslog.NewLoggingFetcher(
			landvalhttp.NewFetcher(
				landvalhttp.WithTimeout(cli.Fetch.Timeout),
				landvalhttp.WithUserAgent(cli.Fetch.UserAgent),
			),
			logger,
		)
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.RateLimiter = crawl.NewDomainLimiter(cli.Fetch.Rate, crawl.WithBurst(cli.Fetch.Burst))
	}

	return kongCtx.Run(deps)
}
