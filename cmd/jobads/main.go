package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fr4nk3nst1ner/jobads/internal/board"
	"github.com/fr4nk3nst1ner/jobads/internal/client"
	"github.com/fr4nk3nst1ner/jobads/internal/config"
	"github.com/fr4nk3nst1ner/jobads/internal/offline"
	"github.com/fr4nk3nst1ner/jobads/internal/sheet"
	"github.com/fr4nk3nst1ner/jobads/internal/ui"
	"github.com/pterm/pterm"
)

// printExamples displays usage examples for the program
func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\n📋 jobads Usage Examples 📋")
	fmt.Fprintln(w, "\n1. Show the first page of jobs, soonest deadline first:")
	fmt.Fprintln(w, "   jobads")
	fmt.Fprintln(w, "\n2. Search titles and descriptions for \"engineer\", latest deadline first, page 2:")
	fmt.Fprintln(w, "   jobads -q engineer -sort latest -page 2")
	fmt.Fprintln(w, "\n3. Browse interactively with share links:")
	fmt.Fprintln(w, "   jobads -interactive -share")
	fmt.Fprintln(w, "\n4. Emit the page as JSON or as the HTML job list:")
	fmt.Fprintln(w, "   jobads -format json")
	fmt.Fprintln(w, "   jobads -format html -q nurse")
	fmt.Fprintln(w, "\n5. Read a different sheet through a proxy:")
	fmt.Fprintln(w, "   jobads -sheet <sheet-id> -proxy http://localhost:8080")
	fmt.Fprintln(w, "\n6. Pre-cache the board's static assets and list them:")
	fmt.Fprintln(w, "   jobads -install-assets -asset-origin https://jobs.example")
}

type options struct {
	query         string
	sort          string
	page          int
	format        string
	interactive   bool
	share         bool
	progress      bool
	silence       bool
	examples      bool
	installAssets bool
	configPath    string
	envFile       string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jobads", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts     options
		sheetID  string
		url      string
		proxyURL string
		insecure bool
		timeout  time.Duration
		timezone string
		origin   string
		debug    bool
		noBanner bool
	)
	fs.StringVar(&opts.query, "q", "", "Search titles and descriptions")
	fs.StringVar(&opts.sort, "sort", "", "Sort by deadline: latest or earliest")
	fs.IntVar(&opts.page, "page", 1, "Page number to show")
	fs.StringVar(&opts.format, "format", "", "Output format: cards, table, json or html")
	fs.BoolVar(&opts.interactive, "interactive", false, "Browse the board interactively")
	fs.BoolVar(&opts.share, "share", false, "Show social share links for each job")
	fs.BoolVar(&opts.progress, "progress", false, "Show a download progress bar")
	fs.BoolVar(&opts.installAssets, "install-assets", false, "Install the offline asset cache and list it")
	fs.BoolVar(&opts.examples, "examples", false, "Show usage examples")
	fs.StringVar(&opts.configPath, "config", config.DefaultPath, "Path to a YAML config file")
	fs.StringVar(&opts.envFile, "env", config.DefaultEnvFile, "Path to a .env file")
	fs.StringVar(&sheetID, "sheet", "", "Google Sheet id to read jobs from")
	fs.StringVar(&url, "url", "", "Full gviz endpoint URL (overrides -sheet)")
	fs.StringVar(&proxyURL, "proxy", "", "Proxy URL to use")
	fs.BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	fs.DurationVar(&timeout, "timeout", 0, "HTTP timeout")
	fs.StringVar(&timezone, "tz", "", "Time zone used to read deadlines (default local)")
	fs.StringVar(&origin, "asset-origin", "", "Site to install offline assets from")
	fs.BoolVar(&debug, "debug", false, "Enable debug logging")

	// Banner control flags (two aliases for the same functionality)
	fs.BoolVar(&opts.silence, "silence", false, "Silence the banner and spinner")
	fs.BoolVar(&noBanner, "nobanner", false, "Silence the banner (alias for -silence)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	opts.silence = opts.silence || noBanner

	if opts.examples {
		printExamples(stdout)
		return 0
	}

	cfg, err := config.Load(opts.configPath, opts.envFile)
	if err != nil {
		fmt.Fprintln(stderr, pterm.Error.Sprint(err))
		return 1
	}

	// Flags given on the command line win over file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sheet":
			cfg.SheetID = sheetID
		case "url":
			cfg.URL = url
		case "proxy":
			cfg.ProxyURL = proxyURL
		case "insecure":
			cfg.Insecure = insecure
		case "timeout":
			cfg.Timeout = timeout
		case "tz":
			cfg.Timezone = timezone
		case "asset-origin":
			cfg.AssetOrigin = origin
		case "debug":
			cfg.Debug = debug
		case "sort":
			cfg.Sort = opts.sort
		case "format":
			cfg.Format = opts.format
		}
	})
	cfg.Sanitize()

	logger := ui.NewLogger(cfg.Debug, stderr)

	if !ui.IsValidFormat(cfg.Format) {
		logger.Error("invalid format", logger.Args("format", cfg.Format))
		return 2
	}
	loc, err := cfg.Location()
	if err != nil {
		logger.Error("invalid configuration", logger.Args("error", err.Error()))
		return 2
	}

	httpClient := client.CreateHTTPClient(client.Options{
		ProxyURL: cfg.ProxyURL,
		Timeout:  cfg.Timeout,
		Insecure: cfg.Insecure,
	})
	renderer := &ui.Renderer{Out: stdout, Location: loc, ShowShare: opts.share}

	if opts.installAssets {
		return installAssets(ctx, cfg, httpClient, renderer, logger)
	}

	terminal := cfg.Format == ui.FormatCards || cfg.Format == ui.FormatTable
	ui.PrintBanner(stdout, opts.silence || !terminal)

	endpoint := cfg.URL
	if endpoint == "" {
		endpoint = sheet.SheetURL(cfg.SheetID)
	}
	loader := sheet.NewLoader(endpoint, httpClient, logger)
	loader.Progress = opts.progress
	loader.ProgressOut = stderr

	var spinner *pterm.SpinnerPrinter
	if terminal && !opts.silence && !opts.progress {
		spinner, _ = pterm.DefaultSpinner.Start("Loading jobs...")
	}

	records, err := loader.Load(ctx)
	if err != nil {
		logger.Error("error loading jobs from sheet", logger.Args("error", err.Error()))
		if spinner != nil {
			spinner.Fail(sheet.UserMessage)
		} else {
			fmt.Fprintln(stdout, sheet.UserMessage)
		}
		return 1
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("Loaded %d jobs", len(records)))
	}

	state := board.NewViewState(records, loc)
	state.CurrentPage = opts.page
	sortOpt := board.ParseSortOption(cfg.Sort)

	if opts.interactive {
		session := &ui.Session{
			State:    state,
			Search:   opts.query,
			Sort:     sortOpt,
			Format:   cfg.Format,
			Prompter: ui.PtermPrompter{},
			Renderer: renderer,
		}
		if err := session.Run(); err != nil {
			logger.Error("interactive session ended", logger.Args("error", err.Error()))
			return 1
		}
		return 0
	}

	page, _ := state.View(board.Query{Search: opts.query, Sort: sortOpt, Page: opts.page})
	var suggestions []string
	if len(page.Items) == 0 {
		suggestions = board.Suggest(records, opts.query, 3)
	}
	if err := renderer.Render(cfg.Format, page, opts.query, suggestions); err != nil {
		logger.Error("failed to render jobs", logger.Args("error", err.Error()))
		return 1
	}
	return 0
}

func installAssets(ctx context.Context, cfg *config.Config, httpClient *http.Client, renderer *ui.Renderer, logger *pterm.Logger) int {
	if cfg.AssetOrigin == "" {
		logger.Error("-install-assets needs -asset-origin or asset_origin in the config")
		return 2
	}

	cache := offline.New()
	if err := cache.Install(ctx, httpClient, cfg.AssetOrigin); err != nil {
		logger.Error("offline cache install failed", logger.Args("error", err.Error()))
		return 1
	}
	logger.Debug("offline cache installed", logger.Args("name", cache.Name, "origin", cfg.AssetOrigin))

	if err := renderer.Assets(cache.Name, cache.Assets()); err != nil {
		logger.Error("failed to render assets", logger.Args("error", err.Error()))
		return 1
	}
	return 0
}
