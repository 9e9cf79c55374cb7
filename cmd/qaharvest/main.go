// cmd/qaharvest/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/qaharvest/qaharvest/internal/config"
	"github.com/qaharvest/qaharvest/internal/extract"
	"github.com/qaharvest/qaharvest/internal/monitoring"
	"github.com/qaharvest/qaharvest/internal/output"
	"github.com/qaharvest/qaharvest/internal/scraper"
	"github.com/qaharvest/qaharvest/internal/utils"
	"github.com/qaharvest/qaharvest/pkg/types"
)

// Version information (set by build flags)
var (
	version   = "dev"
	buildTime = "unknown"
)

// options holds the parsed CLI flags.
type options struct {
	url         string
	format      string
	maxPages    int
	configFile  string
	metricsAddr string
	verbose     bool
	showVersion bool
}

func main() {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("qaharvest %s (built %s)\n", version, buildTime)
		return
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = promptForURL()
	}
	if !utils.IsValidURL(cfg.BaseURL) {
		fmt.Fprintf(os.Stderr, "error: invalid base URL: %q\n", cfg.BaseURL)
		os.Exit(1)
	}

	report, err := run(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if report.Passed {
		fmt.Printf("Validation: %s\n", report.Message)
	} else {
		fmt.Printf("Validation warning: %s\n", report.Message)
	}
}

// parseFlags defines and parses the CLI surface.
func parseFlags() options {
	var opts options
	flag.StringVar(&opts.url, "url", "", "base URL to start crawling from")
	flag.StringVar(&opts.format, "format", "", "output format: jsonl, csv or txt (default jsonl)")
	flag.IntVar(&opts.maxPages, "max-pages", 0, "maximum number of discovered pages to crawl (0 = all)")
	flag.StringVar(&opts.configFile, "config", "", "optional YAML configuration file")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "optional address for the /metrics listener")
	flag.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return opts
}

// loadConfig builds the runtime configuration: defaults, then the config
// file when given, then flag overrides on top.
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		loaded, err := config.LoadFromFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyFlagOverrides(cfg, opts)
	return cfg, cfg.Validate()
}

// applyFlagOverrides lets CLI flags win over config-file values.
func applyFlagOverrides(cfg *config.Config, opts options) {
	if opts.url != "" {
		cfg.BaseURL = opts.url
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.maxPages > 0 {
		cfg.MaxPages = opts.maxPages
	}
	if opts.metricsAddr != "" {
		cfg.MetricsAddress = opts.metricsAddr
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
}

// promptForURL asks interactively when no --url flag was supplied.
func promptForURL() string {
	fmt.Print("Please enter the base URL to start crawling from: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// run executes the full pipeline: discover pages, crawl links, extract QA
// and discussion content, transform, deduplicate, persist and validate.
func run(ctx context.Context, cfg *config.Config) (types.ValidationReport, error) {
	logger := utils.NewLoggerWithLevel(utils.ParseLevel(cfg.LogLevel))

	if cfg.MetricsAddress != "" {
		srv := monitoring.StartServer(cfg.MetricsAddress, logger)
		defer srv.Shutdown()
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return types.ValidationReport{}, err
	}

	client := scraper.NewClient(scraper.ClientConfig{
		Timeout:    cfg.RequestTimeout,
		UserAgents: cfg.UserAgents,
	})
	defer client.Close()

	fmt.Printf("Starting web crawler at %s\n", cfg.BaseURL)
	if cfg.MaxPages > 0 {
		fmt.Printf("Will crawl up to %d pages\n", cfg.MaxPages)
	} else {
		fmt.Println("Will discover and crawl all available pages")
	}

	// Stage 1: discovery.
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " discovering pages..."
	sp.Start()
	discoverer := scraper.NewDiscoverer(client, cfg.BaseURL, cfg.DiscoveryLimit, logger)
	pages := discoverer.Discover(ctx)
	sp.Stop()

	// Stage 2: link crawling. When discovery finds no content pages, fall
	// back to walking directly from the base URL.
	crawler := scraper.NewLinkCrawler(client, cfg.BaseURL, logger)
	var urls []string
	if len(pages) > 0 {
		urls = crawler.Collect(ctx, pages, cfg.MaxPages)
	} else {
		logger.Infof("no content pages discovered, crawling directly from base URL")
		urls = crawler.CollectFromBase(ctx, cfg.CrawlLimit)
	}
	fmt.Printf("Found %d URLs to process\n", len(urls))

	// Stage 3: extraction.
	qaSnapshot := output.NewSnapshotter[types.QAPair](cfg.Output.QASnapshot, cfg.SnapshotInterval, logger)
	qaExtractor := extract.NewQAExtractor(client, logger, qaSnapshot)
	qaPairs := qaExtractor.Extract(ctx, urls)
	fmt.Printf("Extracted %d Q&A pairs\n", len(qaPairs))

	profiles := extract.DefaultProfiles()
	profiles.ApplyOverrides(cfg.Profiles)
	discussionSnapshot := output.NewSnapshotter[types.DiscussionPost](cfg.Output.DiscussionSnapshot, cfg.SnapshotInterval, logger)
	discussionExtractor := extract.NewDiscussionExtractor(client, profiles, logger, discussionSnapshot)
	discussions := discussionExtractor.Extract(ctx, urls)
	fmt.Printf("Extracted %d discussion posts\n", len(discussions))

	// Stage 4: transform and merge.
	fromDiscussions := extract.DiscussionsToQA(discussions)
	fmt.Printf("Transformed %d discussions to Q&A format\n", len(fromDiscussions))
	allPairs := append(qaPairs, fromDiscussions...)
	fmt.Printf("Total Q&A pairs: %d\n", len(allPairs))

	if len(cfg.Transforms) > 0 {
		allPairs, discussions, err = extract.ApplyTransforms(cfg.Transforms, allPairs, discussions)
		if err != nil {
			return types.ValidationReport{}, err
		}
		logger.Infof("applied %d configured transforms to all records", len(cfg.Transforms))
	}

	// Stage 5: deduplicate and persist.
	manager, err := output.NewManager(format, &cfg.Output, logger)
	if err != nil {
		return types.ValidationReport{}, err
	}
	summary, err := manager.WriteAll(allPairs, discussions)
	if err != nil {
		return types.ValidationReport{}, err
	}
	fmt.Printf("Saved %d QA items to %s\n", summary.QAKept, summary.QAPath)
	fmt.Printf("Saved %d discussion items to %s\n", summary.DiscussionKept, summary.DiscussionPath)

	// Stage 6: validate for training suitability.
	return extract.ValidateForTraining(allPairs), nil
}
