package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/zsiec/cutcheck/internal/config"
	"github.com/zsiec/cutcheck/internal/correlate"
	"github.com/zsiec/cutcheck/internal/edl"
	"github.com/zsiec/cutcheck/internal/errors"
	"github.com/zsiec/cutcheck/internal/fixture"
	"github.com/zsiec/cutcheck/internal/logger"
	"github.com/zsiec/cutcheck/internal/report"
	"github.com/zsiec/cutcheck/internal/xmeml"
	"github.com/zsiec/cutcheck/pkg/version"
)

func main() {
	var (
		configPath  string
		showVersion bool
		showSummary bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file (optional)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showSummary, "summary", false, "Print a styled summary after a successful run")
	flag.Parse()

	// Show version and exit if requested
	if showVersion {
		fmt.Println(version.GetInfo().String())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: cutcheck [flags] <sequence.xml> <events.edl>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	xmlPath, edlPath := args[0], args[1]

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	runLog := logger.NewLogrusAdapter(
		logger.WithInputs(log, xmlPath, edlPath).WithField("run_id", uuid.New().String()))
	handler := errors.NewHandler(runLog)

	runLog.WithField("version", version.GetInfo().Short()).Info("Starting cut validation")

	doc, err := xmeml.ParseFile(xmlPath)
	if err != nil {
		handler.Fatal(err)
	}

	events, err := edl.ScanFile(edlPath)
	if err != nil {
		handler.Fatal(err)
	}

	info, err := correlate.Assemble(doc, events, runLog)
	if err != nil {
		handler.Fatal(err)
	}

	outPath := fixture.OutputPath(xmlPath, cfg.Output.Dir)
	runLog.WithField("output", outPath).Info("Writing fixture")

	if err := fixture.Write(outPath, info, cfg.Output.Indent); err != nil {
		handler.Fatal(err)
	}

	runLog.WithFields(logger.Fields{
		"events": len(info.Events),
		"output": outPath,
	}).Info("Cut validated")

	if showSummary || cfg.Report.Enabled {
		fmt.Println(report.Render(info))
	}
}
