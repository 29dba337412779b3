// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	qsearch "github.com/poiesic/qsearch"
	"github.com/poiesic/qsearch/core"
	"github.com/poiesic/qsearch/crawler"
	"github.com/poiesic/qsearch/grover"
	"github.com/poiesic/qsearch/tui"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "qsearch",
		Usage: "Crawl web search results and locate records by simulated amplitude amplification",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "crawl",
				Usage:     "Fetch search results for a keyword and store them",
				ArgsUsage: "<keyword>",
				Action:    crawlCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum results to fetch per engine",
						Value: 50,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search stored records for a target title",
				ArgsUsage: "<target>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "shots",
						Usage: "Number of measurement draws",
						Value: grover.DefaultShots,
					},
					&cli.BoolFlag{
						Name:  "adaptive",
						Usage: "Use the adaptive iteration schedule",
						Value: true,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Fix the sampler seed for reproducible output",
					},
					&cli.IntFlag{
						Name:  "max-qubits",
						Usage: "Qubit ceiling for the index space",
						Value: grover.DefaultMaxQubits,
					},
					&cli.BoolFlag{
						Name:  "compare",
						Usage: "Print a timed linear scan alongside",
					},
					&cli.BoolFlag{
						Name:  "counts",
						Usage: "Print the full measurement counts",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored records in insertion order",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Only records whose title or summary contains this substring",
					},
				},
			},
			{
				Name:   "tui",
				Usage:  "Interactive search dashboard",
				Action: tuiCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "shots",
						Usage: "Number of measurement draws per search",
						Value: grover.DefaultShots,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Fix the sampler seed for reproducible sessions",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func crawlCommand(c *cli.Context) error {
	ctx := context.Background()

	keyword := strings.TrimSpace(c.Args().First())
	if keyword == "" {
		return fmt.Errorf("keyword argument is required")
	}

	crawlConfig := crawler.DefaultConfig()
	crawlConfig.MaxResults = c.Int("max-results")

	db, err := openDatabase(c, qsearch.WithCrawlConfig(crawlConfig))
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Keyword: %s\n", keyword)
	fmt.Fprintln(os.Stderr)

	inserted, err := db.Crawl(ctx, keyword)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	for _, record := range inserted {
		fmt.Printf("[%s] %s\n        %s\n", record.Source, record.Title, record.URL)
	}
	fmt.Printf("%d new records stored\n", len(inserted))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	target := strings.TrimSpace(c.Args().First())
	if target == "" {
		return fmt.Errorf("target argument is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := []grover.Option{
		grover.WithShots(c.Int("shots")),
		grover.WithAdaptive(c.Bool("adaptive")),
		grover.WithMaxQubits(c.Int("max-qubits")),
	}
	if c.IsSet("seed") {
		opts = append(opts, grover.WithSeed(c.Int64("seed")))
	}

	report, err := db.Search(ctx, target, opts...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if report.Found {
		fmt.Printf("found: %s (index %d)\n", report.Item, report.Index)
		if report.Fuzzy {
			fmt.Printf("matched %q as a substring\n", target)
		}
		if report.Record != nil {
			fmt.Printf("url: %s\n", report.Record.URL)
		}
	} else {
		fmt.Printf("no result: the majority measurement landed outside the database\n")
	}
	fmt.Printf("qubits: %d  states: %d  iterations: %d  shots: %d\n",
		report.Qubits, report.SpaceSize, report.Iterations, c.Int("shots"))

	if c.Bool("compare") {
		fmt.Printf("simulated search: %s\n", report.Elapsed)
		fmt.Printf("linear scan:      %s (index %d)\n", report.Classical.Elapsed, report.Classical.Index)
	}

	if c.Bool("counts") {
		labels := make([]string, 0, len(report.Counts))
		for label := range report.Counts {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Printf("%s %d\n", label, report.Counts[label])
		}
	}
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var records []*core.Record
	if keyword := c.String("query"); keyword != "" {
		records, err = db.Query(ctx, keyword)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
	} else {
		records, err = db.Records(ctx)
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}
	}

	for i, record := range records {
		fmt.Printf("%4d  [%s] %s\n      %s\n", i, record.Source, record.Title, record.URL)
		if record.Summary != "" {
			fmt.Printf("      %s\n", record.Summary)
		}
	}
	fmt.Printf("%d records\n", len(records))
	return nil
}

func tuiCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := []tui.Option{tui.WithShots(c.Int("shots"))}
	if c.IsSet("seed") {
		opts = append(opts, tui.WithSeed(c.Int64("seed")))
	}
	return tui.Run(db, opts...)
}

func openDatabase(c *cli.Context, opts ...qsearch.DatabaseOption) (*qsearch.Database, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := qsearch.NewDatabase(dbPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
