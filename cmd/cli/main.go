package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tasktailordevai/likability-score/internal/config"
	"github.com/tasktailordevai/likability-score/internal/service"
)

const usage = `Usage:
  likability analyze <name> [--refresh]
  likability compare <name1> <name2> [--refresh]
  likability cache-stats
  likability cache-clear`

// Results go to stdout as JSON; progress and errors go to stderr, so output
// can be piped.
func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	analyzer, err := service.BuildAnalyzer(cfg)
	if err != nil {
		log.Fatalf("error building analyzer: %v", err)
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(analyzer, os.Args[2:])
	case "compare":
		runCompare(analyzer, os.Args[2:])
	case "cache-stats":
		printJSON(analyzer.CacheStats())
	case "cache-clear":
		printJSON(map[string]int{"cleared": analyzer.ClearCache()})
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
}

func runAnalyze(analyzer *service.Analyzer, args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	refresh := fs.Bool("refresh", false, "bypass the cache")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	result, err := analyzer.AnalyzeWithProgress(fs.Arg(0), *refresh, func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	})
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	printJSON(result)
}

func runCompare(analyzer *service.Analyzer, args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	refresh := fs.Bool("refresh", false, "bypass the cache")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if fs.NArg() > 2 {
		rankings, err := analyzer.MultiCompare(fs.Args())
		if err != nil {
			log.Fatalf("comparison failed: %v", err)
		}
		printJSON(rankings)
		return
	}

	result, err := analyzer.Compare(fs.Arg(0), fs.Arg(1), *refresh)
	if err != nil {
		log.Fatalf("comparison failed: %v", err)
	}

	printJSON(result)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("error encoding output: %v", err)
	}
}
