package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/kvit-s/kvit-editor/internal/config"
	"github.com/kvit-s/kvit-editor/internal/editor"
	"github.com/kvit-s/kvit-editor/internal/history"
	"github.com/kvit-s/kvit-editor/internal/logging"
)

// Version info set by ldflags at build time
var (
	version    = "dev"
	commitHash = "dev"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (missing file uses defaults)")
	logFile := flag.String("log", "", "log file path (overrides config, empty uses config)")
	pretty := flag.Bool("pretty", false, "render the result for a terminal instead of JSON")
	showVersion := flag.Bool("version", false, "show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("kvit-editor %s (%s)\n", version, commitHash)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	logger, err := logging.NewLogger(cfg.Log.File, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	var store *history.Store
	if cfg.History.Enabled {
		store = history.NewStore(cfg.History.MaxSnapshots)
	}
	engine := editor.NewEngine(cfg, logger, store)

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("Failed to read request: %v", err)
	}
	input, err := editor.DecodeRequest(data)
	if err != nil {
		// The only failure mode that exits non-zero: the request could not
		// be decoded at all. Everything past this point is reported inside
		// the result.
		logger.Error("request decode failed", err)
		log.Fatalf("%v", err)
	}

	result := engine.Handle(input)

	if *pretty {
		printPretty(result)
		return
	}
	out, err := json.Marshal(result)
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

// printPretty renders the result for a human terminal; agents consume the
// JSON form instead.
func printPretty(result editor.Result) {
	if result.IsError {
		color.New(color.FgRed, color.Bold).Println("error")
		color.Red("%s", result.Content)
		return
	}
	color.New(color.FgGreen, color.Bold).Println("ok")
	fmt.Println(result.Content)
}
