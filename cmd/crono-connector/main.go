// cmd/crono-connector/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crono-connector/internal/common/config"
	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/common/logger"
	"crono-connector/internal/common/observability"
	"crono-connector/internal/connector"
	"crono-connector/pkg/catalog"
)

func main() {
	inputPath := flag.String("input", "-", "items JSON file, or - for stdin")
	configPath := flag.String("config", "", "config file path (defaults to ./configs/config.yaml)")
	describe := flag.Bool("describe", false, "print the resource catalog as JSON and exit")
	flag.Parse()

	if *describe {
		if err := json.NewEncoder(os.Stdout).Encode(catalog.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode catalog: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inputPath, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	items, err := readItems(inputPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address, log)
	}

	client := cronoapi.NewClient(
		cfg.Crono.BaseURL,
		cfg.Crono.APIKey,
		cfg.Crono.APISecret,
		config.GetDuration(cfg.Crono.Timeout),
	)

	runner := connector.NewRunner(client, log, obs, cfg.Crono.APIVersion, cfg.Runner.ContinueOnFail)
	results, err := runner.Run(ctx, items)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// readItems decodes the input batch: a JSON array of parameter bags, each
// becoming one item with its array position as the index.
func readItems(path string) ([]connector.Item, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var bags []map[string]any
	if err := json.Unmarshal(data, &bags); err != nil {
		return nil, fmt.Errorf("input must be a JSON array of objects: %w", err)
	}

	items := make([]connector.Item, len(bags))
	for i, bag := range bags {
		items[i] = connector.Item{Index: i, Params: bag}
	}
	return items, nil
}

func serveMetrics(address string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("metrics listener started", map[string]interface{}{"address": address})
	if err := http.ListenAndServe(address, mux); err != nil {
		log.WithError(err).Warn("metrics listener stopped", nil)
	}
}
