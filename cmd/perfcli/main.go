package main

//// Small CLI tool to inspect an athlete's performance timeline: reads a raw
//// results payload from a JSON file (or fetches it from the backend) and
//// prints the normalized, family-grouped timeline.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/athletiq/athletiq/internal/config"
	"github.com/athletiq/athletiq/internal/logging"
	"github.com/athletiq/athletiq/internal/trackfield"
	"github.com/athletiq/athletiq/pkg/perf"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "", "path for the TOML config file")
	jsonPath := flag.String("json", "", "path to a raw performances JSON payload")
	backendURL := flag.String("backend", "", "backend base URL, used when -json is not given")
	athleteID := flag.String("athlete", "", "athlete ID to fetch performances for")
	appSecret := flag.String("secret", os.Getenv("ATHLETIQ_APP_SECRET"), "app secret header value")
	flag.Parse()

	cfg := &config.Config{LogToStdout: true, LogLevel: "info", HTTPTimeoutSeconds: 15}
	if *configPath != "" {
		loaded, err := config.Load(*env, *configPath)
		if err != nil {
			fmt.Printf("Error: load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *backendURL == "" {
		*backendURL = cfg.BackendURL
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "perfcli",
	})

	payload, err := loadPayload(ctx, cfg, *jsonPath, *backendURL, *athleteID, *appSecret)
	if err != nil {
		log.Errorf("load payload: %s", err)
		os.Exit(1)
	}

	points := perf.Normalize(payload)
	grouped := perf.GroupByFamily(points)

	output, err := json.MarshalIndent(grouped, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal timeline: %s", err)
	}
	fmt.Println(string(output))

	for _, family := range []perf.Family{
		perf.FamilyCourses, perf.FamilySauts, perf.FamilyLancers, perf.FamilyCombined,
	} {
		if best := perf.Best(points, family); best != nil {
			log.Infof("best %s: %s on %s (%s)", family, best.RawPerformance, best.Date, best.Discipline)
		}
	}

	// entries the normalizer dropped as unusable scraped noise
	if dropped := countEntries(payload) - len(points); dropped > 0 {
		log.Warnf("dropped %d malformed entries", dropped)
	}
}

func loadPayload(
	ctx context.Context,
	cfg *config.Config,
	jsonPath, backendURL, athleteID, appSecret string,
) (any, error) {
	if jsonPath != "" {
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		var payload any
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("parse payload file: %w", err)
		}
		return payload, nil
	}

	if backendURL == "" || athleteID == "" {
		return nil, fmt.Errorf("either -json, or both -backend and -athlete must be given")
	}

	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := trackfield.NewClient(backendURL, appSecret, &http.Client{Timeout: timeout})
	return client.GetPerformances(ctx, athleteID)
}

func countEntries(payload any) int {
	switch p := payload.(type) {
	case []any:
		return len(p)
	case map[string]any:
		count := 0
		for _, v := range p {
			switch entries := v.(type) {
			case []any:
				count += len(entries)
			case map[string]any:
				count++
			}
		}
		return count
	}
	return 0
}
