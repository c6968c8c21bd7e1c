package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	matchengine "github.com/jonathan/match-engine"
	"github.com/jonathan/match-engine/internal/config"
	"github.com/jonathan/match-engine/internal/ensemble"
	"github.com/jonathan/match-engine/internal/llm"
	"github.com/jonathan/match-engine/internal/logging"
	"github.com/jonathan/match-engine/internal/schemas"
	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/travel"
	"github.com/jonathan/match-engine/internal/types"
)

// loadCLIConfig resolves the effective configuration: the --config file when
// given, merged with defaults.
func loadCLIConfig() (config.Config, error) {
	defaults := config.DefaultConfig()
	if configPath == "" {
		return defaults, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	merged := cfg.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// buildTravelProvider resolves the commute table: a JSON file when
// travel_table is set, a Redis hash when redis_addr is set, otherwise an
// empty table. File and Redis providers are wrapped in a memoizing cache.
func buildTravelProvider(ctx context.Context, cfg config.Config) (scoring.TravelTimeProvider, error) {
	switch {
	case cfg.TravelTable != "":
		static, err := travel.LoadStaticProvider(cfg.TravelTable)
		if err != nil {
			return nil, fmt.Errorf("failed to load travel table: %w", err)
		}
		return travel.NewCachedProvider(static), nil
	case cfg.RedisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = client.Close() }()
		static, err := travel.LoadFromRedis(ctx, client, travel.DefaultRedisKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load travel table from redis: %w", err)
		}
		return travel.NewCachedProvider(static), nil
	default:
		return travel.NewStaticProvider(), nil
	}
}

// buildEngine assembles the scoring engine from the effective configuration.
// The returned closer releases the semantic strategy's LLM client when one
// was configured.
func buildEngine(ctx context.Context, cfg config.Config) (*matchengine.Engine, func(), error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	provider, err := buildTravelProvider(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	engine := matchengine.New(matchengine.Options{
		Logger:  logger,
		Travel:  provider,
		Workers: cfg.Workers,
	})

	closer := func() { _ = logger.Sync() }

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		engine.RegisterStrategy(ensemble.NewSemanticStrategy(client), 1.0)
		closer = func() {
			_ = client.Close()
			_ = logger.Sync()
		}
	}

	return engine, closer, nil
}

// validateDocument checks a raw document against a schema, skipping when the
// schema file cannot be located.
func validateDocument(schemaName string, document []byte) error {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName))
	if schemaPath == "" {
		return nil
	}
	return schemas.ValidateBytes(schemaPath, document)
}

// readCandidateFile loads and schema-validates one candidate profile.
func readCandidateFile(path string) (types.Candidate, error) {
	var candidate types.Candidate
	data, err := os.ReadFile(path)
	if err != nil {
		return candidate, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}
	if err := validateDocument(schemas.CandidateSchema, data); err != nil {
		return candidate, fmt.Errorf("candidate file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &candidate); err != nil {
		return candidate, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	return candidate, nil
}

// readPositionFile loads and schema-validates one position profile.
func readPositionFile(path string) (types.Position, error) {
	var position types.Position
	data, err := os.ReadFile(path)
	if err != nil {
		return position, fmt.Errorf("failed to read position file %s: %w", path, err)
	}
	if err := validateDocument(schemas.PositionSchema, data); err != nil {
		return position, fmt.Errorf("position file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &position); err != nil {
		return position, fmt.Errorf("failed to unmarshal position JSON: %w", err)
	}
	return position, nil
}

// readCandidatesFile loads a JSON array of candidate profiles, validating
// each element.
func readCandidatesFile(path string) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("candidates file %s must contain a JSON array: %w", path, err)
	}

	candidates := make([]types.Candidate, 0, len(raw))
	for i, doc := range raw {
		if err := validateDocument(schemas.CandidateSchema, doc); err != nil {
			return nil, fmt.Errorf("candidates file %s, entry %d: %w", path, i, err)
		}
		var candidate types.Candidate
		if err := json.Unmarshal(doc, &candidate); err != nil {
			return nil, fmt.Errorf("candidates file %s, entry %d: %w", path, i, err)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// readPositionsFile loads a JSON array of position profiles, validating each
// element.
func readPositionsFile(path string) ([]types.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions file %s: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("positions file %s must contain a JSON array: %w", path, err)
	}

	positions := make([]types.Position, 0, len(raw))
	for i, doc := range raw {
		if err := validateDocument(schemas.PositionSchema, doc); err != nil {
			return nil, fmt.Errorf("positions file %s, entry %d: %w", path, i, err)
		}
		var position types.Position
		if err := json.Unmarshal(doc, &position); err != nil {
			return nil, fmt.Errorf("positions file %s, entry %d: %w", path, i, err)
		}
		positions = append(positions, position)
	}
	return positions, nil
}

// readWeightsFile loads a criterion→weight map and turns it into a
// normalizable weight vector.
func readWeightsFile(path string) (*scoring.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights file %s: %w", path, err)
	}
	if err := validateDocument(schemas.WeightsSchema, data); err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}

	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights JSON: %w", err)
	}
	weights, err := scoring.WeightsFromMap(m)
	if err != nil {
		return nil, err
	}
	return &weights, nil
}

// writeJSONOutput marshals v with indentation to the given path, creating
// parent directories. An empty path writes to stdout.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, string(jsonOutput))
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
