package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against an engine schema",
	Long:  "Validates a candidate, position, weights or match result JSON document against its schema and reports every field-level violation.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateFile   string
)

// schemaFiles maps the --schema flag values to schema file names.
var schemaFiles = map[string]string{
	"candidate":    schemas.CandidateSchema,
	"position":     schemas.PositionSchema,
	"weights":      schemas.WeightsSchema,
	"match_result": schemas.MatchResultSchema,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Schema to validate against: candidate, position, weights or match_result (required)")
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the JSON document (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	schemaFile, ok := schemaFiles[validateSchema]
	if !ok {
		return fmt.Errorf("unknown schema %q (want candidate, position, weights or match_result)", validateSchema)
	}

	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaFile))
	if schemaPath == "" {
		return fmt.Errorf("schema file %s not found; run from the repository root", schemaFile)
	}

	if err := schemas.ValidateJSON(schemaPath, validateFile); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s is a valid %s document\n", validateFile, validateSchema)
	return nil
}
