package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_UnknownSchema(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate",
		"--schema", "horoscope",
		"--file", "test.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown schema")
}

func TestValidateCommand_ValidCandidate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	candidateFile := filepath.Join(tmpDir, "candidate.json")
	require.NoError(t, os.WriteFile(candidateFile, []byte(`{"id": "cand-1"}`), 0644))

	cmd := exec.Command(binaryPath, "validate",
		"--schema", "candidate",
		"--file", candidateFile)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "validate failed: %s", string(output))
	assert.Contains(t, string(output), "valid")
}

func TestValidateCommand_InvalidCandidate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	candidateFile := filepath.Join(tmpDir, "candidate.json")
	require.NoError(t, os.WriteFile(candidateFile, []byte(`{"experience_years": -2}`), 0644))

	cmd := exec.Command(binaryPath, "validate",
		"--schema", "candidate",
		"--file", candidateFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "validation")
}

func TestSchemaFilesCoverAllFlags(t *testing.T) {
	for _, name := range []string{"candidate", "position", "weights", "match_result"} {
		assert.Contains(t, schemaFiles, name)
	}
}
