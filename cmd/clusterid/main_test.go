package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
generator:
  data_centre: eu-west
  environment: production
  type: user
  max_batch: 5
  data_centres:
    eu-west: 2
  environments:
    production: 1
  types:
    user: 1
    order: 1798
log:
  level: error
`

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfig), 0o600))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "--count", "3", "--format", "hex", "--type", "order")
	require.NoError(t, err)

	ids := strings.Fields(out)
	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.Len(t, id, 32)
		assert.Equal(t, "0607", id[10:14])
		assert.Equal(t, "29", id[14:16])
	}
}

func TestGenerateCommandRejectsLargeBatch(t *testing.T) {
	_, err := run(t, "generate", "-n", "6")
	assert.ErrorContains(t, err, "count must be between 1 and 5")
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "inspect", "01020304050607296de562297f010000")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "eu-west", res["data_centre"])
	assert.Equal(t, "production", res["environment"])
	assert.Equal(t, "order", res["type"])
	assert.Equal(t, float64(21542142465), res["nonce"])
	assert.Equal(t, "2022-02-24T01:40:21.485Z", res["time"])
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "01020304050607296de562297f010000")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	_, err = run(t, "validate", "01020304050607496de562297f010000")
	assert.ErrorContains(t, err, "expected version 1, got 2")
}
