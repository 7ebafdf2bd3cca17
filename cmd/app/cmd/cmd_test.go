package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"GodSignal/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig points both upstreams at a server that always answers 503.
func writeConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("API_URL", "")
	t.Setenv("NEXT_PUBLIC_API_URL", "")
	t.Setenv("FEAR_GREED_URL", "")

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(down.Close)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "environment: test\n" +
		"log:\n  level: error\n  format: json\n" +
		"engine:\n  base_url: " + down.URL + "\n  timeout: 1s\n" +
		"sentiment:\n  url: " + down.URL + "/fng\n  timeout: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSnapshotSignalsFallsBack(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "snapshot", "--config", cfg, "--env-file", "", "--page", "signals", "--search", "pepe", "--type", "ALL")
	require.NoError(t, err)

	var page models.SignalsPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "PEPE", page.Signals[0].Token)
}

func TestSnapshotRejectsUnknownPage(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, "snapshot", "--config", cfg, "--env-file", "", "--page", "portfolio")
	assert.Error(t, err)
}

func TestExportWritesCSVFile(t *testing.T) {
	cfg := writeConfig(t)
	out := filepath.Join(t.TempDir(), "signals.csv")

	_, err := run(t, "export", "--config", cfg, "--env-file", "", "--out", out, "--search", "", "--type", "bearish")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Token", rows[0][0])
	for _, row := range rows[1:] {
		assert.Equal(t, "bearish", row[2])
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnvSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GODSIGNAL_TEST_VAR=from-dotenv\n"), 0o600))
	t.Setenv("GODSIGNAL_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("GODSIGNAL_TEST_VAR"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("GODSIGNAL_TEST_VAR"))
}
