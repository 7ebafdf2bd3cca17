package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultEngineURL, c.Engine.BaseURL)
	assert.Equal(t, 5*time.Second, c.Engine.Timeout)
	assert.Equal(t, 5*time.Second, c.Sentiment.Timeout)
	assert.Equal(t, 30*time.Second, c.Refresh.Interval)
	assert.Equal(t, 8080, c.Server.Port)
	assert.True(t, c.Metrics.Enabled)
	assert.False(t, c.LogShipping.Enabled)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("environment: production\nengine:\n  base_url: http://engine:9000\n  timeout: 2s\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, "http://engine:9000", c.Engine.BaseURL)
	assert.Equal(t, 2*time.Second, c.Engine.Timeout)
	// untouched sections keep their defaults
	assert.Equal(t, "https://api.alternative.me/fng/?limit=2", c.Sentiment.URL)
}

func TestApplyEnvPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"none", map[string]string{}, DefaultEngineURL},
		{"public only", map[string]string{"NEXT_PUBLIC_API_URL": "http://public:1"}, "http://public:1"},
		{"api url wins", map[string]string{"NEXT_PUBLIC_API_URL": "http://public:1", "API_URL": "http://private:2/"}, "http://private:2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Default()
			require.NoError(t, err)
			applyEnv(c, func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.want, c.Engine.BaseURL)
		})
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("API_URL", "http://engine.internal:8090")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	c, err := LoadWithEnv("")
	require.NoError(t, err)
	assert.Equal(t, "http://engine.internal:8090", c.Engine.BaseURL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.LogShipping.Brokers)
}

func TestValidate(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	c.Engine.BaseURL = "localhost:8090"
	assert.Error(t, c.Validate())

	c.Engine.BaseURL = DefaultEngineURL
	c.Engine.Timeout = 0
	assert.Error(t, c.Validate())

	c.Engine.Timeout = time.Second
	c.LogShipping.Enabled = true
	assert.Error(t, c.Validate())
}
