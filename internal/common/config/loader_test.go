// internal/common/config/loader_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AppliesDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Recipe Search API", cfg.App.Name)
	assert.Equal(t, 8001, cfg.Server.Port)
	assert.Equal(t, "https://www.googleapis.com/customsearch/v1", cfg.Search.BaseURL)
	assert.Equal(t, 10, cfg.Search.DefaultNum)
	assert.Equal(t, 10, cfg.Search.MaxNum)
	assert.Equal(t, "https://images.weserv.nl/", cfg.Validation.ProxyBaseURL)
	assert.Equal(t, 5000, cfg.Validation.ProbeTimeout)
	assert.NotEmpty(t, cfg.HTTP.UserAgent)
	assert.NotEmpty(t, cfg.HTTP.AcceptLanguage)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateConfig_RejectsBadPort(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Server.Port = -1

	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfig_RejectsDefaultNumAboveLimit(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Search.DefaultNum = 20

	assert.Error(t, validateConfig(cfg))
}

func TestTimeoutHelpers(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, int64(10000), cfg.Search.SearchTimeout().Milliseconds())
	assert.Equal(t, int64(5000), cfg.Validation.Timeout().Milliseconds())
}
