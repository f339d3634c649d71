package keboola

import (
	"testing"

	"github.com/keboola-community/keboola-go/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestClientConfigValidate(t *testing.T) {
	var nilConfig *ClientConfig
	require.ErrorContains(t, nilConfig.Validate(), "client config is required")

	config := &ClientConfig{Token: "test-token"}
	require.ErrorContains(t, config.Validate(), "baseUrl is a required parameter")

	config = &ClientConfig{BaseURL: "https://connection.keboola.com"}
	require.ErrorContains(t, config.Validate(), "token is a required parameter")

	config = &ClientConfig{BaseURL: "https://connection.keboola.com", Token: "test-token"}
	require.NoError(t, config.Validate())
}

func TestClientConfigPostInit(t *testing.T) {
	config := &ClientConfig{BaseURL: "https://connection.keboola.com/", Token: "test-token"}
	require.NoError(t, config.PostInit(nil))
	require.Equal(t, "https://connection.keboola.com", config.BaseURL)
	require.NotEmpty(t, config.InstanceId, "instance id is generated when not configured")
}

func TestClientConfigLogSettings(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetLevel(logrus.InfoLevel)
		logging.SetTextFormatter()
	})

	config := &ClientConfig{BaseURL: "https://connection.keboola.com", Token: "test-token", LogFormat: "text", LogLevel: "debug"}
	require.NoError(t, config.PostInit(nil))
	formatter, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter)
	require.True(t, ok, "text format applies the full-timestamp text layout")
	require.True(t, formatter.FullTimestamp)
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	config = &ClientConfig{BaseURL: "https://connection.keboola.com", Token: "test-token", LogFormat: "json"}
	require.NoError(t, config.PostInit(nil))
	_, ok = logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	require.True(t, ok)
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel(), "level falls back to info when not configured")
}

func TestClientConfigInstanceIdFromEnv(t *testing.T) {
	t.Setenv("KEBOOLA_CLIENT_INSTANCE", "instance-1")
	config := &ClientConfig{
		BaseURL:    "https://connection.keboola.com",
		Token:      "test-token",
		InstanceId: "env://KEBOOLA_CLIENT_INSTANCE",
	}
	require.NoError(t, config.PostInit(nil))
	require.Equal(t, "instance-1", config.InstanceId)
}

func TestInitClientConfigFromEnv(t *testing.T) {
	t.Setenv("KEBOOLA_BASEURL", "https://connection.north-europe.azure.keboola.com/")
	t.Setenv("KEBOOLA_TOKEN", "env-token")
	t.Cleanup(func() { logging.ConfigWarn = "" })

	config, err := InitClientConfig(nil)
	require.NoError(t, err)
	require.Equal(t, "https://connection.north-europe.azure.keboola.com", config.BaseURL)
	require.Equal(t, "env-token", config.Token)
	require.Equal(t, 60, config.TimeoutSeconds)
	require.NotEmpty(t, config.InstanceId)
	require.Contains(t, logging.ConfigWarn, "KEBOOLA_", "missing config file leaves a warning naming the env prefix")
}
