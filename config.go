package keboola

import (
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/keboola-community/keboola-go/appbase"
	"github.com/keboola-community/keboola-go/logging"
	"github.com/keboola-community/keboola-go/utils"
)

// ClientConfig is a dto for client configuration deserialization
type ClientConfig struct {
	// BaseURL platform connection URL, e.g. https://connection.keboola.com
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"`
	// Token storage API token sent in the X-StorageApi-Token header
	Token string `mapstructure:"token" json:"token" yaml:"token"`
	// TimeoutSeconds bounds one platform request, connection setup included. Default: 60
	TimeoutSeconds int `mapstructure:"timeoutSeconds" json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty" default:"60"`
	// LogFormat log format. Can be `text` or `json`. Default: `text`
	LogFormat string `mapstructure:"logFormat" json:"logFormat,omitempty" yaml:"logFormat,omitempty"`
	// LogLevel log level. Can be `debug`, `info`, `warn`, `error`. Default: `info`
	LogLevel string `mapstructure:"logLevel" json:"logLevel,omitempty" yaml:"logLevel,omitempty" default:"info"`
	// InstanceId identifies this client instance in log messages. Supports
	// env://VAR indirection. Default: random uuid
	InstanceId string `mapstructure:"instanceId" json:"instanceId,omitempty" yaml:"instanceId,omitempty"`
}

// Validate returns err if required parameters are missing
func (c *ClientConfig) Validate() error {
	if c == nil {
		return errors.New("client config is required")
	}
	if c.BaseURL == "" {
		return errors.New("baseUrl is a required parameter")
	}
	if c.Token == "" {
		return errors.New("token is a required parameter")
	}
	return nil
}

// PostInit applies the log settings, resolves the instance id and normalizes
// the base URL. Settings may be nil when the config was built explicitly.
func (c *ClientConfig) PostInit(settings *appbase.AppSettings) error {
	if c.LogFormat == "json" {
		logging.SetJsonFormatter()
	} else {
		logging.SetTextFormatter()
	}
	if err := logging.InitGlobalLogger(utils.NvlString(c.LogLevel, "info")); err != nil {
		return err
	}
	if strings.HasPrefix(c.InstanceId, "env://") {
		env := c.InstanceId[len("env://"):]
		c.InstanceId = os.Getenv(env)
		if c.InstanceId != "" {
			logging.Infof("Loaded instance id from env %s: %s", env, c.InstanceId)
		}
	}
	if c.InstanceId == "" {
		c.InstanceId = uuid.NewString()
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return c.Validate()
}

// InitClientConfig loads a ClientConfig from a config file and bound
// environment variables. Passing nil settings reads keboola.env from the
// working directory and binds KEBOOLA_* variables.
func InitClientConfig(settings *appbase.AppSettings) (*ClientConfig, error) {
	if settings == nil {
		settings = &appbase.AppSettings{
			Name:       "keboola",
			EnvPrefix:  "KEBOOLA",
			ConfigName: "keboola",
			ConfigType: "env",
		}
	}
	config := &ClientConfig{}
	if err := appbase.InitAppConfig(config, settings); err != nil {
		return nil, err
	}
	return config, nil
}
