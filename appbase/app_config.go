package appbase

import (
	"fmt"
	"io/fs"
	"path"
	"reflect"

	"github.com/keboola-community/keboola-go/logging"
	"github.com/spf13/viper"
)

// AppSettings describes where to look for a config file and which
// environment prefix binds config variables
type AppSettings struct {
	Name, ConfigPath, ConfigName, ConfigType, EnvPrefix string
}

func (a *AppSettings) EnvPrefixWithUnderscore() string {
	if a.EnvPrefix == "" {
		return ""
	}
	return a.EnvPrefix + "_"
}

// InstanceConfig is implemented by config structs loadable via InitAppConfig
type InstanceConfig interface {
	PostInit(settings *AppSettings) error
}

func initViperVariables[C InstanceConfig](appConfig C) {
	elem := reflect.ValueOf(appConfig).Elem()
	tp := elem.Type()
	fieldsCount := tp.NumField()
	for i := 0; i < fieldsCount; i++ {
		field := tp.Field(i)
		modelType := reflect.TypeOf((*InstanceConfig)(nil)).Elem()
		if reflect.PointerTo(field.Type).Implements(modelType) {
			initViperVariables(elem.Field(i).Addr().Interface().(InstanceConfig))
		} else if field.Type.Kind() == reflect.Struct {
			logging.Fatalf("Application config has incorrect struct field '%s': all structs nested in config must implement interface 'InstanceConfig'", field.Name)
		}
		variable := field.Tag.Get("mapstructure")
		if variable != "" {
			defaultValue := field.Tag.Get("default")
			if defaultValue != "" {
				viper.SetDefault(variable, defaultValue)
			} else {
				_ = viper.BindEnv(variable)
			}
		}
	}
}

// InitAppConfig fills appConfig from the settings' config file and bound
// environment variables, then runs the config's PostInit
func InitAppConfig[C InstanceConfig](appConfig C, settings *AppSettings) error {
	configPath := settings.ConfigPath
	if configPath == "" {
		configPath = "."
	}
	initViperVariables(appConfig)
	viper.SetConfigFile(path.Join(configPath, fmt.Sprintf("%s.%s", settings.ConfigName, settings.ConfigType)))
	viper.SetConfigType(settings.ConfigType)
	viper.SetEnvPrefix(settings.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		//it is ok to not have config file
		if _, ok := err.(*fs.PathError); !ok {
			return fmt.Errorf("❗error reading config file: %s", err)
		}
		logging.ConfigWarn = fmt.Sprintf("config file %s not found. Relying on %s* environment variables and defaults", viper.ConfigFileUsed(), settings.EnvPrefixWithUnderscore())
	}
	err := viper.Unmarshal(&appConfig)
	if err != nil {
		return fmt.Errorf("❗error unmarshalling config: %s", err)
	}
	if err = appConfig.PostInit(settings); err != nil {
		return fmt.Errorf("❗error initializing config: %s", err)
	}
	return nil
}
