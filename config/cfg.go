package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	httpapi "github.com/velora-commerce/backoffice-manager/internal/api/http"
	"github.com/velora-commerce/backoffice-manager/internal/commerceapi"
	"github.com/velora-commerce/backoffice-manager/log"
)

// Config represents the global configuration for the service.
type Config struct {
	Logger   log.Config         `mapstructure:"logger"`
	HTTP     httpapi.Config     `mapstructure:"http"`
	Commerce commerceapi.Config `mapstructure:"commerce_api"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over config file values;
// nested keys use double underscore, e.g. COMMERCE_API__BASE_URL.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/backoffice-manager")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.HTTP.Port == "" {
		config.HTTP.Port = "8081"
	}
	if config.Commerce.BaseURL == "" {
		config.Commerce.BaseURL = os.Getenv("COMMERCE_API_URL")
	}

	return &config, nil
}
