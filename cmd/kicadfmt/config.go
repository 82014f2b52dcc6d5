// Config loading for the kicadfmt CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = ".kicadfmt"
	configFileType = "yaml"

	cfgKeyFast    = "fast"
	cfgKeyNoColor = "no_color"
)

// loadConfig reads the optional config file with Viper. A missing file is not
// an error; an unreadable or malformed one is.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFast, false)
	v.SetDefault(cfgKeyNoColor, false)
	v.SetEnvPrefix("KICADFMT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// applyConfig fills flag values the user did not set explicitly from the
// config file, so flags keep precedence over the file.
func applyConfig(cmd *cobra.Command, cfg *viper.Viper) {
	if !cmd.Flags().Changed("fast") {
		flagFast = cfg.GetBool(cfgKeyFast)
	}
	if !cmd.Flags().Changed("no-color") {
		flagNoColor = cfg.GetBool(cfgKeyNoColor)
	}
}
