// Package config loads oligofs's layered configuration: defaults, then
// an optional YAML file, then OLIGOFS_-prefixed environment variables,
// adapted from the teacher repo pack's wozonet1-tensorvault/pkg/config
// loader.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load initializes the global viper instance. cfgFile, if non-empty, is
// used verbatim; otherwise the standard search path is used.
func Load(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(".oligofs")
		viper.AddConfigPath(filepath.Join(home, ".oligofs"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("OLIGOFS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("primer.forward", "CGACATCTCGATGGCAGCAT")
	viper.SetDefault("primer.reverse", "CAGTGAGCTGGCAACTTCCA")

	viper.SetDefault("block.size", 12)

	wd, _ := os.Getwd()
	viper.SetDefault("registry.path", filepath.Join(wd, ".oligofs", "registry.csv"))

	viper.SetDefault("log.debug", false)
	viper.SetDefault("log.human", false)
}
