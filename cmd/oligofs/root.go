package main

import (
	"fmt"
	"os"

	"github.com/lanl/oligofs/internal/logging"
	"github.com/lanl/oligofs/pkg/config"
	"github.com/lanl/oligofs/primer"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	debug    bool
	human    bool
	registry *primer.Registry
)

var rootCmd = &cobra.Command{
	Use:   "oligofs",
	Short: "oligofs: encode and decode files as synthetic DNA oligos",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(debug, human)

		if isPoolsAdd(cmd) {
			// "pools add" creates the registry file; it shouldn't fail
			// just because it doesn't exist yet.
			return nil
		}

		path := viper.GetString("registry.path")
		r, err := primer.LoadRegistryCSV(path)
		if err != nil {
			if os.IsNotExist(err) {
				registry = primer.NewRegistry()
				return nil
			}
			return fmt.Errorf("loading primer registry %s: %w", path, err)
		}
		registry = r
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: config.yaml searched in ., ./.oligofs, then $HOME/.oligofs)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&human, "human", false, "human-readable console logging instead of JSON")

	rootCmd.PersistentFlags().String("registry", "", "path to the primer registry CSV")
	if err := viper.BindPFlag("registry.path", rootCmd.PersistentFlags().Lookup("registry")); err != nil {
		fmt.Fprintln(os.Stderr, "failed to bind flag:", err)
		os.Exit(1)
	}
}

func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
}

// isPoolsAdd reports whether cmd is "oligofs pools add", the one
// subcommand allowed to run against a registry file that doesn't exist
// yet.
func isPoolsAdd(cmd *cobra.Command) bool {
	return cmd.Name() == "add" && cmd.Parent() != nil && cmd.Parent().Name() == "pools"
}
