package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lieext/cocycle"
)

// appConfig is loaded once per invocation by the root pre-run hook.
var appConfig Config

var rootCmd = &cobra.Command{
	Use:           "lieext",
	Short:         "Cocycles and central extensions of finite-dimensional brackets",
	Long:          "lieext reads structure constants from a YAML or TOML file and computes the 2-cocycles that classify its one-dimensional central extensions.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		appConfig = loaded
		setupLogging(appConfig.Verbose)

		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .lieext.yaml)")
	flags.BoolP("verbose", "v", false, "debug logging on stderr")
	flags.StringP("mode", "m", "", "nilpotent, graded or carnot (overrides the file)")
	flags.StringP("format", "f", "text", "output format: text, yaml or toml")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("mode", flags.Lookup("mode"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lieext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LIEEXT")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// setupLogging routes the cocycle package's debug records to stderr.
func setupLogging(verbose bool) {
	if !verbose {
		cocycle.SetLogger(nil)

		return
	}
	cocycle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
