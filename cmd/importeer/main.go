package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rversteeg/importeer/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile string
	cfg     = config.DefaultConfig()
	logger  = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "importeer",
	Short: "Import margin calculator for German cars",
	Long: `Importeer evaluates German car listings for import to the Netherlands:
it calculates the rest-BPM with the historical keuzerecht (2020-2026),
compares against the Dutch market, and advises GO/CONSIDER/NO_GO on the
expected margin.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.importeer.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(bpmCmd)
	rootCmd.AddCommand(regimesCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".importeer")
	}

	viper.SetEnvPrefix("IMPORTEER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		loaded, err := config.NewInputParser().LoadConfigFromFile(viper.ConfigFileUsed())
		cobra.CheckErr(err)
		cfg = loaded
	}

	level := cfg.LogLevel
	if envLevel := viper.GetString("log_level"); envLevel != "" {
		level = envLevel
	}
	if flagLevel, _ := rootCmd.PersistentFlags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "importeer %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), "go:", bi.GoVersion)
			}
		},
	}
}
