package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kenneth-bframe/fusion-dashboards/internal/config"
)

var cfgFile string
var appConfig config.Config
var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "fusion-dashboards",
	Short: "A browsable dashboard of fusion company profiles",
	Long: `fusion-dashboards renders a directory of per-company markdown profile
files into a web dashboard: a home page listing every company and a detail
page per company showing its profile sections as cards. Profiles are plain
markdown authored externally; this tool only reads them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	def := config.Defaults()
	v.SetDefault("siteTitle", def.SiteTitle)
	v.SetDefault("baseURL", def.BaseURL)
	v.SetDefault("profilesDir", def.ProfilesDir)
	v.SetDefault("assetsDir", def.AssetsDir)
	v.SetDefault("layoutsDir", def.LayoutsDir)
	v.SetDefault("staticDir", def.StaticDir)
	v.SetDefault("outputDir", def.OutputDir)
	v.SetDefault("introPath", def.IntroPath)
	v.SetDefault("themes", def.Themes)
	v.SetDefault("port", def.Port)
	v.SetDefault("logLevel", def.LogLevel)
	v.SetDefault("logFormat", def.LogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FUSION")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			// Defaults and environment variables are enough to run.
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger = newLogger(appConfig)
	return nil
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
