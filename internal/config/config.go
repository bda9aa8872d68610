package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the full application configuration, decoded from config.yaml
// (or FUSION_* environment variables) by the root command.
type Config struct {
	SiteTitle   string   `mapstructure:"siteTitle"`
	BaseURL     string   `mapstructure:"baseURL"`
	ProfilesDir string   `mapstructure:"profilesDir"`
	AssetsDir   string   `mapstructure:"assetsDir"`
	LayoutsDir  string   `mapstructure:"layoutsDir"`
	StaticDir   string   `mapstructure:"staticDir"`
	OutputDir   string   `mapstructure:"outputDir"`
	IntroPath   string   `mapstructure:"introPath"`
	Themes      []string `mapstructure:"themes"`
	Port        int      `mapstructure:"port"`
	LogLevel    string   `mapstructure:"logLevel"`
	LogFormat   string   `mapstructure:"logFormat"`
}

// Defaults returns the configuration used when no config file is present.
func Defaults() Config {
	return Config{
		SiteTitle:   "Fusion Companies Dashboard",
		ProfilesDir: "companies",
		AssetsDir:   "assets/logos",
		LayoutsDir:  "layouts",
		StaticDir:   "static",
		OutputDir:   "public",
		IntroPath:   "intro.md",
		Themes:      []string{"light", "dark"},
		Port:        8080,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Validate reports configuration the commands cannot run with. It is called
// once at startup; failures are fatal.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ProfilesDir, validation.Required),
		validation.Field(&c.LayoutsDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Themes, validation.Required, validation.Each(validation.Required)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
	)
}
