package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries the CLI's environment-level defaults. Flags override
// every field.
type Config struct {
	Strategy   string
	InputFile  string
	OutputFile string
	ExportFile string
	Log        LogConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads TIMETABLE_-prefixed environment variables, with a .env file
// as an optional source.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TIMETABLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("strategy", "first")
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("export", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	return &Config{
		Strategy:   v.GetString("strategy"),
		InputFile:  v.GetString("input"),
		OutputFile: v.GetString("output"),
		ExportFile: v.GetString("export"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}, nil
}
