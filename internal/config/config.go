// Package config resolves the runner's configuration from the environment
// once at startup. Nothing else in the program reads environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	Repository       string
	GitHubToken      string
	GoogleAPIKey     string
	OpenRouterAPIKey string
	OpenRouterModel  string
	PRNumber         int
	EventPath        string
	Workspace        string
	DryRun           bool
	LogLevel         string
	LogFormat        string
}

// MissingVarError reports a required environment variable that is unset or
// empty. The CLI maps it to the configuration exit status.
type MissingVarError struct {
	Name string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("missing required environment variable: %s", e.Name)
}

// LoadConfig reads configuration from environment variables and an optional
// .env file, sets defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini-2024-07-18")
	viper.SetDefault("GITHUB_WORKSPACE", ".")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "plain")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			slog.Warn("failed to read .env file", "error", err)
		}
	}

	repository := viper.GetString("GITHUB_REPOSITORY")
	if repository == "" {
		return nil, &MissingVarError{Name: "GITHUB_REPOSITORY"}
	}
	token := viper.GetString("GITHUB_TOKEN")
	if token == "" {
		return nil, &MissingVarError{Name: "GITHUB_TOKEN"}
	}

	return &Config{
		Repository:       repository,
		GitHubToken:      token,
		GoogleAPIKey:     viper.GetString("GOOGLE_API_KEY"),
		OpenRouterAPIKey: viper.GetString("OPENROUTER_API_KEY"),
		OpenRouterModel:  viper.GetString("OPENROUTER_MODEL"),
		PRNumber:         prNumberFromEnv(),
		EventPath:        viper.GetString("GITHUB_EVENT_PATH"),
		Workspace:        viper.GetString("GITHUB_WORKSPACE"),
		DryRun:           viper.GetBool("DRY_RUN"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		LogFormat:        viper.GetString("LOG_FORMAT"),
	}, nil
}

// prNumberFromEnv parses the optional PR_NUMBER override. Anything that is
// not a positive integer is treated as unset so the event payload can still
// supply the number.
func prNumberFromEnv() int {
	raw := strings.TrimSpace(viper.GetString("PR_NUMBER"))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		slog.Warn("ignoring unparseable PR_NUMBER", "value", raw)
		return 0
	}
	return n
}
