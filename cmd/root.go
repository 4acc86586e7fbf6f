package cmd

import (
	"errors"
	"log"

	"resume-sift/internal/extract"
	"resume-sift/internal/score"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-sift"
)

type Config struct {
	Scoring *score.Weights `mapstructure:"scoring"`
	AI      *AIConfig      `mapstructure:"ai"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-sift is a simple cli for extracting structured fields from resumes and scoring them",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-sift.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must be readable.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)
	viper.SetConfigType("yaml")

	// The tool works with built-in defaults when no config file exists, but a
	// present-yet-broken file must not be silently ignored.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// catalogFromConfig builds the section catalog from the `sections` key of the
// config file, falling back to the built-in table when it is not set.
func catalogFromConfig() (*extract.Catalog, error) {
	raw := viper.Get("sections")
	if raw == nil {
		return extract.DefaultCatalog(), nil
	}

	var aliases []extract.Alias
	if err := mapstructure.Decode(raw, &aliases); err != nil {
		return nil, err
	}

	return extract.NewCatalog(aliases)
}

func scoringWeights(config *Config) score.Weights {
	weights := score.DefaultWeights()

	if config == nil || config.Scoring == nil {
		return weights
	}

	if config.Scoring.Total > 0 {
		weights.Total = config.Scoring.Total
	}
	if config.Scoring.KeywordBonus > 0 {
		weights.KeywordBonus = config.Scoring.KeywordBonus
	}
	if len(config.Scoring.Tracked) > 0 {
		weights.Tracked = config.Scoring.Tracked
	}

	return weights
}
