package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"resume-sift/internal/extract"
	"resume-sift/internal/ingest"
	"resume-sift/internal/logger"
	"resume-sift/internal/ner"
	"resume-sift/internal/ner/gemini"
	"resume-sift/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract structured fields from a resume file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("format", "o", "text", "output format: text or json")
}

func parse(cmd *cobra.Command, target string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	record, catalog := extractFromFile(ctx, config, logger, target)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		pretty, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			logger.Fatal("encoding record", zap.Error(err))
		}
		fmt.Println(string(pretty))
	case "text":
		fmt.Print(renderRecord(record, catalog))
	default:
		logger.Fatal("invalid output format", zap.String("format", format))
	}
}

// extractFromFile runs the full pipeline for one file: text extraction,
// catalog setup, optional recognizer setup and field extraction. Collaborator
// failures are fatal here so the core never runs on unusable input.
func extractFromFile(ctx context.Context, config *Config, logger *zap.Logger, target string) (*extract.Record, *extract.Catalog) {
	path, err := resolveResumePath(target)
	if err != nil {
		logger.Fatal("resolving resume file", zap.Error(err))
	}

	logger.Info("extracting text", zap.String("file", path))

	text, err := ingest.ExtractText(path)
	if err != nil {
		logger.Fatal("extracting document text", zap.Error(err))
	}

	catalog, err := catalogFromConfig()
	if err != nil {
		logger.Fatal("building section catalog", zap.Error(err))
	}

	recognizer, err := newRecognizer(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building entity recognizer",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file or GEMINI_API_KEY_FILE, or disable ai"),
		)
	}

	record := extract.New(catalog, recognizer, logger).Extract(ctx, text)

	logger.Info("extracted resume",
		zap.String("file", path),
		zap.Bool("name_found", record.Name != ""),
		zap.Bool("email_found", record.Email != ""),
		zap.Bool("phone_found", record.Phone != ""),
	)

	return record, catalog
}

// resolveResumePath accepts either a file or a directory. For a directory the
// user picks one of the contained resume files interactively.
func resolveResumePath(target string) (string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", err
	}

	if !info.IsDir() {
		return target, nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return "", err
	}

	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && ingest.Supported(entry.Name()) {
			items = append(items, entry.Name())
		}
	}
	sort.Strings(items)

	if len(items) == 0 {
		return "", fmt.Errorf("no resume files found in %q", target)
	}

	filePrompt := promptui.Select{
		Label: "Choose a resume file and press ENTER",
		Items: items,
	}

	_, selected, err := filePrompt.Run()
	if err != nil {
		return "", err
	}

	return filepath.Join(target, selected), nil
}

// newRecognizer builds the Gemini-backed recognizer when AI is enabled. A
// disabled config yields a nil recognizer and extraction falls back to the
// first-line heuristic.
func newRecognizer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ner.Recognizer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewRecognizer(generator, cfg.Gemini.MaxLogLength, genLogger), nil
}

// renderRecord formats the record the way the report is meant to be read:
// contact fields inline, skills inline, other sections as bullet lists.
func renderRecord(record *extract.Record, catalog *extract.Catalog) string {
	var b strings.Builder

	for _, field := range []string{"Name", "Email", "Phone"} {
		fmt.Fprintf(&b, "%s: %s\n", field, record.DisplayValue(field))
	}

	for _, section := range catalog.Canonicals() {
		fmt.Fprintf(&b, "%s:\n", section)

		if !record.Has(section) {
			fmt.Fprintf(&b, "  %s\n", extract.Sentinel)
			continue
		}

		if section == extract.SkillsSection {
			fmt.Fprintf(&b, "  %s\n", record.SectionText(section))
			continue
		}

		for _, line := range record.Sections[section] {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}

	return b.String()
}
