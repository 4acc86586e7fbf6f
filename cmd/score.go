package cmd

import (
	"context"
	"fmt"
	"log"

	"resume-sift/internal/logger"
	"resume-sift/internal/score"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a resume for completeness and keyword coverage",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runScore(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringSliceP("keywords", "k", nil, "keywords to look for, comma separated")
}

func runScore(cmd *cobra.Command, target string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	record, _ := extractFromFile(ctx, config, logger, target)

	keywords, _ := cmd.Flags().GetStringSlice("keywords")
	weights := scoringWeights(config)

	report := score.Score(record, keywords, weights)

	fmt.Printf("Score: %.1f / %.0f\n\n", report.Score, weights.Total)
	for _, line := range report.Feedback {
		fmt.Printf("- %s\n", line)
	}
}
