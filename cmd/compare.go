package cmd

import (
	"context"
	"fmt"
	"log"
	"unicode/utf8"

	"resume-sift/internal/logger"
	"resume-sift/internal/score"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var compareCmd = &cobra.Command{
	Use:   "compare [file] [file]",
	Short: "Compare two resumes side by side and report the stronger one",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCompare(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringSliceP("keywords", "k", nil, "keywords to look for, comma separated")
	compareCmd.Flags().Bool("diff", false, "print per-section text diffs")
}

func runCompare(cmd *cobra.Command, firstFile, secondFile string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	first, catalog := extractFromFile(ctx, config, logger, firstFile)
	second, _ := extractFromFile(ctx, config, logger, secondFile)

	keywords, _ := cmd.Flags().GetStringSlice("keywords")
	weights := scoringWeights(config)

	comparison := score.Compare(first, second, catalog.Canonicals(), keywords, weights)

	fmt.Printf("%s: %.1f / %.0f\n", firstFile, comparison.Left.Score, weights.Total)
	fmt.Printf("%s: %.1f / %.0f\n", secondFile, comparison.Right.Score, weights.Total)
	fmt.Printf("\n%s\n", comparison.Verdict)

	for _, row := range comparison.Rows {
		fmt.Printf("\n== %s ==\n", row.Section)

		width := 0
		for _, line := range row.Left {
			if l := utf8.RuneCountInString(line); l > width {
				width = l
			}
		}

		for i := range row.Left {
			fmt.Printf("  %-*s | %s\n", width, row.Left[i], row.Right[i])
		}
	}

	if printDiff, _ := cmd.Flags().GetBool("diff"); printDiff {
		for _, diff := range comparison.Diffs {
			fmt.Printf("\n-- diff: %s --\n%s\n", diff.Section, diff.Diff)
		}
	}
}
