package score

import (
	"fmt"
	"regexp"
	"strings"

	"resume-sift/internal/extract"
)

// Weights configures the completeness scoring model. The total is split
// evenly across the tracked sections; every distinct keyword match adds the
// bonus on top, capped at the total.
type Weights struct {
	Total        float64  `mapstructure:"total"`
	KeywordBonus float64  `mapstructure:"keyword-bonus"`
	Tracked      []string `mapstructure:"tracked"`
}

// DefaultWeights returns the built-in scoring model: 100 points spread across
// the default catalog sections, 5 points per matched keyword.
func DefaultWeights() Weights {
	return Weights{
		Total:        100,
		KeywordBonus: 5,
		Tracked:      extract.DefaultCatalog().Canonicals(),
	}
}

// Report is the result of scoring a single record.
type Report struct {
	Score    float64  `json:"score"`
	Feedback []string `json:"feedback"`
}

// Score rates the record for completeness and keyword coverage. It is pure and
// deterministic: missing data lowers the score, it never causes an error.
func Score(record *extract.Record, keywords []string, weights Weights) *Report {
	if weights.Total <= 0 {
		weights.Total = DefaultWeights().Total
	}
	if weights.KeywordBonus <= 0 {
		weights.KeywordBonus = DefaultWeights().KeywordBonus
	}
	if len(weights.Tracked) == 0 {
		weights.Tracked = DefaultWeights().Tracked
	}

	report := &Report{}

	present := 0
	for _, section := range weights.Tracked {
		if record.Has(section) {
			present++
			continue
		}
		report.Feedback = append(report.Feedback, fmt.Sprintf("missing section: %s", section))
	}

	report.Score = weights.Total * float64(present) / float64(len(weights.Tracked))

	matched := countKeywordMatches(record, keywords)
	report.Score += weights.KeywordBonus * float64(matched)
	if report.Score > weights.Total {
		report.Score = weights.Total
	}

	if len(keywords) == 0 {
		report.Feedback = append(report.Feedback, "no keywords provided")
	} else {
		report.Feedback = append(report.Feedback, fmt.Sprintf("matched %d of %d keywords", matched, len(keywords)))
	}

	report.Feedback = append(report.Feedback, closingRemark(report.Score/weights.Total*100))

	return report
}

// countKeywordMatches counts distinct keywords that appear as whole words
// anywhere in the record's resolved values, case-insensitively.
func countKeywordMatches(record *extract.Record, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}

	parts := make([]string, 0, 3+len(record.Sections))
	for _, value := range []string{record.Name, record.Email, record.Phone} {
		if value != "" {
			parts = append(parts, value)
		}
	}
	for section := range record.Sections {
		if text := record.SectionText(section); text != "" {
			parts = append(parts, text)
		}
	}
	corpus := strings.Join(parts, "\n")

	matched := 0
	seen := make(map[string]bool)
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" || seen[strings.ToLower(keyword)] {
			continue
		}
		seen[strings.ToLower(keyword)] = true

		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		if err != nil {
			continue
		}
		if pattern.MatchString(corpus) {
			matched++
		}
	}

	return matched
}

func closingRemark(percent float64) string {
	switch {
	case percent >= 90:
		return "excellent resume, ready to send"
	case percent >= 70:
		return "solid resume, a few gaps to fill"
	default:
		return "the resume needs work, several sections are missing"
	}
}
