package score

import (
	"context"
	"strings"
	"testing"

	"resume-sift/internal/extract"

	"go.uber.org/zap"
)

func extractRecord(t *testing.T, text string) *extract.Record {
	t.Helper()
	extractor := extract.New(extract.DefaultCatalog(), nil, zap.NewNop())
	return extractor.Extract(context.Background(), text)
}

func TestScoreHalfSectionsPresent(t *testing.T) {
	// 3 of the 6 tracked sections have content.
	text := "PROFILE\nbackend developer\nEDUCATION\nB.Tech CS 2020\nSKILLS\nGo, SQL"
	record := extractRecord(t, text)

	report := Score(record, nil, DefaultWeights())

	if report.Score != 50 {
		t.Fatalf("expected score 50, got %v", report.Score)
	}

	missing := 0
	for _, line := range report.Feedback {
		if strings.HasPrefix(line, "missing section:") {
			missing++
		}
	}
	if missing != 3 {
		t.Fatalf("expected 3 missing-section lines, got %d: %v", missing, report.Feedback)
	}

	if !containsLine(report.Feedback, "no keywords provided") {
		t.Fatalf("expected no-keywords feedback, got %v", report.Feedback)
	}
}

func TestScoreEmptyRecordIsZero(t *testing.T) {
	record := extractRecord(t, "")

	report := Score(record, nil, DefaultWeights())

	if report.Score != 0 {
		t.Fatalf("expected score 0, got %v", report.Score)
	}

	if !containsLine(report.Feedback, "the resume needs work, several sections are missing") {
		t.Fatalf("expected low-tier closing remark, got %v", report.Feedback)
	}
}

func TestScoreKeywordBonus(t *testing.T) {
	text := "PROFILE\nGo developer with SQL experience\nSKILLS\nGo, Docker"
	record := extractRecord(t, text)

	base := Score(record, nil, DefaultWeights())
	boosted := Score(record, []string{"Go", "SQL", "Kubernetes"}, DefaultWeights())

	if boosted.Score != base.Score+10 {
		t.Fatalf("expected 2 keyword matches worth 10 points, base %v, boosted %v", base.Score, boosted.Score)
	}

	if !containsLine(boosted.Feedback, "matched 2 of 3 keywords") {
		t.Fatalf("expected keyword summary, got %v", boosted.Feedback)
	}
}

func TestScoreKeywordMatchingIsWholeWord(t *testing.T) {
	text := "PROFILE\nworked on Golang services"
	record := extractRecord(t, text)

	report := Score(record, []string{"Go"}, DefaultWeights())

	if !containsLine(report.Feedback, "matched 0 of 1 keywords") {
		t.Fatalf("expected Go not to match inside Golang, got %v", report.Feedback)
	}
}

func TestScoreKeywordMatchingIsCaseInsensitive(t *testing.T) {
	text := "SKILLS\nPYTHON, sql"
	record := extractRecord(t, text)

	report := Score(record, []string{"python", "SQL"}, DefaultWeights())

	if !containsLine(report.Feedback, "matched 2 of 2 keywords") {
		t.Fatalf("expected case-insensitive matches, got %v", report.Feedback)
	}
}

func TestScoreIsCappedAtTotal(t *testing.T) {
	text := "PROFILE\ndev\nPROFESSIONAL EXPERIENCE\ncompany\nEDUCATION\nuni\nSKILLS\nGo, SQL, Docker, AWS\nPROJECTS\nproj\nPOSITION OF RESPONSIBILITY\nlead"
	record := extractRecord(t, text)

	report := Score(record, []string{"Go", "SQL", "Docker", "AWS", "dev", "uni"}, DefaultWeights())

	if report.Score != 100 {
		t.Fatalf("expected capped score 100, got %v", report.Score)
	}

	if !containsLine(report.Feedback, "excellent resume, ready to send") {
		t.Fatalf("expected top-tier closing remark, got %v", report.Feedback)
	}
}

func TestScoreMidTierRemark(t *testing.T) {
	// 4 of 6 sections -> 66.67, plus one keyword match -> 71.67.
	text := "PROFILE\ndev\nEDUCATION\nuni\nSKILLS\nGo\nPROJECTS\nbuilt a parser"
	record := extractRecord(t, text)

	report := Score(record, []string{"parser"}, DefaultWeights())

	if report.Score < 70 || report.Score >= 90 {
		t.Fatalf("expected mid-tier score, got %v", report.Score)
	}

	if !containsLine(report.Feedback, "solid resume, a few gaps to fill") {
		t.Fatalf("expected mid-tier closing remark, got %v", report.Feedback)
	}
}

func TestScoreDuplicateKeywordsCountOnce(t *testing.T) {
	text := "SKILLS\nGo"
	record := extractRecord(t, text)

	report := Score(record, []string{"Go", "go", " Go "}, DefaultWeights())

	if !containsLine(report.Feedback, "matched 1 of 3 keywords") {
		t.Fatalf("expected duplicates to count once, got %v", report.Feedback)
	}
}

func containsLine(lines []string, want string) bool {
	for _, line := range lines {
		if line == want {
			return true
		}
	}
	return false
}
