package score

import (
	"strings"
	"testing"
)

func TestCompareMoreSkillsWins(t *testing.T) {
	// Both records have the same sections present, A just lists more skills.
	recordA := extractRecord(t, "PROFILE\ndev\nEDUCATION\nB.Tech\nSKILLS\nGo, SQL, Docker, AWS, Python, Redis, Kafka, Linux")
	recordB := extractRecord(t, "PROFILE\ndev\nEDUCATION\nB.Tech\nSKILLS\nGo, SQL, Docker")

	comparison := Compare(recordA, recordB, nil, nil, DefaultWeights())

	if comparison.Left.Score < comparison.Right.Score {
		t.Fatalf("expected A's score >= B's, got %v vs %v", comparison.Left.Score, comparison.Right.Score)
	}

	if comparison.Verdict != VerdictLeft {
		t.Fatalf("expected A to be stronger, got %v", comparison.Verdict)
	}
}

func TestCompareHigherScoreWins(t *testing.T) {
	recordA := extractRecord(t, "PROFILE\ndev")
	recordB := extractRecord(t, "PROFILE\ndev\nEDUCATION\nB.Tech\nSKILLS\nGo")

	comparison := Compare(recordA, recordB, nil, nil, DefaultWeights())

	if comparison.Verdict != VerdictRight {
		t.Fatalf("expected B to be stronger, got %v", comparison.Verdict)
	}
}

func TestCompareIdenticalRecordsTie(t *testing.T) {
	text := "PROFILE\ndev\nSKILLS\nGo, SQL"
	recordA := extractRecord(t, text)
	recordB := extractRecord(t, text)

	comparison := Compare(recordA, recordB, nil, nil, DefaultWeights())

	if comparison.Verdict != VerdictTie {
		t.Fatalf("expected a tie, got %v", comparison.Verdict)
	}

	if comparison.Verdict.String() != "the resumes are evenly matched" {
		t.Fatalf("unexpected verdict text: %s", comparison.Verdict.String())
	}
}

func TestCompareRowsArePadded(t *testing.T) {
	recordA := extractRecord(t, "EDUCATION\nB.Tech CS 2020\nM.Tech CS 2022")
	recordB := extractRecord(t, "EDUCATION\nB.Sc Physics")

	comparison := Compare(recordA, recordB, []string{"Education"}, nil, DefaultWeights())

	if len(comparison.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(comparison.Rows))
	}

	row := comparison.Rows[0]
	if len(row.Left) != len(row.Right) {
		t.Fatalf("expected padded rows of equal length, got %d vs %d", len(row.Left), len(row.Right))
	}

	if row.Right[1] != "" {
		t.Fatalf("expected blank padding, got %q", row.Right[1])
	}
}

func TestCompareEmitsSectionDiffs(t *testing.T) {
	recordA := extractRecord(t, "EDUCATION\nB.Tech CS 2020")
	recordB := extractRecord(t, "EDUCATION\nB.Tech EE 2020")

	comparison := Compare(recordA, recordB, []string{"Education"}, nil, DefaultWeights())

	if len(comparison.Diffs) != 1 {
		t.Fatalf("expected 1 diff, got %d", len(comparison.Diffs))
	}

	if comparison.Diffs[0].Section != "Education" {
		t.Fatalf("unexpected diff section: %s", comparison.Diffs[0].Section)
	}

	diff := comparison.Diffs[0].Diff
	if !strings.Contains(diff, "CS") || !strings.Contains(diff, "EE") {
		t.Fatalf("expected diff to mention both variants, got %q", diff)
	}
}

func TestCompareIdenticalSectionsProduceNoDiff(t *testing.T) {
	text := "EDUCATION\nB.Tech CS 2020"
	recordA := extractRecord(t, text)
	recordB := extractRecord(t, text)

	comparison := Compare(recordA, recordB, []string{"Education"}, nil, DefaultWeights())

	if len(comparison.Diffs) != 0 {
		t.Fatalf("expected no diffs for identical sections, got %d", len(comparison.Diffs))
	}
}
