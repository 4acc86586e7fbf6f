package score

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"resume-sift/internal/extract"
)

// Verdict says which of the two compared records scored higher.
type Verdict int

const (
	VerdictTie Verdict = iota
	VerdictLeft
	VerdictRight
)

func (v Verdict) String() string {
	switch v {
	case VerdictLeft:
		return "the first resume is stronger"
	case VerdictRight:
		return "the second resume is stronger"
	default:
		return "the resumes are evenly matched"
	}
}

// SectionRow aligns one canonical section of both records for side-by-side
// display. The shorter side is padded with blanks so both have equal length.
type SectionRow struct {
	Section string
	Left    []string
	Right   []string
}

// SectionDiff carries a textual diff of one section's content across the two
// records.
type SectionDiff struct {
	Section string
	Diff    string
}

// Comparison is the result of comparing two records.
type Comparison struct {
	Left    *Report
	Right   *Report
	Rows    []SectionRow
	Diffs   []SectionDiff
	Verdict Verdict
}

// Compare scores both records independently, aligns their sections for
// side-by-side display and reports which one is stronger. Equal scores fall
// back to comparing skill counts before declaring a tie.
func Compare(left, right *extract.Record, sections []string, keywords []string, weights Weights) *Comparison {
	comparison := &Comparison{
		Left:  Score(left, keywords, weights),
		Right: Score(right, keywords, weights),
	}

	if len(sections) == 0 {
		sections = extract.DefaultCatalog().Canonicals()
	}

	dmp := diffmatchpatch.New()
	for _, section := range sections {
		comparison.Rows = append(comparison.Rows, alignSection(section, left, right))

		leftText := left.SectionText(section)
		rightText := right.SectionText(section)
		if leftText == rightText || (leftText == "" && rightText == "") {
			continue
		}

		diffs := dmp.DiffMain(leftText, rightText, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		comparison.Diffs = append(comparison.Diffs, SectionDiff{
			Section: section,
			Diff:    dmp.DiffPrettyText(diffs),
		})
	}

	comparison.Verdict = verdict(left, right, comparison.Left.Score, comparison.Right.Score)

	return comparison
}

func alignSection(section string, left, right *extract.Record) SectionRow {
	row := SectionRow{
		Section: section,
		Left:    append([]string(nil), left.Sections[section]...),
		Right:   append([]string(nil), right.Sections[section]...),
	}

	for len(row.Left) < len(row.Right) {
		row.Left = append(row.Left, "")
	}
	for len(row.Right) < len(row.Left) {
		row.Right = append(row.Right, "")
	}

	return row
}

func verdict(left, right *extract.Record, leftScore, rightScore float64) Verdict {
	switch {
	case leftScore > rightScore:
		return VerdictLeft
	case rightScore > leftScore:
		return VerdictRight
	}

	// Same completeness: the record with more skills wins.
	leftSkills := len(left.Sections[extract.SkillsSection])
	rightSkills := len(right.Sections[extract.SkillsSection])
	switch {
	case leftSkills > rightSkills:
		return VerdictLeft
	case rightSkills > leftSkills:
		return VerdictRight
	}

	return VerdictTie
}
