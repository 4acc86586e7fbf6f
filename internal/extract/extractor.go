package extract

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"resume-sift/internal/ner"

	"go.uber.org/zap"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\-\s]{8,}\d`)

	// Skill lines are split on runs of whitespace, bullets, commas and
	// semicolons.
	skillDelimiters = regexp.MustCompile(`[\s\x{2022},;]+`)
)

// Lines a name candidate may appear on.
const nameSearchDepth = 5

// Maximum word count for the first-line name fallback.
const nameFallbackMaxWords = 4

// Extractor turns raw resume text into a Record using the configured section
// catalog and an optional entity recognizer. It is stateless apart from that
// configuration and safe for concurrent use.
type Extractor struct {
	catalog    *Catalog
	recognizer ner.Recognizer
	logger     *zap.Logger
}

func New(catalog *Catalog, recognizer ner.Recognizer, logger *zap.Logger) *Extractor {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		catalog:    catalog,
		recognizer: recognizer,
		logger:     logger,
	}
}

// Extract parses the resume text into a Record. It never fails: fields that
// cannot be resolved stay absent, and every canonical section from the catalog
// is present in the result. Recognizer failures degrade to the first-line name
// fallback.
func (e *Extractor) Extract(ctx context.Context, text string) *Record {
	record := &Record{Sections: make(map[string][]string, len(e.catalog.Canonicals()))}
	for _, section := range e.catalog.Canonicals() {
		record.Sections[section] = nil
	}

	record.Email = emailPattern.FindString(text)
	record.Phone = phonePattern.FindString(text)

	lines := cleanLines(text)

	record.Name = e.findName(ctx, lines)

	e.routeSections(lines, record)

	return record
}

// cleanLines splits the text into trimmed, non-empty lines, preserving order.
func cleanLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// findName looks for a person name in the first few lines. Recognizer hits
// with at least two words are collected in line order; the very first line is
// an additional candidate when it is short and upper- or title-cased. The
// first candidate wins.
func (e *Extractor) findName(ctx context.Context, lines []string) string {
	var candidates []string

	depth := nameSearchDepth
	if len(lines) < depth {
		depth = len(lines)
	}

	for i := 0; i < depth; i++ {
		if e.recognizer != nil {
			entities, err := e.recognizer.Recognize(ctx, lines[i])
			if err != nil {
				e.logger.Debug("recognizer failed, relying on fallback",
					zap.Int("line", i),
					zap.Error(err),
				)
			}
			for _, entity := range entities {
				if entity.Label == ner.LabelPerson && len(strings.Fields(entity.Text)) >= 2 {
					candidates = append(candidates, entity.Text)
				}
			}
		}

		if i == 0 && (isUpperLine(lines[0]) || isTitleLine(lines[0])) && len(strings.Fields(lines[0])) <= nameFallbackMaxWords {
			candidates = append(candidates, lines[0])
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	return candidates[0]
}

// routeSections walks the lines in order, switching the active section on
// header lines and appending everything else to the active section. Header
// lines are consumed, never kept as content. Lines seen before the first
// header are discarded.
func (e *Extractor) routeSections(lines []string, record *Record) {
	current := ""
	seenSkills := make(map[string]bool)

	for _, line := range lines {
		if section, ok := e.catalog.Match(line); ok {
			current = section
			continue
		}

		if current == "" {
			continue
		}

		if current == SkillsSection {
			for _, token := range splitSkills(line) {
				if !seenSkills[token] {
					seenSkills[token] = true
					record.Sections[current] = append(record.Sections[current], token)
				}
			}
			continue
		}

		record.Sections[current] = append(record.Sections[current], line)
	}

	sort.Strings(record.Sections[SkillsSection])
}

func splitSkills(line string) []string {
	line = strings.TrimSpace(strings.ReplaceAll(line, "•", ""))

	tokens := make([]string, 0)
	for _, token := range skillDelimiters.Split(line, -1) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// isUpperLine reports whether the line contains at least one cased character
// and no lowercase ones.
func isUpperLine(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// isTitleLine reports whether every word starts with an uppercase letter
// followed only by non-uppercase characters.
func isTitleLine(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}

	for _, word := range words {
		sawCased := false
		for _, r := range word {
			if !unicode.IsLetter(r) {
				continue
			}
			if !sawCased {
				if !unicode.IsUpper(r) {
					return false
				}
				sawCased = true
				continue
			}
			if unicode.IsUpper(r) {
				return false
			}
		}
		if !sawCased {
			return false
		}
	}

	return true
}
