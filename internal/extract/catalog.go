package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SkillsSection is the canonical section that gets skill-token treatment
// instead of line-by-line content.
const SkillsSection = "Skills"

// headerLengthSlack is the number of extra characters a line may carry beyond
// the keyword itself and still count as a section header. Longer lines that
// merely mention a keyword in passing are treated as content.
const headerLengthSlack = 15

// Alias maps a header keyword found in resume text to a canonical section.
type Alias struct {
	Keyword string `mapstructure:"keyword"`
	Section string `mapstructure:"section"`
}

// Catalog is an ordered table of header keywords. Declaration order matters:
// when a line could match several keywords, the first alias in the table wins.
// A Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	aliases    []Alias
	canonicals []string
}

// NewCatalog builds a catalog from the provided alias table. Keywords are
// matched case-insensitively and are stored upper-cased.
func NewCatalog(aliases []Alias) (*Catalog, error) {
	if len(aliases) == 0 {
		return nil, errors.New("at least one section alias is required")
	}

	c := &Catalog{aliases: make([]Alias, 0, len(aliases))}
	seen := make(map[string]bool)

	for _, alias := range aliases {
		keyword := strings.ToUpper(strings.TrimSpace(alias.Keyword))
		section := strings.TrimSpace(alias.Section)
		if keyword == "" || section == "" {
			return nil, fmt.Errorf("alias %+v: keyword and section are required", alias)
		}

		c.aliases = append(c.aliases, Alias{Keyword: keyword, Section: section})

		if !seen[section] {
			seen[section] = true
			c.canonicals = append(c.canonicals, section)
		}
	}

	return c, nil
}

// DefaultCatalog returns the built-in alias table covering the common resume
// section headers.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Alias{
		{Keyword: "PROFILE", Section: "Profile"},
		{Keyword: "PROFESSIONAL EXPERIENCE", Section: "Professional Experience"},
		{Keyword: "EDUCATION", Section: "Education"},
		{Keyword: "SKILLS", Section: SkillsSection},
		{Keyword: "PROJECTS", Section: "Projects"},
		{Keyword: "POSITION OF RESPONSIBILITY", Section: "Position of Responsibility"},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Canonicals returns the canonical section identifiers in first-appearance
// order. The returned slice must not be modified.
func (c *Catalog) Canonicals() []string {
	return c.canonicals
}

// Match reports whether the line is a section header and, if so, which
// canonical section it introduces. A line matches a keyword when the keyword
// appears in it (case-insensitively) and the line is not much longer than the
// keyword itself.
func (c *Catalog) Match(line string) (string, bool) {
	upper := strings.ToUpper(line)
	lineLen := utf8.RuneCountInString(line)

	for _, alias := range c.aliases {
		if strings.Contains(upper, alias.Keyword) && lineLen < utf8.RuneCountInString(alias.Keyword)+headerLengthSlack {
			return alias.Section, true
		}
	}

	return "", false
}
