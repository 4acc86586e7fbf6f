package extract

import "strings"

// Sentinel is the display value for fields that could not be resolved.
// Internally absent fields are empty strings or empty slices; the sentinel
// appears only at the display boundary.
const Sentinel = "Not found"

// Record is the structured result of extracting a single resume. It is
// constructed once per document and not mutated afterwards.
type Record struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// Sections holds content for every canonical section in the catalog,
	// keyed by canonical identifier. A key is always present even when no
	// content was collected for it. Ordinary sections keep their content
	// lines in document order; the skills section keeps a sorted set of
	// deduplicated skill tokens.
	Sections map[string][]string `json:"sections"`
}

// Has reports whether any content was collected for the canonical section.
func (r *Record) Has(section string) bool {
	return len(r.Sections[section]) > 0
}

// SectionText returns the section content joined for display: ordinary
// sections join lines with newlines, the skills section joins tokens with
// ", ". It returns the empty string when no content was collected.
func (r *Record) SectionText(section string) string {
	lines := r.Sections[section]
	if len(lines) == 0 {
		return ""
	}

	if section == SkillsSection {
		return strings.Join(lines, ", ")
	}

	return strings.Join(lines, "\n")
}

// DisplayValue returns the named contact field or section for display,
// substituting the sentinel for absent values.
func (r *Record) DisplayValue(field string) string {
	var value string

	switch field {
	case "Name":
		value = r.Name
	case "Email":
		value = r.Email
	case "Phone":
		value = r.Phone
	default:
		value = r.SectionText(field)
	}

	if value == "" {
		return Sentinel
	}

	return value
}
