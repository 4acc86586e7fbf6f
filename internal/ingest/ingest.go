package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Supported reports whether the file name has an extension this package can
// extract text from.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx", ".txt":
		return true
	default:
		return false
	}
}

// ExtractText reads the file and returns its plain text content, dispatching
// on the file extension. It fails when the format is unsupported or when no
// text could be extracted, so callers never feed garbage to the parser.
func ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	var text string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		text = string(data)
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}

	if err != nil {
		return "", fmt.Errorf("extracting text from %q: %w", path, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text extracted from %q", path)
	}

	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return flattenDocxContent(doc.Editable().GetContent()), nil
}

// flattenDocxContent turns the raw document markup into plain text: paragraph
// ends become newlines, remaining tags are dropped and common entities are
// unescaped.
func flattenDocxContent(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")

	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return replacer.Replace(content)
}
