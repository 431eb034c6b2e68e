// Package extract turns uploaded resume files into plain text.
package extract

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxFileSize bounds the files read by [File].
const MaxFileSize = 10 << 20

// Text extracts the text of a document. The type is taken from the
// extension of name:
//   - .txt (or .md) is returned as is;
//   - .pdf pages are read in order and joined with a single space;
//   - .docx paragraphs are joined with new lines.
func Text(name string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		return string(data), nil
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Base(name))
	}
}

// File reads the file at path and extracts its text with [Text].
func File(path string) (string, error) {
	path = strings.TrimSpace(path)

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrExtraction, path)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	return Text(path, data)
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read pdf: %v", ErrExtraction, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, i, err)
		}
		pages = append(pages, text)
	}

	text := strings.Join(pages, " ")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text found, ensure it is a text-based pdf", ErrExtraction)
	}
	return text, nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse docx: %v", ErrExtraction, err)
	}
	defer doc.Close()

	// document.xml: every paragraph ends with </w:p>
	content := docxParagraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	content = html.UnescapeString(docxTag.ReplaceAllString(content, ""))

	text := strings.TrimSpace(content)
	if text == "" {
		return "", fmt.Errorf("%w: document is empty", ErrExtraction)
	}
	return text, nil
}
