package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/gen2brain/go-fitz"
)

// ExtractionError marks a file the declared-type extractor could not read.
// It is fatal for the current upload: the pipeline must not reach the AI
// stages with partial or garbled text.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract text from %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func extractionFailed(filename string, err error) error {
	return &ExtractionError{Filename: filename, Err: err}
}

// ExtractText converts an uploaded file into plain text, dispatching on the
// file extension. Unrecognized types get a best-effort plain-text decode.
func ExtractText(path, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(path, filename)
	case ".docx":
		return extractDocxText(path, filename)
	default:
		return extractPlainText(path, filename)
	}
}

// extractPDFText walks the text layer page by page. Page order is preserved,
// pages are joined with a newline.
func extractPDFText(path, filename string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", extractionFailed(filename, err)
	}
	defer doc.Close()

	var pages []string
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", extractionFailed(filename, fmt.Errorf("page %d: %w", n+1, err))
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	result := strings.TrimSpace(strings.Join(pages, "\n"))
	if result == "" {
		return "", extractionFailed(filename, fmt.Errorf("no text layer in PDF"))
	}
	return result, nil
}

func extractDocxText(path, filename string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", extractionFailed(filename, err)
	}
	text := strings.TrimSpace(res.Body)
	if text == "" {
		return "", extractionFailed(filename, fmt.Errorf("document contains no text"))
	}
	return text, nil
}

func extractPlainText(path, filename string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", extractionFailed(filename, err)
	}
	if !utf8.Valid(raw) {
		return "", extractionFailed(filename, fmt.Errorf("file is not valid UTF-8 text"))
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", extractionFailed(filename, fmt.Errorf("file is empty"))
	}
	return text, nil
}
