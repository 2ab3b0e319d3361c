// Package documents converts stored résumé documents into plain text for
// entity extraction.
package documents

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// binarySampleSize is the number of bytes sampled for binary detection.
	binarySampleSize = 1000
	// binaryThreshold is the proportion of non-printable characters that
	// marks content as binary rather than text.
	binaryThreshold = 0.3
)

// Extractor implements text extraction for the document formats the
// platform stores résumés in: plain text and HTML. Binary uploads (PDF,
// DOCX) are converted to one of these by the upload service before they
// reach the document store; raw binary bytes here mean that conversion
// never happened.
type Extractor struct{}

// NewExtractor creates a text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText converts document bytes to plain text. It returns
// UnsupportedFormatError for binary formats and CorruptDocumentError for
// unreadable content.
func (e *Extractor) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &CorruptDocumentError{Reason: "document is empty"}
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return "", &UnsupportedFormatError{Format: "pdf"}
	case bytes.HasPrefix(data, []byte("PK")):
		return "", &UnsupportedFormatError{Format: "zip container"}
	case looksLikeHTML(data):
		return extractHTML(data)
	case isBinary(data):
		return "", &CorruptDocumentError{Reason: "content appears to be binary"}
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", &CorruptDocumentError{Reason: "document contains no text"}
	}
	return text, nil
}

// extractHTML pulls the visible text out of an HTML document.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &CorruptDocumentError{Reason: "failed to parse HTML: " + err.Error()}
	}

	doc.Find("script, style").Remove()

	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return "", &CorruptDocumentError{Reason: "HTML document contains no text"}
	}
	return text, nil
}

func looksLikeHTML(data []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(data))
	return bytes.HasPrefix(head, []byte("<!doctype html")) ||
		bytes.HasPrefix(head, []byte("<html")) ||
		bytes.Contains(head, []byte("<body"))
}

// isBinary samples the content and reports whether the proportion of
// non-printable characters exceeds the binary threshold.
func isBinary(data []byte) bool {
	sampleSize := len(data)
	if sampleSize > binarySampleSize {
		sampleSize = binarySampleSize
	}

	nonPrintable := 0
	for i := 0; i < sampleSize; i++ {
		ch := data[i]
		if ch < 32 && ch != '\n' && ch != '\r' && ch != '\t' {
			nonPrintable++
		}
	}

	return float64(nonPrintable)/float64(sampleSize) > binaryThreshold
}
