package services

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type ExtractorService interface {
	ExtractText(ctx context.Context, data []byte, filename string) string
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// ExtractText converts an uploaded document into normalized plain text.
// Extraction failure is a degraded-but-valid result: any unreadable or
// malformed document yields an empty string, never an error. The extension
// of filename selects the parser; anything unrecognized is treated as UTF-8
// text with invalid bytes dropped.
func (e *extractorService) ExtractText(ctx context.Context, data []byte, filename string) string {
	if len(data) == 0 {
		return ""
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.extractPDF(ctx, data)
	case ".docx":
		return e.extractDocx(data)
	default:
		return CleanText(decodeUTF8(data))
	}
}

func (e *extractorService) extractPDF(ctx context.Context, data []byte) string {
	// The pdf library panics on some malformed inputs; recover keeps the
	// degrade-to-empty contract.
	defer func() { _ = recover() }()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		if ctx.Err() != nil {
			return ""
		}

		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages but keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return CleanText(textBuilder.String())
}

func (e *extractorService) extractDocx(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// GetContent returns the document XML; strip markup before scoring.
	content = xmlTagPattern.ReplaceAllString(content, " ")
	return CleanText(content)
}

func decodeUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var builder strings.Builder
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r != utf8.RuneError || size > 1 {
			builder.WriteRune(r)
		}
		data = data[size:]
	}
	return builder.String()
}

// CleanText trims each line and drops blank ones so every extractor returns
// the same newline-joined shape.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
