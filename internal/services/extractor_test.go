package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextPlainText(t *testing.T) {
	svc := NewExtractorService()

	text := svc.ExtractText(context.Background(), []byte("  Jane Doe  \n\n  Data Engineer \n"), "resume.txt")

	assert.Equal(t, "Jane Doe\nData Engineer", text)
}

func TestExtractTextUnknownExtensionFallsBackToText(t *testing.T) {
	svc := NewExtractorService()

	text := svc.ExtractText(context.Background(), []byte("plain content"), "resume.md")

	assert.Equal(t, "plain content", text)
}

func TestExtractTextInvalidUTF8IsLossy(t *testing.T) {
	svc := NewExtractorService()

	data := append([]byte("skills"), 0xff, 0xfe)
	text := svc.ExtractText(context.Background(), data, "notes.txt")

	assert.Contains(t, text, "skills")
	assert.True(t, len(text) >= len("skills"))
}

func TestExtractTextCorruptPDFDegradesToEmpty(t *testing.T) {
	svc := NewExtractorService()

	text := svc.ExtractText(context.Background(), []byte("%PDF-1.4 garbage not a real pdf"), "resume.pdf")

	assert.Equal(t, "", text)
}

func TestExtractTextCorruptDocxDegradesToEmpty(t *testing.T) {
	svc := NewExtractorService()

	text := svc.ExtractText(context.Background(), []byte("not a zip archive"), "resume.docx")

	assert.Equal(t, "", text)
}

func TestExtractTextEmptyInput(t *testing.T) {
	svc := NewExtractorService()

	assert.Equal(t, "", svc.ExtractText(context.Background(), nil, "resume.pdf"))
	assert.Equal(t, "", svc.ExtractText(context.Background(), []byte{}, "resume.txt"))
}

func TestExtractTextExtensionCaseInsensitive(t *testing.T) {
	svc := NewExtractorService()

	// uppercase extension still routes to the PDF parser, which degrades
	// to empty on this garbage input instead of dumping raw bytes
	text := svc.ExtractText(context.Background(), []byte("garbage"), "RESUME.PDF")

	assert.Equal(t, "", text)
}

func TestCleanTextNormalizesLines(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n\n   b \n"))
	assert.Equal(t, "", CleanText("   \n \t \n"))
}
