package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlainText(t *testing.T) {
	svc := NewExtractionService()

	result := svc.ExtractText(context.Background(), "resume.txt", strings.NewReader("  Jane Doe\nBackend Engineer\n"))
	assert.Equal(t, ExtractionOK, result.Outcome)
	assert.Equal(t, "plain", result.Method)
	assert.Equal(t, "Jane Doe\nBackend Engineer", result.Text)
}

func TestExtractEmptyInputSignalsNoText(t *testing.T) {
	svc := NewExtractionService()

	result := svc.ExtractText(context.Background(), "resume.txt", strings.NewReader(""))
	assert.Equal(t, ExtractionNoText, result.Outcome)
	assert.Empty(t, result.Text)
}

func TestExtractWhitespaceOnlySignalsNoText(t *testing.T) {
	svc := NewExtractionService()

	result := svc.ExtractText(context.Background(), "resume.txt", strings.NewReader("   \n\t  \n"))
	assert.Equal(t, ExtractionNoText, result.Outcome)
}

func TestExtractBinaryGarbageSignalsNoText(t *testing.T) {
	svc := NewExtractionService()

	garbage := bytes.Repeat([]byte{0x00, 0x01, 0x02, 'a'}, 300)
	result := svc.ExtractText(context.Background(), "resume.bin", bytes.NewReader(garbage))
	assert.Equal(t, ExtractionNoText, result.Outcome)
}

// A malformed PDF must never error out of extraction; it degrades to the
// explicit no-text outcome.
func TestExtractMalformedPDFSignalsNoText(t *testing.T) {
	svc := NewExtractionService()

	result := svc.ExtractText(context.Background(), "resume.pdf", strings.NewReader("%PDF-1.7 this is not a real pdf"))
	assert.Equal(t, ExtractionNoText, result.Outcome)
	assert.Empty(t, result.Text)
}

func TestIsBinaryData(t *testing.T) {
	assert.False(t, isBinaryData([]byte("ordinary resume text\nwith lines\n")))
	assert.True(t, isBinaryData(bytes.Repeat([]byte{0x00, 0x01}, 200)))
	assert.False(t, isBinaryData(nil))
}
