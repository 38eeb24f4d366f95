package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"talentscout_backend/pkg/logger"

	"github.com/dslipak/pdf"
	"go.uber.org/zap"
)

type ExtractionOutcome string

const (
	ExtractionOK     ExtractionOutcome = "ok"
	ExtractionNoText ExtractionOutcome = "no_text"
)

// Extraction is the explicit result of a text-extraction attempt. A
// malformed or unreadable document yields Outcome ExtractionNoText, never
// an error.
type Extraction struct {
	Text    string
	Method  string // plain, pdf or ocr
	Outcome ExtractionOutcome
}

// ExtractionService converts uploaded CV documents to plain text. PDF text
// extraction runs first; whitespace-only results fall back to OCR when the
// pdftoppm and tesseract binaries are installed.
type ExtractionService struct{}

func NewExtractionService() *ExtractionService {
	return &ExtractionService{}
}

func (s *ExtractionService) ExtractText(ctx context.Context, filename string, r io.Reader) Extraction {
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return Extraction{Outcome: ExtractionNoText}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" && !bytes.HasPrefix(data, []byte("%PDF-")) {
		text := strings.TrimSpace(string(data))
		if text == "" || isBinaryData(data) {
			return Extraction{Outcome: ExtractionNoText}
		}
		return Extraction{Text: text, Method: "plain", Outcome: ExtractionOK}
	}

	text := extractPDFText(data)
	if strings.TrimSpace(text) != "" {
		return Extraction{Text: strings.TrimSpace(text), Method: "pdf", Outcome: ExtractionOK}
	}

	// Possibly a scanned PDF; try OCR if the tooling is present.
	text, err = ocrPDF(ctx, data)
	if err != nil {
		logger.Log.Debug("OCR fallback unavailable or failed", zap.Error(err))
		return Extraction{Outcome: ExtractionNoText}
	}
	if strings.TrimSpace(text) == "" {
		return Extraction{Outcome: ExtractionNoText}
	}
	return Extraction{Text: strings.TrimSpace(text), Method: "ocr", Outcome: ExtractionOK}
}

// extractPDFText pulls the text layer out of a PDF. The pdf package panics
// on some malformed files, so the recover turns those into an empty result.
func extractPDFText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return ""
	}
	return buf.String()
}

// ocrPDF renders pages to images with pdftoppm and runs tesseract over
// each. Requires both binaries on PATH.
func ocrPDF(ctx context.Context, data []byte) (string, error) {
	pdftoppm, err := exec.LookPath("pdftoppm")
	if err != nil {
		return "", fmt.Errorf("pdftoppm not installed: %w", err)
	}
	tesseract, err := exec.LookPath("tesseract")
	if err != nil {
		return "", fmt.Errorf("tesseract not installed: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "talentscout-ocr-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "upload.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, pdftoppm, "-png", "-r", "200", pdfPath, filepath.Join(tmpDir, "page"))
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w: %s", err, out)
	}

	pages, err := filepath.Glob(filepath.Join(tmpDir, "page-*.png"))
	if err != nil || len(pages) == 0 {
		return "", fmt.Errorf("no pages rendered for OCR")
	}
	sort.Strings(pages)

	var texts []string
	for _, page := range pages {
		cmd := exec.CommandContext(ctx, tesseract, page, "stdout")
		out, err := cmd.Output()
		if err != nil {
			return "", fmt.Errorf("tesseract failed on %s: %w", filepath.Base(page), err)
		}
		texts = append(texts, string(out))
	}
	return strings.Join(texts, "\n"), nil
}

const (
	binarySampleSize = 1000
	binaryThreshold  = 0.3
)

// isBinaryData flags content with a high proportion of non-printable bytes.
func isBinaryData(data []byte) bool {
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
