package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"talentscout_backend/internal/config"
	"talentscout_backend/internal/model"
	"talentscout_backend/pkg/logger"
	"talentscout_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// GenerationSource records whether output came from the live API or the
// deterministic mock path.
type GenerationSource string

const (
	SourceLive GenerationSource = "live"
	SourceMock GenerationSource = "mock"
)

type GenerationResult struct {
	Text   string
	Source GenerationSource
}

// GenerationService wraps the Gemini generateContent API. Mode is fixed at
// construction: with no API key every call returns mock output. Live
// failures are logged and replaced by mock output, never propagated.
type GenerationService struct {
	cfg    config.AIConfig
	client *http.Client
	live   bool
}

func NewGenerationService(cfg config.AIConfig) *GenerationService {
	return &GenerationService{
		cfg:    cfg,
		client: &http.Client{},
		live:   cfg.APIKey != "",
	}
}

// Live reports whether the service was constructed with an API key.
func (s *GenerationService) Live() bool {
	return s.live
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *GenerationService) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if jsonMode {
		reqBody.GenerationConfig = &geminiGenerationConfig{ResponseMIMEType: "application/json"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("generation API error: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("generation API returned no candidates")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("generation API returned empty text")
	}
	return text.String(), nil
}

func (s *GenerationService) fallback(operation string, err error) {
	logger.Log.Warn("live generation failed, substituting mock output",
		zap.String("operation", operation),
		zap.Error(err))
	monitoring.GenerationFallbacks.WithLabelValues(operation).Inc()
}

// Summarize produces a short recruiter-facing profile summary from raw CV
// text.
func (s *GenerationService) Summarize(ctx context.Context, candidateName, role, cvText string) GenerationResult {
	if !s.live {
		return GenerationResult{Text: MockSummary(candidateName, role), Source: SourceMock}
	}

	text, err := s.generate(ctx, buildSummaryPrompt(candidateName, role, cvText), false)
	if err != nil {
		s.fallback("summarize", err)
		return GenerationResult{Text: MockSummary(candidateName, role), Source: SourceMock}
	}
	return GenerationResult{Text: strings.TrimSpace(text), Source: SourceLive}
}

type questionSetPayload struct {
	Screening []string `json:"screening"`
	Technical []string `json:"technical"`
}

// GenerateQuestions returns at most count ordered questions. Live responses
// longer than count are truncated; shorter ones are accepted as-is.
func (s *GenerationService) GenerateQuestions(ctx context.Context, role, summary string, count int) ([]model.GeneratedQuestion, GenerationSource) {
	if count <= 0 {
		count = defaultQuestionCount
	}

	if !s.live {
		return MockQuestions(role, count), SourceMock
	}

	raw, err := s.generate(ctx, buildQuestionsPrompt(role, summary, count), true)
	if err != nil {
		s.fallback("generate_questions", err)
		return MockQuestions(role, count), SourceMock
	}

	questions, err := parseQuestionSet(raw)
	if err != nil {
		s.fallback("generate_questions", err)
		return MockQuestions(role, count), SourceMock
	}

	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, SourceLive
}

// GenerateReport synthesizes the final hiring report from the full ordered
// transcript.
func (s *GenerationService) GenerateReport(ctx context.Context, candidateName, role string, transcript []model.TranscriptEntry) GenerationResult {
	if !s.live {
		return GenerationResult{Text: MockReport(candidateName, role), Source: SourceMock}
	}

	text, err := s.generate(ctx, buildReportPrompt(candidateName, role, transcript), false)
	if err != nil {
		s.fallback("generate_report", err)
		return GenerationResult{Text: MockReport(candidateName, role), Source: SourceMock}
	}
	return GenerationResult{Text: strings.TrimSpace(text), Source: SourceLive}
}

// parseQuestionSet decodes the model's JSON question payload, tolerating
// markdown code fences, and flattens it in presentation order: screening
// first, then technical.
func parseQuestionSet(raw string) ([]model.GeneratedQuestion, error) {
	cleaned := stripCodeFence(raw)

	var payload questionSetPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("invalid question payload: %w", err)
	}

	questions := make([]model.GeneratedQuestion, 0, len(payload.Screening)+len(payload.Technical))
	for _, q := range payload.Screening {
		if strings.TrimSpace(q) == "" {
			continue
		}
		questions = append(questions, model.GeneratedQuestion{Text: q, Category: model.CategoryScreening})
	}
	for _, q := range payload.Technical {
		if strings.TrimSpace(q) == "" {
			continue
		}
		questions = append(questions, model.GeneratedQuestion{Text: q, Category: model.CategoryTechnical})
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("question payload contained no questions")
	}
	return questions, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.Trim(s, "` \n")
	if strings.HasPrefix(strings.ToLower(s), "json") {
		s = strings.TrimSpace(s[4:])
	}
	return s
}
