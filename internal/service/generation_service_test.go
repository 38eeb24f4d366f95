package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentscout_backend/internal/config"
	"talentscout_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini serves a canned generateContent response.
func fakeGemini(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.NotEmpty(t, r.Header.Get("x-goog-api-key"))

		w.WriteHeader(status)
		if status != http.StatusOK {
			fmt.Fprint(w, `{"error":{"message":"boom"}}`)
			return
		}
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func liveConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		APIKey:        "test-key",
		BaseURL:       baseURL,
		Model:         "gemini-1.5-flash",
		QuestionCount: 5,
	}
}

func TestMockModeIsDeterministic(t *testing.T) {
	svc := NewGenerationService(config.AIConfig{}) // no API key
	require.False(t, svc.Live())

	ctx := context.Background()

	first := svc.Summarize(ctx, "Jane Doe", "Backend Engineer", "ten years of Go")
	second := svc.Summarize(ctx, "Jane Doe", "Backend Engineer", "completely different CV text")
	assert.Equal(t, SourceMock, first.Source)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, MockSummary("Jane Doe", "Backend Engineer"), first.Text)

	report := svc.GenerateReport(ctx, "Jane Doe", "Backend Engineer", nil)
	assert.Equal(t, SourceMock, report.Source)
	assert.Equal(t, MockReport("Jane Doe", "Backend Engineer"), report.Text)
}

func TestMockQuestionsBoundedAndOrdered(t *testing.T) {
	svc := NewGenerationService(config.AIConfig{})

	questions, source := svc.GenerateQuestions(context.Background(), "Backend Engineer", "summary", 3)
	assert.Equal(t, SourceMock, source)
	require.Len(t, questions, 3)
	assert.Equal(t, model.CategoryScreening, questions[0].Category)
	assert.Equal(t, MockQuestions("Backend Engineer", 3), questions)
}

func TestLiveSummarize(t *testing.T) {
	srv := fakeGemini(t, http.StatusOK, "A focused Go engineer with a decade of backend work.")
	defer srv.Close()

	svc := NewGenerationService(liveConfig(srv.URL))
	require.True(t, svc.Live())

	result := svc.Summarize(context.Background(), "Jane Doe", "Backend Engineer", "cv text")
	assert.Equal(t, SourceLive, result.Source)
	assert.Equal(t, "A focused Go engineer with a decade of backend work.", result.Text)
}

func TestLiveFailureFallsBackToMock(t *testing.T) {
	srv := fakeGemini(t, http.StatusInternalServerError, "")
	defer srv.Close()

	svc := NewGenerationService(liveConfig(srv.URL))

	result := svc.Summarize(context.Background(), "Jane Doe", "Backend Engineer", "cv text")
	assert.Equal(t, SourceMock, result.Source)
	assert.Equal(t, MockSummary("Jane Doe", "Backend Engineer"), result.Text)

	report := svc.GenerateReport(context.Background(), "Jane Doe", "Backend Engineer", nil)
	assert.Equal(t, SourceMock, report.Source)
}

func TestTransportErrorFallsBackToMock(t *testing.T) {
	// Point at a closed server so the HTTP call itself fails.
	srv := fakeGemini(t, http.StatusOK, "unused")
	srv.Close()

	svc := NewGenerationService(liveConfig(srv.URL))

	questions, source := svc.GenerateQuestions(context.Background(), "Backend Engineer", "summary", 4)
	assert.Equal(t, SourceMock, source)
	assert.Equal(t, MockQuestions("Backend Engineer", 4), questions)
}

func TestLiveQuestionsTruncatedToCount(t *testing.T) {
	payload := `{"screening":["q1","q2","q3"],"technical":["q4","q5","q6"]}`
	srv := fakeGemini(t, http.StatusOK, payload)
	defer srv.Close()

	svc := NewGenerationService(liveConfig(srv.URL))

	questions, source := svc.GenerateQuestions(context.Background(), "Backend Engineer", "summary", 4)
	assert.Equal(t, SourceLive, source)
	require.Len(t, questions, 4)
	assert.Equal(t, "q1", questions[0].Text)
	assert.Equal(t, model.CategoryScreening, questions[2].Category)
	assert.Equal(t, model.CategoryTechnical, questions[3].Category)
}

func TestLiveQuestionsShortResponseAccepted(t *testing.T) {
	payload := "```json\n{\"screening\":[\"only one\"],\"technical\":[]}\n```"
	srv := fakeGemini(t, http.StatusOK, payload)
	defer srv.Close()

	svc := NewGenerationService(liveConfig(srv.URL))

	questions, source := svc.GenerateQuestions(context.Background(), "Backend Engineer", "summary", 5)
	assert.Equal(t, SourceLive, source)
	require.Len(t, questions, 1)
	assert.Equal(t, "only one", questions[0].Text)
}

func TestMalformedQuestionPayloadFallsBack(t *testing.T) {
	srv := fakeGemini(t, http.StatusOK, "this is not json at all")
	defer srv.Close()

	svc := NewGenerationService(liveConfig(srv.URL))

	questions, source := svc.GenerateQuestions(context.Background(), "Backend Engineer", "summary", 3)
	assert.Equal(t, SourceMock, source)
	assert.Equal(t, MockQuestions("Backend Engineer", 3), questions)
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                      `{"a":1}`,
		"```json\n{\"a\":1}\n```":        `{"a":1}`,
		"```\n{\"a\":1}\n```":            `{"a":1}`,
		"  \n```JSON\n{\"a\":1}\n```\n ": `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, stripCodeFence(in))
	}
}
