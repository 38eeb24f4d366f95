package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"talentscout_backend/internal/model"
	"talentscout_backend/internal/repository"
	"talentscout_backend/internal/util"
	"talentscout_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScreeningService orchestrates one candidate session: extract CV text,
// summarize, generate questions, accumulate answers, then synthesize and
// persist the final report.
type ScreeningService struct {
	Sessions   *repository.SessionRepository
	Extraction *ExtractionService
	Generation *GenerationService

	QuestionCount int
}

func NewScreeningService(sessions *repository.SessionRepository,
	extraction *ExtractionService, generation *GenerationService, questionCount int) *ScreeningService {
	if questionCount <= 0 {
		questionCount = defaultQuestionCount
	}
	return &ScreeningService{
		Sessions:      sessions,
		Extraction:    extraction,
		Generation:    generation,
		QuestionCount: questionCount,
	}
}

type StartScreeningRequest struct {
	CandidateName string
	Email         string
	Role          string
	CVText        string    // pasted resume text, used when no file is uploaded
	Filename      string    // original name of the uploaded file, if any
	File          io.Reader // uploaded resume, if any
}

// QuestionView is the candidate-facing projection of a session: the current
// question, progress, and the answered history.
type QuestionView struct {
	SessionID string                  `json:"sessionId"`
	Status    model.SessionStatus     `json:"status"`
	Index     int                     `json:"index"`
	Total     int                     `json:"total"`
	Question  string                  `json:"question,omitempty"`
	Category  model.QuestionCategory  `json:"category,omitempty"`
	Summary   string                  `json:"summary"`
	History   []model.TranscriptEntry `json:"history"`
	ReportID  *uint                   `json:"reportId,omitempty"`
}

// Start runs extraction, summarization and question generation, then
// creates the session. A CV that yields no text does not abort the flow:
// summarization proceeds on the placeholder path so the candidate can still
// be screened.
func (s *ScreeningService) Start(ctx context.Context, req StartScreeningRequest) (*QuestionView, error) {
	cvText := strings.TrimSpace(req.CVText)
	if req.File != nil {
		extraction := s.Extraction.ExtractText(ctx, req.Filename, req.File)
		if extraction.Outcome == ExtractionOK {
			cvText = extraction.Text
		} else {
			logger.Log.Info("no extractable text in uploaded CV, proceeding with placeholder summary",
				zap.String("candidate", req.CandidateName),
				zap.String("filename", req.Filename))
		}
	}

	var summary GenerationResult
	if cvText == "" {
		summary = GenerationResult{Text: MockSummary(req.CandidateName, req.Role), Source: SourceMock}
	} else {
		summary = s.Generation.Summarize(ctx, req.CandidateName, req.Role, cvText)
	}

	questions, _ := s.Generation.GenerateQuestions(ctx, req.Role, summary.Text, s.QuestionCount)
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}

	session := &model.ScreeningSession{
		CandidateName: req.CandidateName,
		Email:         req.Email,
		Role:          req.Role,
		CVText:        cvText,
		Summary:       summary.Text,
		SummarySource: string(summary.Source),
		QuestionsJSON: questionsJSON,
		Status:        model.StatusQuestionsReady,
	}
	if err := s.Sessions.Create(session); err != nil {
		return nil, err
	}

	return s.viewOf(session)
}

// Get returns the candidate's current position in the session.
func (s *ScreeningService) Get(id string) (*QuestionView, error) {
	session, err := s.findSession(id)
	if err != nil {
		return nil, err
	}
	return s.viewOf(session)
}

// SubmitAnswer records one answer and advances. Submitting the final answer
// triggers report generation and persistence; the returned view then
// carries the report reference id.
func (s *ScreeningService) SubmitAnswer(ctx context.Context, id, answer string) (*QuestionView, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, util.ErrEmptyAnswer
	}

	session, err := s.findSession(id)
	if err != nil {
		return nil, err
	}
	if session.Status == model.StatusCompleted {
		return nil, util.ErrSessionCompleted
	}

	questions, err := session.Questions()
	if err != nil {
		return nil, err
	}
	answers, err := session.Answers()
	if err != nil {
		return nil, err
	}
	if len(answers) >= len(questions) {
		// Every answer is already recorded but an earlier completion
		// write failed and rolled back. Retry finalization with the
		// stored answers; the resubmitted text is not recorded.
		if err := s.finalize(ctx, session, questions, answers); err != nil {
			return nil, err
		}
		return s.viewOf(session)
	}

	answers = append(answers, answer)
	if err := s.Sessions.AppendAnswer(session, answers, len(answers)); err != nil {
		return nil, err
	}

	if len(answers) == len(questions) {
		if err := s.finalize(ctx, session, questions, answers); err != nil {
			return nil, err
		}
	}

	return s.viewOf(session)
}

// finalize generates the report and writes the Report row. It only runs
// once every question has a non-empty answer; no partial reports are ever
// stored.
func (s *ScreeningService) finalize(ctx context.Context, session *model.ScreeningSession,
	questions []model.GeneratedQuestion, answers []string) error {

	transcript := make([]model.TranscriptEntry, len(questions))
	for i, q := range questions {
		transcript[i] = model.TranscriptEntry{
			Question: q.Text,
			Category: q.Category,
			Answer:   answers[i],
		}
	}

	result := s.Generation.GenerateReport(ctx, session.CandidateName, session.Role, transcript)

	transcriptJSON, err := json.Marshal(transcript)
	if err != nil {
		return err
	}

	report := &model.Report{
		CandidateName:  session.CandidateName,
		Email:          session.Email,
		Role:           session.Role,
		SummaryText:    session.Summary,
		ReportText:     result.Text,
		Source:         string(result.Source),
		TranscriptJSON: transcriptJSON,
		QuestionCount:  len(questions),
	}
	if err := s.Sessions.CompleteWithReport(session, report); err != nil {
		return err
	}

	logger.Log.Info("screening completed",
		zap.String("session", session.ID),
		zap.Uint("report", report.ID),
		zap.String("source", report.Source))
	return nil
}

func (s *ScreeningService) findSession(id string) (*model.ScreeningSession, error) {
	session, err := s.Sessions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *ScreeningService) viewOf(session *model.ScreeningSession) (*QuestionView, error) {
	questions, err := session.Questions()
	if err != nil {
		return nil, err
	}
	answers, err := session.Answers()
	if err != nil {
		return nil, err
	}

	view := &QuestionView{
		SessionID: session.ID,
		Status:    session.Status,
		Index:     session.CurrentIndex,
		Total:     len(questions),
		Summary:   session.Summary,
		History:   []model.TranscriptEntry{},
		ReportID:  session.ReportID,
	}

	for i := 0; i < len(answers) && i < len(questions); i++ {
		view.History = append(view.History, model.TranscriptEntry{
			Question: questions[i].Text,
			Category: questions[i].Category,
			Answer:   answers[i],
		})
	}

	if session.Status != model.StatusCompleted && session.CurrentIndex < len(questions) {
		view.Question = questions[session.CurrentIndex].Text
		view.Category = questions[session.CurrentIndex].Category
	}

	return view, nil
}
