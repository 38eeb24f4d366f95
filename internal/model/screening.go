package model

import "encoding/json"

// QuestionCategory splits generated questions into the two interview rounds.
type QuestionCategory string

const (
	CategoryScreening QuestionCategory = "screening"
	CategoryTechnical QuestionCategory = "technical"
)

// GeneratedQuestion is one question in presentation order. Order is
// significant and preserved through to the report transcript.
type GeneratedQuestion struct {
	Text     string           `json:"text"`
	Category QuestionCategory `json:"category"`
}

// TranscriptEntry pairs a question with the candidate's answer.
type TranscriptEntry struct {
	Question string           `json:"question"`
	Category QuestionCategory `json:"category"`
	Answer   string           `json:"answer"`
}

type SessionStatus string

const (
	StatusQuestionsReady SessionStatus = "questions_ready"
	StatusAnswering      SessionStatus = "answering"
	StatusCompleted      SessionStatus = "completed"
)

// ScreeningSession is one candidate's in-flight screening. Questions and
// answers live in JSON columns; CurrentIndex points at the next unanswered
// question.
// swagger:model ScreeningSession
type ScreeningSession struct {
	UUIDBase
	CandidateName string          `gorm:"size:255;not null" json:"candidateName"`
	Email         string          `gorm:"size:255" json:"email"`
	Role          string          `gorm:"size:255;not null" json:"role"`
	CVText        string          `gorm:"type:text" json:"-"`
	Summary       string          `gorm:"type:text" json:"summary"`
	SummarySource string          `gorm:"size:10" json:"summarySource"`
	QuestionsJSON json.RawMessage `gorm:"type:json" json:"-"`
	AnswersJSON   json.RawMessage `gorm:"type:json" json:"-"`
	CurrentIndex  int             `gorm:"default:0" json:"currentIndex"`
	Status        SessionStatus   `gorm:"size:20;default:'questions_ready'" json:"status"`
	ReportID      *uint           `json:"reportId,omitempty"`
}

func (ScreeningSession) TableName() string {
	return "screening_sessions"
}

// Questions decodes the ordered question set.
func (s *ScreeningSession) Questions() ([]GeneratedQuestion, error) {
	var qs []GeneratedQuestion
	if len(s.QuestionsJSON) == 0 {
		return qs, nil
	}
	err := json.Unmarshal(s.QuestionsJSON, &qs)
	return qs, err
}

// Answers decodes the accumulated answers, index-aligned with Questions.
func (s *ScreeningSession) Answers() ([]string, error) {
	var as []string
	if len(s.AnswersJSON) == 0 {
		return as, nil
	}
	err := json.Unmarshal(s.AnswersJSON, &as)
	return as, err
}
