package model

import "encoding/json"

// Report is the persisted outcome of a completed screening. Rows are
// written exactly once, after every question has an answer, and never
// updated.
// swagger:model Report
type Report struct {
	BaseModel
	CandidateName  string          `gorm:"size:255;not null" json:"candidateName"`
	Email          string          `gorm:"size:255" json:"email"`
	Role           string          `gorm:"size:255;not null" json:"role"`
	SummaryText    string          `gorm:"type:text" json:"summaryText"`
	ReportText     string          `gorm:"type:text;not null" json:"reportText"`
	Source         string          `gorm:"size:10" json:"source"` // live or mock
	TranscriptJSON json.RawMessage `gorm:"type:json" json:"-"`
	QuestionCount  int             `gorm:"default:0" json:"questionCount"`
}

func (Report) TableName() string {
	return "reports"
}

// Transcript decodes the ordered question/answer pairs.
func (r *Report) Transcript() ([]TranscriptEntry, error) {
	var ts []TranscriptEntry
	if len(r.TranscriptJSON) == 0 {
		return ts, nil
	}
	err := json.Unmarshal(r.TranscriptJSON, &ts)
	return ts, err
}
