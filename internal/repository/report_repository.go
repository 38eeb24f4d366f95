package repository

import (
	"time"

	"talentscout_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Insert(report *model.Report) error {
	return r.DB.Create(report).Error
}

// ReportSummary is the listing projection; the transcript and full report
// text stay in the detail view.
type ReportSummary struct {
	ID            uint      `json:"id"`
	CandidateName string    `json:"candidateName"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Source        string    `json:"source"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// List returns report summaries, most recent first.
func (r *ReportRepository) List(limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	var summaries []ReportSummary
	err := r.DB.Model(&model.Report{}).
		Select("id", "candidate_name", "email", "role", "source", "question_count", "created_at").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

func (r *ReportRepository) FindByID(id uint) (*model.Report, error) {
	var report model.Report
	err := r.DB.First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
