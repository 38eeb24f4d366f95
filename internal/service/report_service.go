package service

import (
	"errors"
	"time"

	"talentscout_backend/internal/model"
	"talentscout_backend/internal/repository"
	"talentscout_backend/internal/util"

	"gorm.io/gorm"
)

// ReportService is the admin console's read-only view over stored reports.
type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

func (s *ReportService) List(limit int) ([]repository.ReportSummary, error) {
	return s.Repo.List(limit)
}

// ReportDetail carries the full report with the transcript decoded.
// swagger:model ReportDetail
type ReportDetail struct {
	ID            uint                    `json:"id"`
	CandidateName string                  `json:"candidateName"`
	Email         string                  `json:"email"`
	Role          string                  `json:"role"`
	SummaryText   string                  `json:"summaryText"`
	ReportText    string                  `json:"reportText"`
	Source        string                  `json:"source"`
	Transcript    []model.TranscriptEntry `json:"transcript"`
	CreatedAt     time.Time               `json:"createdAt"`
}

func (s *ReportService) Detail(id uint) (*ReportDetail, error) {
	report, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrReportNotFound
		}
		return nil, err
	}

	transcript, err := report.Transcript()
	if err != nil {
		return nil, err
	}

	return &ReportDetail{
		ID:            report.ID,
		CandidateName: report.CandidateName,
		Email:         report.Email,
		Role:          report.Role,
		SummaryText:   report.SummaryText,
		ReportText:    report.ReportText,
		Source:        report.Source,
		Transcript:    transcript,
		CreatedAt:     report.CreatedAt,
	}, nil
}
