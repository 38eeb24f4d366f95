package repository

import (
	"encoding/json"

	"talentscout_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.ScreeningSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id string) (*model.ScreeningSession, error) {
	var session model.ScreeningSession
	err := r.DB.Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// AppendAnswer stores the answer set and advances the cursor in one update.
func (r *SessionRepository) AppendAnswer(session *model.ScreeningSession, answers []string, nextIndex int) error {
	raw, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	session.AnswersJSON = raw
	session.CurrentIndex = nextIndex
	session.Status = model.StatusAnswering
	return r.DB.Model(session).Updates(map[string]interface{}{
		"answers_json":  session.AnswersJSON,
		"current_index": session.CurrentIndex,
		"status":        session.Status,
	}).Error
}

// CompleteWithReport inserts the report and marks the session completed in
// one transaction, so a failed completion never leaves an orphaned report
// row behind.
func (r *SessionRepository) CompleteWithReport(session *model.ScreeningSession, report *model.Report) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		return tx.Model(session).Updates(map[string]interface{}{
			"status":    model.StatusCompleted,
			"report_id": report.ID,
		}).Error
	})
	if err != nil {
		return err
	}
	session.Status = model.StatusCompleted
	session.ReportID = &report.ID
	return nil
}
