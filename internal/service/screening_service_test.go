package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"talentscout_backend/internal/config"
	"talentscout_backend/internal/model"
	"talentscout_backend/internal/repository"
	"talentscout_backend/internal/util"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AdminUser{}, &model.ScreeningSession{}, &model.Report{}))
	return db
}

func newScreeningService(t *testing.T, db *gorm.DB, questionCount int) *ScreeningService {
	t.Helper()
	return NewScreeningService(
		repository.NewSessionRepository(db),
		NewExtractionService(),
		NewGenerationService(config.AIConfig{}), // mock mode
		questionCount,
	)
}

func TestFullMockFlowPersistsReport(t *testing.T) {
	db := newTestDB(t)
	svc := newScreeningService(t, db, 3)
	ctx := context.Background()

	view, err := svc.Start(ctx, StartScreeningRequest{
		CandidateName: "Jane Doe",
		Email:         "jane@example.com",
		Role:          "Backend Engineer",
		CVText:        "Ten years of Go, Postgres and Kubernetes.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusQuestionsReady, view.Status)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 0, view.Index)
	assert.NotEmpty(t, view.Question)

	expected := MockQuestions("Backend Engineer", 3)

	for i := 0; i < 3; i++ {
		view, err = svc.SubmitAnswer(ctx, view.SessionID, fmt.Sprintf("answer %d", i+1))
		require.NoError(t, err)
	}

	assert.Equal(t, model.StatusCompleted, view.Status)
	require.NotNil(t, view.ReportID)

	report, err := repository.NewReportRepository(db).FindByID(*view.ReportID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", report.CandidateName)
	assert.Equal(t, "Backend Engineer", report.Role)
	assert.Equal(t, string(SourceMock), report.Source)
	assert.Equal(t, 3, report.QuestionCount)
	assert.Equal(t, MockReport("Jane Doe", "Backend Engineer"), report.ReportText)

	transcript, err := report.Transcript()
	require.NoError(t, err)
	require.Len(t, transcript, 3)
	for i, entry := range transcript {
		assert.Equal(t, expected[i].Text, entry.Question)
		assert.Equal(t, expected[i].Category, entry.Category)
		assert.Equal(t, fmt.Sprintf("answer %d", i+1), entry.Answer)
	}
}

func TestNoReportBeforeAllAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newScreeningService(t, db, 3)
	ctx := context.Background()

	view, err := svc.Start(ctx, StartScreeningRequest{
		CandidateName: "Jane Doe",
		Email:         "jane@example.com",
		Role:          "Backend Engineer",
		CVText:        "Go and Postgres.",
	})
	require.NoError(t, err)

	// Two of three answers: no report row may exist yet.
	for i := 0; i < 2; i++ {
		view, err = svc.SubmitAnswer(ctx, view.SessionID, "partial answer")
		require.NoError(t, err)
	}

	assert.Equal(t, model.StatusAnswering, view.Status)
	assert.Nil(t, view.ReportID)

	var count int64
	require.NoError(t, db.Model(&model.Report{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestEmptyAnswerRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newScreeningService(t, db, 3)
	ctx := context.Background()

	view, err := svc.Start(ctx, StartScreeningRequest{
		CandidateName: "Jane Doe",
		Email:         "jane@example.com",
		Role:          "Backend Engineer",
		CVText:        "Go.",
	})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, view.SessionID, "   ")
	assert.ErrorIs(t, err, util.ErrEmptyAnswer)

	// The rejected submission must not advance the session.
	current, err := svc.Get(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Index)
}

func TestAnswerAfterCompletionConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newScreeningService(t, db, 2)
	ctx := context.Background()

	view, err := svc.Start(ctx, StartScreeningRequest{
		CandidateName: "Jane Doe",
		Email:         "jane@example.com",
		Role:          "Backend Engineer",
		CVText:        "Go.",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		view, err = svc.SubmitAnswer(ctx, view.SessionID, "done")
		require.NoError(t, err)
	}
	require.Equal(t, model.StatusCompleted, view.Status)

	_, err = svc.SubmitAnswer(ctx, view.SessionID, "one more")
	assert.ErrorIs(t, err, util.ErrSessionCompleted)

	var count int64
	require.NoError(t, db.Model(&model.Report{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnknownSessionNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newScreeningService(t, db, 3)

	_, err := svc.Get("no-such-session")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = svc.SubmitAnswer(context.Background(), "no-such-session", "answer")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

// A failed completion write must roll back the report insert; retrying the
// final submission then produces exactly one report row.
func TestFailedCompletionWriteKeepsSingleReport(t *testing.T) {
	db := newTestDB(t)
	svc := newScreeningService(t, db, 2)
	ctx := context.Background()

	// Fail the next session-completion update. The report_id key marks it;
	// answer appends touch the same table but never set that column.
	failures := 1
	err := db.Callback().Update().Before("gorm:update").Register("fail_completion_once", func(tx *gorm.DB) {
		if failures <= 0 {
			return
		}
		if dest, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			if _, has := dest["report_id"]; has {
				failures--
				tx.AddError(errors.New("simulated write failure"))
			}
		}
	})
	require.NoError(t, err)

	view, err := svc.Start(ctx, StartScreeningRequest{
		CandidateName: "Jane Doe",
		Email:         "jane@example.com",
		Role:          "Backend Engineer",
		CVText:        "Go.",
	})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, view.SessionID, "first")
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, view.SessionID, "second")
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Report{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "rolled-back completion must not leave a report behind")

	view, err = svc.SubmitAnswer(ctx, view.SessionID, "second again")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, view.Status)
	require.NotNil(t, view.ReportID)

	require.NoError(t, db.Model(&model.Report{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "report persisted exactly once per session")
}

// An upload with no extractable text still starts a session, on the
// placeholder summary path.
func TestStartWithUnextractableCVProceeds(t *testing.T) {
	db := newTestDB(t)
	svc := newScreeningService(t, db, 3)

	view, err := svc.Start(context.Background(), StartScreeningRequest{
		CandidateName: "Jane Doe",
		Email:         "jane@example.com",
		Role:          "Backend Engineer",
		Filename:      "scan.pdf",
		File:          strings.NewReader(""),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, MockSummary("Jane Doe", "Backend Engineer"), view.Summary)

	session, err := repository.NewSessionRepository(db).FindByID(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, string(SourceMock), session.SummarySource)
	assert.Empty(t, session.CVText)
}
