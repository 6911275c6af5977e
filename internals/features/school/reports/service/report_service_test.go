package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ihtiyati_backend/internals/features/school/assignments/dto"
	"ihtiyati_backend/internals/features/school/assignments/model"
	"ihtiyati_backend/internals/helpers/apperr"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.SubstituteAssignmentModel{}))
	return db
}

func appendRow(t *testing.T, db *gorm.DB, date time.Time, sub string) {
	t.Helper()
	require.NoError(t, db.Create(&model.SubstituteAssignmentModel{
		SubstituteAssignmentDate:              datatypes.Date(date),
		SubstituteAssignmentWeekday:           "Mon",
		SubstituteAssignmentPeriod:            "3",
		SubstituteAssignmentClass:             "5/1",
		SubstituteAssignmentSubject:           "Math",
		SubstituteAssignmentAbsentTeacher:     "A",
		SubstituteAssignmentSubstituteTeacher: sub,
		SubstituteAssignmentSignatureURL:      "https://bucket.example/signatures/x.webp",
	}).Error)
}

type fakeBlob struct {
	uploads map[string][]byte
	aclErr  error
}

func newFakeBlob() *fakeBlob { return &fakeBlob{uploads: map[string][]byte{}} }

func (f *fakeBlob) EnsureFolder(_ context.Context, name string) (string, error) {
	return name + "/", nil
}
func (f *fakeBlob) SetFolderPublicRead(context.Context, string) error { return nil }
func (f *fakeBlob) Upload(_ context.Context, folderID, fileName, _ string, body []byte) (string, string, error) {
	key := folderID + fileName
	f.uploads[key] = body
	return key, "https://bucket.example/" + key, nil
}
func (f *fakeBlob) SetPublicRead(context.Context, string) error { return f.aclErr }

func TestFilterByKind(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 27, 15, 4, 5, 0, time.Local)
	rows := []dto.AssignmentRow{
		{ID: 1, Date: "2026-08-27"},
		{ID: 2, Date: "2026-08-01"},
		{ID: 3, Date: "2026-07-27"},
		{ID: 4, Date: "2026-08-27"},
	}

	today := FilterByKind(rows, KindToday, now)
	require.Len(t, today, 2)
	require.Equal(t, uint(1), today[0].ID)
	require.Equal(t, uint(4), today[1].ID) // ledger order preserved

	month := FilterByKind(rows, KindMonth, now)
	require.Len(t, month, 3)

	require.Nil(t, FilterByKind(rows, "week", now))
}

func TestGenerateEmptyLedgerIsNoData(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newFakeBlob())

	_, err := svc.Generate(context.Background(), KindToday, "reports/", "ledger — 2026-08-27", time.Now())
	require.Error(t, err)
	require.Equal(t, apperr.KindEmptyReport, apperr.KindOf(err))
}

func TestGenerateNothingInWindowIsNoData(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.Local)
	appendRow(t, db, now.AddDate(0, -2, 0), "B") // two months back

	svc := NewReportService(db, newFakeBlob())
	_, err := svc.Generate(context.Background(), KindMonth, "reports/", "ledger — 2026-08", now)
	require.Error(t, err)
	require.Equal(t, apperr.KindEmptyReport, apperr.KindOf(err))
}

func TestGenerateUploadsRenderedReport(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.Local)
	appendRow(t, db, now, "B")
	appendRow(t, db, now.AddDate(0, 0, -3), "C") // this month, not today

	blob := newFakeBlob()
	svc := NewReportService(db, blob)

	url, err := svc.Generate(context.Background(), KindMonth, "reports/", "ledger — 2026-08", now)
	require.NoError(t, err)
	require.Contains(t, url, "reports/substitute_report_month_")
	require.Len(t, blob.uploads, 1)
	for _, body := range blob.uploads {
		require.NotEmpty(t, body)
		require.Equal(t, "%PDF", string(body[:4]))
	}
}

func TestGenerateACLFailureIsAdvisory(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.Local)
	appendRow(t, db, now, "B")

	blob := newFakeBlob()
	blob.aclErr = errors.New("acl denied")
	svc := NewReportService(db, blob)

	url, err := svc.Generate(context.Background(), KindToday, "reports/", "ledger — 2026-08-27", now)
	require.NoError(t, err)
	require.NotEmpty(t, url)
}

func TestGenerateRejectsUnknownKind(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newFakeBlob())

	_, err := svc.Generate(context.Background(), "week", "reports/", "ledger", time.Now())
	require.Error(t, err)
	require.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}
