package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"ihtiyati_backend/internals/configs"
	"ihtiyati_backend/internals/constants"
	"ihtiyati_backend/internals/features/school/assignments/dto"
	assignments "ihtiyati_backend/internals/features/school/assignments/service"
	"ihtiyati_backend/internals/helpers/apperr"
	helper "ihtiyati_backend/internals/helpers/oss"
)

const (
	KindToday = "today"
	KindMonth = "month"
)

// ReportService renders a filtered ledger view into a PDF and drops it in the
// report folder. The document is a byproduct: the service never reads it
// back; the returned URL is the only handle.
type ReportService struct {
	DB   *gorm.DB
	Blob helper.BlobService
}

func NewReportService(db *gorm.DB, blob helper.BlobService) *ReportService {
	return &ReportService{DB: db, Blob: blob}
}

// Generate filters the ledger by kind (calendar-local, not elapsed time),
// renders the PDF and uploads it into targetFolderID. An empty filtered set
// — whether the ledger has no rows at all or just none in range — is the
// single "no data" outcome.
func (s *ReportService) Generate(ctx context.Context, kind, targetFolderID, title string, now time.Time) (string, error) {
	if kind != KindToday && kind != KindMonth {
		return "", apperr.Internal(constants.MsgInvalidInput, fmt.Errorf("unknown report kind %q", kind))
	}

	stats := assignments.NewStatsService(s.DB)
	rows, err := stats.LedgerSnapshot(ctx)
	if err != nil {
		return "", err
	}

	filtered := FilterByKind(rows, kind, now)
	if len(filtered) == 0 {
		cause := fmt.Errorf("no ledger rows in %s window", kind)
		if len(rows) == 0 {
			cause = fmt.Errorf("ledger is empty")
		}
		return "", apperr.EmptyReport(constants.MsgNoData, cause)
	}

	body, err := renderPDF(title, filtered)
	if err != nil {
		return "", apperr.Storage(constants.MsgReportFailed, fmt.Errorf("render report: %w", err))
	}

	name := fmt.Sprintf("substitute_report_%s_%s.pdf", kind, now.Format("20060102_150405"))
	key, url, err := s.Blob.Upload(ctx, targetFolderID, name, "application/pdf", body)
	if err != nil {
		return "", apperr.Storage(constants.MsgReportFailed, fmt.Errorf("upload report: %w", err))
	}

	if err := s.Blob.SetPublicRead(ctx, key); err != nil {
		log.Printf("[REPORT] ⚠️ set public-read on %s failed: %v", key, err)
	}
	return url, nil
}

// FilterByKind keeps rows whose ISO date falls on the current calendar day
// (today) or inside the current calendar month (month). Comparison is on the
// date strings, so it is calendar-local by construction.
func FilterByKind(rows []dto.AssignmentRow, kind string, now time.Time) []dto.AssignmentRow {
	var prefix string
	switch kind {
	case KindToday:
		prefix = now.Format("2006-01-02")
	case KindMonth:
		prefix = now.Format("2006-01")
	default:
		return nil
	}

	out := make([]dto.AssignmentRow, 0, len(rows))
	for _, r := range rows {
		if strings.HasPrefix(r.Date, prefix) {
			out = append(out, r)
		}
	}
	return out
}

func renderPDF(title string, rows []dto.AssignmentRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")

	// Core PDF fonts are Latin-only; teacher/class names are Arabic, so a
	// UTF-8 TTF is loaded when configured.
	font := "Helvetica"
	if path := configs.ReportFontPath; path != "" {
		pdf.AddUTF8Font("report", "", path)
		font = "report"
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Date", "Period", "Class", "Absent", "Substitute", "Signature"}
	widths := []float64{24, 14, 20, 42, 42, 48}

	pdf.SetFont(font, "", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	for _, r := range rows {
		cells := []string{
			r.Date,
			r.Period,
			r.Class,
			r.AbsentTeacher,
			r.SubstituteTeacher,
			tailOf(r.SignatureURL, 34),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tailOf keeps the last n chars of a URL so the object name stays readable
// inside a narrow cell.
func tailOf(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n:]
}
