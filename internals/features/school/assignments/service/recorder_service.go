package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ihtiyati_backend/internals/constants"
	"ihtiyati_backend/internals/features/school/assignments/dto"
	"ihtiyati_backend/internals/features/school/assignments/model"
	notify "ihtiyati_backend/internals/features/school/notifications/service"
	settings "ihtiyati_backend/internals/features/school/settings/service"
	"ihtiyati_backend/internals/helpers/apperr"
	helper "ihtiyati_backend/internals/helpers/oss"
)

// RecorderService appends assignments to the ledger. One submission = one
// row, never mutated afterwards.
type RecorderService struct {
	DB   *gorm.DB
	Blob helper.BlobService

	// Sender overrides the settings-built gateway (tests); nil means build
	// one per request from the loaded settings.
	Sender notify.Sender
}

func NewRecorderService(db *gorm.DB, blob helper.BlobService) *RecorderService {
	return &RecorderService{DB: db, Blob: blob}
}

// Record runs the submission pipeline:
//  1. load settings (folder provisioning included),
//  2. persist the signature image — a failure here aborts the call,
//  3. append the ledger row — the durability point,
//  4. notify the substitute teacher — never changes the outcome.
func (s *RecorderService) Record(ctx context.Context, req dto.SubmitAssignmentRequest) (dto.SubmitAssignmentResponse, error) {
	st, err := settings.Load(ctx, s.DB, s.Blob)
	if err != nil {
		return dto.SubmitAssignmentResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.AssignmentDate)
	if err != nil {
		return dto.SubmitAssignmentResponse{}, apperr.Internal(constants.MsgInvalidInput,
			fmt.Errorf("parse assignment date %q: %w", req.AssignmentDate, err))
	}

	weekday := strings.TrimSpace(req.AssignmentWeekday)
	if weekday == "" {
		weekday = constants.ArabicWeekdays[int(date.Weekday())]
	}

	sigURL, err := s.saveSignature(ctx, st.StorageFolderID, req.SubstituteTeacher, req.SignatureData)
	if err != nil {
		return dto.SubmitAssignmentResponse{}, err
	}

	row := model.SubstituteAssignmentModel{
		SubstituteAssignmentDate:              datatypes.Date(date),
		SubstituteAssignmentWeekday:           weekday,
		SubstituteAssignmentPeriod:            req.AssignmentPeriod,
		SubstituteAssignmentClass:             req.AssignmentClass,
		SubstituteAssignmentSubject:           req.AssignmentSubject,
		SubstituteAssignmentAbsentTeacher:     req.AbsentTeacher,
		SubstituteAssignmentSubstituteTeacher: req.SubstituteTeacher,
		SubstituteAssignmentPhone:             req.PhoneNumber,
		SubstituteAssignmentSignatureURL:      sigURL,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return dto.SubmitAssignmentResponse{}, apperr.Storage(constants.MsgSaveFailed,
			fmt.Errorf("append ledger row: %w", err))
	}

	// Row is durable from here on; the notification outcome is logged only.
	sender := s.Sender
	if sender == nil {
		sender = notify.NewGatewayFromSettings(st)
	}
	if err := sender.Send(ctx, notify.Message{
		To:                req.PhoneNumber,
		Period:            req.AssignmentPeriod,
		Class:             req.AssignmentClass,
		Subject:           req.AssignmentSubject,
		SubstituteTeacher: req.SubstituteTeacher,
	}); err != nil {
		log.Printf("[NOTIFY] ⚠️ notification failed (row %d recorded anyway): %v", row.SubstituteAssignmentID, err)
	}

	return dto.SubmitAssignmentResponse{SignatureURL: sigURL}, nil
}

// saveSignature decodes the base64 payload, re-encodes to webp and uploads it
// under the provisioned folder. Upload failure is fatal to the submission;
// the public-read ACL is advisory.
func (s *RecorderService) saveSignature(ctx context.Context, folderID, teacher, payload string) (string, error) {
	raw, err := helper.DecodeBase64Image(payload)
	if err != nil {
		return "", apperr.Storage(constants.MsgSignatureFailed, fmt.Errorf("signature payload: %w", err))
	}

	webpData, err := helper.ConvertSignatureToWebP(raw)
	if err != nil {
		return "", apperr.Storage(constants.MsgSignatureFailed, fmt.Errorf("signature re-encode: %w", err))
	}

	name := signatureFileName(teacher, time.Now())
	key, url, err := s.Blob.Upload(ctx, folderID, name, "image/webp", webpData)
	if err != nil {
		return "", apperr.Storage(constants.MsgSignatureFailed, fmt.Errorf("signature upload: %w", err))
	}

	if err := s.Blob.SetPublicRead(ctx, key); err != nil {
		log.Printf("[SIGNATURE] ⚠️ set public-read on %s failed: %v", key, err)
	}
	return url, nil
}

// signatureFileName is deterministic for a given teacher + timestamp, so a
// retried upload of the same submission lands on the same key.
func signatureFileName(teacher string, at time.Time) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '_'
		}
		return r
	}, strings.TrimSpace(teacher))
	return fmt.Sprintf("signature_%s_%s.webp", safe, at.Format("20060102_150405"))
}
