package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"ihtiyati_backend/internals/constants"
	"ihtiyati_backend/internals/features/school/assignments/dto"
	"ihtiyati_backend/internals/features/school/assignments/model"
	"ihtiyati_backend/internals/helpers/apperr"
)

// StatsService is the read-only side of the ledger: dropdown data, full
// snapshots, and the aggregates derived from them.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{DB: db} }

// DropdownData returns the reference lists and the teacher directory as
// stored: order preserved, blank entries dropped, no dedup beyond that.
func (s *StatsService) DropdownData(ctx context.Context) (dto.DropdownData, error) {
	var lists []model.ReferenceListModel
	if err := s.DB.WithContext(ctx).Find(&lists).Error; err != nil {
		return dto.DropdownData{}, apperr.Internal(constants.MsgFetchFailed,
			fmt.Errorf("load reference_lists: %w", err))
	}

	byKey := make(map[string][]string, len(lists))
	for _, l := range lists {
		byKey[l.ReferenceListKey] = dropBlanks(l.ReferenceListValues)
	}

	var teachers []model.TeacherModel
	if err := s.DB.WithContext(ctx).Order("teacher_name").Find(&teachers).Error; err != nil {
		return dto.DropdownData{}, apperr.Internal(constants.MsgFetchFailed,
			fmt.Errorf("load teachers: %w", err))
	}

	out := dto.DropdownData{
		AbsentTeachers:     byKey[constants.RefAbsentTeachers],
		SubstituteTeachers: byKey[constants.RefSubstituteTeachers],
		Periods:            byKey[constants.RefPeriods],
		Classes:            byKey[constants.RefClasses],
		Teachers:           make([]dto.TeacherInfo, 0, len(teachers)),
	}
	for _, t := range teachers {
		out.Teachers = append(out.Teachers, dto.TeacherInfo{
			Name:    t.TeacherName,
			Phone:   t.TeacherPhone,
			Subject: t.TeacherSubject,
		})
	}
	return out, nil
}

// LedgerSnapshot loads the whole ledger in insertion order, dates normalized
// to ISO calendar-date strings. No sorting beyond the row order.
func (s *StatsService) LedgerSnapshot(ctx context.Context) ([]dto.AssignmentRow, error) {
	var rows []model.SubstituteAssignmentModel
	if err := s.DB.WithContext(ctx).
		Order("substitute_assignment_id").
		Find(&rows).Error; err != nil {
		return nil, apperr.Internal(constants.MsgFetchFailed, fmt.Errorf("load ledger: %w", err))
	}
	return SnapshotFromModels(rows), nil
}

// SnapshotFromModels maps ledger models to read rows (ISO date strings).
func SnapshotFromModels(rows []model.SubstituteAssignmentModel) []dto.AssignmentRow {
	out := make([]dto.AssignmentRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AssignmentRow{
			ID:                r.SubstituteAssignmentID,
			Date:              time.Time(r.SubstituteAssignmentDate).Format("2006-01-02"),
			Weekday:           r.SubstituteAssignmentWeekday,
			Period:            r.SubstituteAssignmentPeriod,
			Class:             r.SubstituteAssignmentClass,
			Subject:           r.SubstituteAssignmentSubject,
			AbsentTeacher:     r.SubstituteAssignmentAbsentTeacher,
			SubstituteTeacher: r.SubstituteAssignmentSubstituteTeacher,
			Phone:             r.SubstituteAssignmentPhone,
			SignatureURL:      r.SubstituteAssignmentSignatureURL,
		})
	}
	return out
}

// TopSeventhPeriodSubstitute returns the substitute with the most rows whose
// period label contains "7". That is a substring match by policy, so "17"
// counts too — known quirk of how the school labels its reserve period, kept
// on purpose. Ties go to the teacher seen first in ledger order. With no
// matching rows it returns the ("none", 0) sentinel.
func TopSeventhPeriodSubstitute(rows []dto.AssignmentRow) dto.TeacherCount {
	counts := map[string]int{}
	var order []string

	for _, r := range rows {
		if !strings.Contains(r.Period, "7") {
			continue
		}
		if _, seen := counts[r.SubstituteTeacher]; !seen {
			order = append(order, r.SubstituteTeacher)
		}
		counts[r.SubstituteTeacher]++
	}

	top := dto.TeacherCount{SubstituteTeacher: "none", Count: 0}
	for _, name := range order {
		if counts[name] > top.Count {
			top = dto.TeacherCount{SubstituteTeacher: name, Count: counts[name]}
		}
	}
	return top
}

// TeacherFrequency counts substitute occurrences across the whole ledger and
// returns them sorted by count descending; equal counts keep first-seen
// order (stable sort over insertion order, not alphabetical).
func TeacherFrequency(rows []dto.AssignmentRow) []dto.TeacherCount {
	counts := map[string]int{}
	var order []string

	for _, r := range rows {
		if _, seen := counts[r.SubstituteTeacher]; !seen {
			order = append(order, r.SubstituteTeacher)
		}
		counts[r.SubstituteTeacher]++
	}

	out := make([]dto.TeacherCount, 0, len(order))
	for _, name := range order {
		out = append(out, dto.TeacherCount{SubstituteTeacher: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func dropBlanks(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
