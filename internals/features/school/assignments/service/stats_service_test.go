package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"ihtiyati_backend/internals/features/school/assignments/dto"
	"ihtiyati_backend/internals/features/school/assignments/model"
)

func row(period, sub string) dto.AssignmentRow {
	return dto.AssignmentRow{Period: period, SubstituteTeacher: sub}
}

func TestTopSeventhPeriodSubstitute(t *testing.T) {
	t.Parallel()

	t.Run("sentinel when nothing matches", func(t *testing.T) {
		rows := []dto.AssignmentRow{row("1", "A"), row("2", "B")}
		top := TopSeventhPeriodSubstitute(rows)
		require.Equal(t, "none", top.SubstituteTeacher)
		require.Equal(t, 0, top.Count)
	})

	t.Run("sentinel on empty ledger", func(t *testing.T) {
		top := TopSeventhPeriodSubstitute(nil)
		require.Equal(t, "none", top.SubstituteTeacher)
		require.Equal(t, 0, top.Count)
	})

	t.Run("counts period-7 rows", func(t *testing.T) {
		rows := []dto.AssignmentRow{row("7", "A"), row("7", "B"), row("7", "A")}
		top := TopSeventhPeriodSubstitute(rows)
		require.Equal(t, "A", top.SubstituteTeacher)
		require.Equal(t, 2, top.Count)
	})

	t.Run("substring policy also matches 17", func(t *testing.T) {
		rows := []dto.AssignmentRow{row("17", "C")}
		top := TopSeventhPeriodSubstitute(rows)
		require.Equal(t, "C", top.SubstituteTeacher)
		require.Equal(t, 1, top.Count)
	})

	t.Run("tie goes to first seen in ledger order", func(t *testing.T) {
		rows := []dto.AssignmentRow{row("7", "B"), row("7", "A"), row("7", "A"), row("7", "B")}
		top := TopSeventhPeriodSubstitute(rows)
		require.Equal(t, "B", top.SubstituteTeacher)
		require.Equal(t, 2, top.Count)
	})
}

func TestTeacherFrequency(t *testing.T) {
	t.Parallel()

	rows := []dto.AssignmentRow{
		row("1", "A"), row("7", "B"), row("2", "A"), row("3", "C"), row("4", "B"), row("5", "A"),
	}
	freq := TeacherFrequency(rows)

	// counts sum to the ledger length
	sum := 0
	for _, f := range freq {
		sum += f.Count
	}
	require.Equal(t, len(rows), sum)

	// sorted non-increasing
	for i := 1; i < len(freq); i++ {
		require.GreaterOrEqual(t, freq[i-1].Count, freq[i].Count)
	}

	require.Equal(t, "A", freq[0].SubstituteTeacher)
	require.Equal(t, 3, freq[0].Count)

	// tie between B and C? B has 2, C has 1 — but ties keep first-seen order:
	tied := []dto.AssignmentRow{row("1", "X"), row("2", "Y"), row("3", "Y"), row("4", "X")}
	tf := TeacherFrequency(tied)
	require.Equal(t, "X", tf[0].SubstituteTeacher)
	require.Equal(t, "Y", tf[1].SubstituteTeacher)
}

func TestSnapshotFromModels(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	rows := SnapshotFromModels([]model.SubstituteAssignmentModel{
		{
			SubstituteAssignmentID:                3,
			SubstituteAssignmentDate:              datatypes.Date(d),
			SubstituteAssignmentWeekday:           "الخميس",
			SubstituteAssignmentPeriod:            "7",
			SubstituteAssignmentClass:             "5/1",
			SubstituteAssignmentSubject:           "رياضيات",
			SubstituteAssignmentAbsentTeacher:     "A",
			SubstituteAssignmentSubstituteTeacher: "B",
			SubstituteAssignmentPhone:             "99123456",
			SubstituteAssignmentSignatureURL:      "https://bucket.example/signatures/x.webp",
		},
	})
	require.Len(t, rows, 1)
	require.Equal(t, "2026-08-27", rows[0].Date)
	require.Equal(t, uint(3), rows[0].ID)
	require.Equal(t, "B", rows[0].SubstituteTeacher)
}

func TestDropBlanks(t *testing.T) {
	t.Parallel()

	out := dropBlanks([]string{"7", "", "  ", "8", "7"})
	// order preserved as stored; no dedup beyond blank removal
	require.Equal(t, []string{"7", "8", "7"}, out)
}
