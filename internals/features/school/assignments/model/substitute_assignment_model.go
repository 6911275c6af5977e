package model

import (
	"time"

	"gorm.io/datatypes"
)

// SubstituteAssignmentModel is one ledger row. The ledger is append-only:
// rows are never updated or deleted, and the auto-increment id is the
// canonical insertion order. Column order mirrors the nine fields the form
// submits: date, weekday, period, class, subject, absent teacher, substitute
// teacher, phone, signature.
type SubstituteAssignmentModel struct {
	SubstituteAssignmentID uint `gorm:"primaryKey;autoIncrement;column:substitute_assignment_id" json:"substitute_assignment_id"`

	SubstituteAssignmentDate    datatypes.Date `gorm:"type:date;not null;column:substitute_assignment_date" json:"substitute_assignment_date"`
	SubstituteAssignmentWeekday string         `gorm:"not null;column:substitute_assignment_weekday"         json:"substitute_assignment_weekday"`
	SubstituteAssignmentPeriod  string         `gorm:"not null;column:substitute_assignment_period"          json:"substitute_assignment_period"`
	SubstituteAssignmentClass   string         `gorm:"not null;column:substitute_assignment_class"           json:"substitute_assignment_class"`
	SubstituteAssignmentSubject string         `gorm:"not null;column:substitute_assignment_subject"         json:"substitute_assignment_subject"`

	SubstituteAssignmentAbsentTeacher     string `gorm:"not null;column:substitute_assignment_absent_teacher"     json:"substitute_assignment_absent_teacher"`
	SubstituteAssignmentSubstituteTeacher string `gorm:"not null;column:substitute_assignment_substitute_teacher" json:"substitute_assignment_substitute_teacher"`
	SubstituteAssignmentPhone             string `gorm:"column:substitute_assignment_phone"                       json:"substitute_assignment_phone"`

	SubstituteAssignmentSignatureURL string `gorm:"not null;column:substitute_assignment_signature_url" json:"substitute_assignment_signature_url"`

	SubstituteAssignmentCreatedAt time.Time `gorm:"column:substitute_assignment_created_at;autoCreateTime" json:"substitute_assignment_created_at"`
}

func (SubstituteAssignmentModel) TableName() string { return "substitute_assignments" }
