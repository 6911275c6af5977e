package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherModel is the read-only teacher directory (name → phone + subject).
// Lifecycle is independent from the ledger; rows come from the seeder or an
// admin import, never from form submissions.
type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	TeacherName    string `gorm:"not null;uniqueIndex;column:teacher_name" json:"teacher_name"`
	TeacherPhone   string `gorm:"column:teacher_phone"                     json:"teacher_phone"`
	TeacherSubject string `gorm:"column:teacher_subject"                   json:"teacher_subject"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
