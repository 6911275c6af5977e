// file: internals/features/school/assignments/dto/assignment_dto.go
package dto

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Submit (JSON) — one form submission = one ledger row
type SubmitAssignmentRequest struct {
	AssignmentDate    string `json:"assignment_date"    validate:"required,datetime=2006-01-02"`
	AssignmentWeekday string `json:"assignment_weekday" validate:"omitempty,max=20"` // derived from the date when blank
	AssignmentPeriod  string `json:"assignment_period"  validate:"required,max=20"`
	AssignmentClass   string `json:"assignment_class"   validate:"required,max=50"`
	AssignmentSubject string `json:"assignment_subject" validate:"required,max=100"`

	AbsentTeacher     string `json:"absent_teacher"     validate:"required,max=100"`
	SubstituteTeacher string `json:"substitute_teacher" validate:"required,max=100"`
	PhoneNumber       string `json:"phone_number"       validate:"omitempty,max=20"`

	// base64 image (raw or data URL) captured from the signature pad
	SignatureData string `json:"signature_data" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type SubmitAssignmentResponse struct {
	SignatureURL string `json:"signature_url"`
}

// AssignmentRow is one ledger row as the read side serves it: date already
// normalized to an ISO calendar-date string, rows in insertion order.
type AssignmentRow struct {
	ID                uint   `json:"id"`
	Date              string `json:"date"` // YYYY-MM-DD
	Weekday           string `json:"weekday"`
	Period            string `json:"period"`
	Class             string `json:"class"`
	Subject           string `json:"subject"`
	AbsentTeacher     string `json:"absent_teacher"`
	SubstituteTeacher string `json:"substitute_teacher"`
	Phone             string `json:"phone"`
	SignatureURL      string `json:"signature_url"`
}

type TeacherInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
}

// DropdownData feeds the form's select inputs; lists keep stored order with
// blank entries dropped.
type DropdownData struct {
	AbsentTeachers     []string      `json:"absent_teachers"`
	SubstituteTeachers []string      `json:"substitute_teachers"`
	Periods            []string      `json:"periods"`
	Classes            []string      `json:"classes"`
	Teachers           []TeacherInfo `json:"teachers"`
}

type TeacherCount struct {
	SubstituteTeacher string `json:"substitute_teacher"`
	Count             int    `json:"count"`
}

type TeacherStatsResponse struct {
	Frequency     []TeacherCount `json:"frequency"`
	TopSubstitute TeacherCount   `json:"top_substitute"`
	LedgerSize    int            `json:"ledger_size"`
}
