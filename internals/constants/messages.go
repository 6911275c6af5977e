package constants

// Setting keys stored in app_settings. The first two are mandatory; Load
// refuses to start an operation without them.
const (
	SettingSignatureFolderName = "SIGNATURE_FOLDER_NAME"
	SettingLogSheetName        = "LOG_SHEET_NAME"

	// Optional: notification gateway credentials. When absent, notification is
	// silently skipped and recording still succeeds.
	SettingGatewaySID   = "GATEWAY_SID"
	SettingGatewayToken = "GATEWAY_TOKEN"
	SettingGatewayFrom  = "GATEWAY_FROM"

	// Optional: folder name for generated reports (defaults below).
	SettingReportFolderName = "REPORT_FOLDER_NAME"
)

const DefaultReportFolderName = "reports"

// Oman country code, prefixed to recipient numbers that carry no
// international prefix of their own.
const DefaultCountryCode = "+968"

// Reference list keys (reference_lists table).
const (
	RefAbsentTeachers     = "absent_teachers"
	RefSubstituteTeachers = "substitute_teachers"
	RefPeriods            = "periods"
	RefClasses            = "classes"
)

// User-facing messages (Arabic). These are what the front-end shows; internal
// diagnostics live on the wrapped error, not here.
const (
	MsgAssignmentSaved  = "تم تسجيل حصة الاحتياط بنجاح"
	MsgSaveFailed       = "تعذر حفظ التسجيل، يرجى المحاولة مرة أخرى"
	MsgSignatureFailed  = "تعذر حفظ التوقيع، يرجى المحاولة مرة أخرى"
	MsgConfigIncomplete = "إعدادات النظام غير مكتملة، يرجى مراجعة مسؤول النظام"
	MsgNoData           = "لا توجد بيانات لإنشاء التقرير"
	MsgReportFailed     = "تعذر إنشاء التقرير، يرجى المحاولة مرة أخرى"
	MsgFetchFailed      = "تعذر تحميل البيانات، يرجى المحاولة مرة أخرى"
	MsgInvalidInput     = "البيانات المدخلة غير صحيحة"
	MsgReportReady      = "تم إنشاء التقرير بنجاح"
)

// ArabicWeekdays maps time.Weekday ordinals (Sunday=0) to the labels written
// into the ledger when the form leaves the weekday blank.
var ArabicWeekdays = [7]string{
	"الأحد",
	"الاثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}
