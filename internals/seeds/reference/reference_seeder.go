package reference

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"ihtiyati_backend/internals/constants"
	assignmentModel "ihtiyati_backend/internals/features/school/assignments/model"
	settingModel "ihtiyati_backend/internals/features/school/settings/model"
)

// SeedDefaultSettings inserts the mandatory keys with sensible defaults when
// they are missing; existing values are never overwritten.
func SeedDefaultSettings(db *gorm.DB) {
	defaults := map[string]string{
		constants.SettingSignatureFolderName: "signatures",
		constants.SettingLogSheetName:        "سجل حصص الاحتياط",
		constants.SettingReportFolderName:    constants.DefaultReportFolderName,
	}

	for key, value := range defaults {
		var existing settingModel.AppSettingModel
		if err := db.Where("app_setting_key = ?", key).First(&existing).Error; err == nil {
			log.Printf("ℹ️ setting %s already present, skipping...", key)
			continue
		}
		if err := db.Create(&settingModel.AppSettingModel{
			AppSettingKey:   key,
			AppSettingValue: value,
		}).Error; err != nil {
			log.Fatalf("❌ seed setting %s failed: %v", key, err)
		}
		log.Printf("✅ setting %s seeded", key)
	}
}

type referenceListSeed struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

func SeedReferenceListsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ read JSON file failed: %v", err)
	}

	var lists []referenceListSeed
	if err := json.Unmarshal(file, &lists); err != nil {
		log.Fatalf("❌ decode JSON failed: %v", err)
	}

	for _, l := range lists {
		var existing assignmentModel.ReferenceListModel
		if err := db.Where("reference_list_key = ?", l.Key).First(&existing).Error; err == nil {
			log.Printf("ℹ️ reference list %s already present, skipping...", l.Key)
			continue
		}
		if err := db.Create(&assignmentModel.ReferenceListModel{
			ReferenceListKey:    l.Key,
			ReferenceListValues: pq.StringArray(l.Values),
		}).Error; err != nil {
			log.Fatalf("❌ seed reference list %s failed: %v", l.Key, err)
		}
		log.Printf("✅ reference list %s seeded (%d values)", l.Key, len(l.Values))
	}
}

type teacherSeed struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
}

func SeedTeachersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ read JSON file failed: %v", err)
	}

	var teachers []teacherSeed
	if err := json.Unmarshal(file, &teachers); err != nil {
		log.Fatalf("❌ decode JSON failed: %v", err)
	}

	for _, t := range teachers {
		var existing assignmentModel.TeacherModel
		if err := db.Where("teacher_name = ?", t.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ teacher %s already present, skipping...", t.Name)
			continue
		}
		if err := db.Create(&assignmentModel.TeacherModel{
			TeacherName:    t.Name,
			TeacherPhone:   t.Phone,
			TeacherSubject: t.Subject,
		}).Error; err != nil {
			log.Fatalf("❌ seed teacher %s failed: %v", t.Name, err)
		}
		log.Printf("✅ teacher %s seeded", t.Name)
	}
}
