package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"ihtiyati_backend/internals/constants"
	"ihtiyati_backend/internals/features/school/settings/model"
	"ihtiyati_backend/internals/helpers/apperr"
)

// BlobFolderProvisioner is the slice of the blob provider Load needs.
type BlobFolderProvisioner interface {
	EnsureFolder(ctx context.Context, name string) (folderID string, err error)
	SetFolderPublicRead(ctx context.Context, folderID string) error
}

// Settings is an immutable per-request snapshot of app_settings plus the
// resolved signature folder. Build it once with Load and pass it down; there
// is deliberately no package-level cache (each request is its own execution,
// and the folder resolution is a cheap idempotent lookup).
type Settings struct {
	values          map[string]string
	StorageFolderID string
}

func (s Settings) Get(key string) string { return s.values[key] }

func (s Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

var mandatoryKeys = []string{
	constants.SettingSignatureFolderName,
	constants.SettingLogSheetName,
}

// Load reads the whole settings table, validates the mandatory keys and
// provisions the signature folder. Either everything is populated or an
// error comes back before any consumer sees a partial snapshot.
func Load(ctx context.Context, db *gorm.DB, blob BlobFolderProvisioner) (Settings, error) {
	var rows []model.AppSettingModel
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return Settings{}, apperr.Configuration(constants.MsgConfigIncomplete,
			fmt.Errorf("load app_settings: %w", err))
	}

	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r.AppSettingKey] = r.AppSettingValue
	}

	for _, key := range mandatoryKeys {
		if values[key] == "" {
			return Settings{}, apperr.Configuration(constants.MsgConfigIncomplete,
				fmt.Errorf("mandatory setting %q missing", key))
		}
	}

	folderID, err := blob.EnsureFolder(ctx, values[constants.SettingSignatureFolderName])
	if err != nil {
		return Settings{}, apperr.Storage(constants.MsgConfigIncomplete,
			fmt.Errorf("provision signature folder: %w", err))
	}

	// visibility is advisory: a private folder still stores signatures
	if err := blob.SetFolderPublicRead(ctx, folderID); err != nil {
		log.Printf("[SETTINGS] ⚠️ set public-read on %s failed: %v", folderID, err)
	}

	return Settings{values: values, StorageFolderID: folderID}, nil
}
