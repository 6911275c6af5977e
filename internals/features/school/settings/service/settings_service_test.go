package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ihtiyati_backend/internals/constants"
	"ihtiyati_backend/internals/features/school/settings/model"
	"ihtiyati_backend/internals/helpers/apperr"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.AppSettingModel{}))
	return db
}

func put(t *testing.T, db *gorm.DB, key, value string) {
	t.Helper()
	require.NoError(t, db.Create(&model.AppSettingModel{
		AppSettingKey: key, AppSettingValue: value,
	}).Error)
}

type fakeProvisioner struct {
	ensureCalls int
	aclCalls    int
	aclErr      error
}

func (f *fakeProvisioner) EnsureFolder(_ context.Context, name string) (string, error) {
	f.ensureCalls++
	return name + "/", nil
}

func (f *fakeProvisioner) SetFolderPublicRead(context.Context, string) error {
	f.aclCalls++
	return f.aclErr
}

func TestLoadReturnsSnapshot(t *testing.T) {
	db := newTestDB(t)
	put(t, db, constants.SettingSignatureFolderName, "signatures")
	put(t, db, constants.SettingLogSheetName, "سجل حصص الاحتياط")
	put(t, db, constants.SettingGatewaySID, "AC123")

	st, err := Load(context.Background(), db, &fakeProvisioner{})
	require.NoError(t, err)
	require.Equal(t, "signatures/", st.StorageFolderID)
	require.Equal(t, "AC123", st.Get(constants.SettingGatewaySID))
	require.True(t, st.Has(constants.SettingLogSheetName))
	require.False(t, st.Has("NOPE"))
}

func TestLoadProvisioningIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	put(t, db, constants.SettingSignatureFolderName, "signatures")
	put(t, db, constants.SettingLogSheetName, "ledger")

	blob := &fakeProvisioner{}

	first, err := Load(context.Background(), db, blob)
	require.NoError(t, err)
	second, err := Load(context.Background(), db, blob)
	require.NoError(t, err)

	// resolving an existing folder twice yields the same identifier
	require.Equal(t, first.StorageFolderID, second.StorageFolderID)
	require.Equal(t, 2, blob.ensureCalls) // no cross-request cache, by design
}

func TestLoadMissingMandatoryKey(t *testing.T) {
	db := newTestDB(t)
	put(t, db, constants.SettingSignatureFolderName, "signatures")
	// LOG_SHEET_NAME deliberately absent

	_, err := Load(context.Background(), db, &fakeProvisioner{})
	require.Error(t, err)
	require.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))
}

func TestLoadVisibilityFailureIsAdvisory(t *testing.T) {
	db := newTestDB(t)
	put(t, db, constants.SettingSignatureFolderName, "signatures")
	put(t, db, constants.SettingLogSheetName, "ledger")

	blob := &fakeProvisioner{aclErr: errors.New("acl denied")}

	st, err := Load(context.Background(), db, blob)
	require.NoError(t, err)
	require.Equal(t, "signatures/", st.StorageFolderID)
	require.Equal(t, 1, blob.aclCalls)
}
