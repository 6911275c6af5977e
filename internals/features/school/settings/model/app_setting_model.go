package model

type AppSettingModel struct {
	AppSettingKey   string `gorm:"primaryKey;column:app_setting_key" json:"app_setting_key"`
	AppSettingValue string `gorm:"not null;column:app_setting_value" json:"app_setting_value"`
}

func (AppSettingModel) TableName() string { return "app_settings" }
