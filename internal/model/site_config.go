package model

// Site configuration keys
const (
	ConfigKeyAutomationEmailTriggerID = "AUTOMATION_EMAIL_TRIGGER_ID"
)

// SiteConfig is a key/value setting managed from the site dashboard.
type SiteConfig struct {
	Key   string `gorm:"column:config_key;type:VARCHAR2(128);primaryKey" json:"key"`
	Value string `gorm:"column:config_value;type:VARCHAR2(2048)" json:"value"`

	BaseEntity
}

// TableName specifies the table name for SiteConfig
func (*SiteConfig) TableName() string {
	return "site_configs"
}
