package models

import "time"

// Well-known setting keys seeded at migration time.
const (
	SettingCurrency       = "currency"
	SettingCurrencySymbol = "currency_symbol"
	SettingDefaultTaxRate = "default_tax_rate"
)

// Setting is a global key/value configuration entry.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Setting) TableName() string {
	return "settings"
}

// UserSetting is a per-user key/value entry that shadows the global setting
// with the same key.
type UserSetting struct {
	UserID    int64     `json:"user_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s UserSetting) TableName() string {
	return "user_settings"
}
