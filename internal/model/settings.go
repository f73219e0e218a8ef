package model

import (
	"time"
)

// SiteSetting is one key/value row of site-wide configuration edited in the
// back-office (contact address, social links, footer text and similar).
type SiteSetting struct {
	Key       string    `db:"setting_key" json:"key"`
	Value     string    `db:"setting_value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
