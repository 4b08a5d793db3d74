package model

import (
	"encoding/json"
	"time"
)

// Well-known setting names. The store treats settings as a generic
// key-value table; these are the only keys the API exposes.
const (
	SettingContactInfo  = "contact_info"
	SettingWorkingHours = "working_hours"
)

// SiteSetting holds one named JSON configuration blob. Exactly one row
// exists per name; writes upsert.
type SiteSetting struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
