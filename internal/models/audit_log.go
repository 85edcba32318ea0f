package models

import "gorm.io/datatypes"

// AuditLog records a mutation made by a principal, for traceability.
type AuditLog struct {
	Base
	PrincipalID  string         `gorm:"size:64;not null;index" json:"principal_id"`
	Action       string         `gorm:"size:50;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:64" json:"resource_id"`
	IPAddress    string         `gorm:"size:45" json:"ip_address"`
	Changes      datatypes.JSON `json:"changes,omitempty"`
}
