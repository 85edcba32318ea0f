package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"expensify/internal/logger"
	"expensify/internal/models"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(principalID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var changesJSON []byte
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = []byte("{}")
		} else {
			changesJSON = data
		}
	}

	entry := &models.AuditLog{
		PrincipalID:  principalID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      datatypes.JSON(changesJSON),
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"principal_id", principalID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
