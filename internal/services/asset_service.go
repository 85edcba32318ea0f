package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "expensify/internal/errors"
	"expensify/internal/models"
	"expensify/internal/storage"
)

// assetService handles generic-asset business logic.
type assetService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

// NewAssetService creates a new AssetServicer. The object store is used only
// for the best-effort cleanup of attached documents on delete.
func NewAssetService(db *gorm.DB, store storage.ObjectStore) AssetServicer {
	return &assetService{db: db, store: store}
}

// validAssetType reports whether t is a member of the asset-type enumeration.
func validAssetType(t models.AssetType) bool {
	switch t {
	case models.AssetTypeRealEstate, models.AssetTypeVehicle, models.AssetTypeJewelry,
		models.AssetTypeArt, models.AssetTypeStock, models.AssetTypeCrypto, models.AssetTypeOther:
		return true
	}
	return false
}

// CreateAsset validates params, applies defaults, and persists a new asset
// owned by the given principal.
func (s *assetService) CreateAsset(ownerID string, params AssetParams) (*models.Asset, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var issues []apperrors.FieldIssue
	if params.Name == "" {
		issues = append(issues, apperrors.FieldIssue{Field: "name", Message: "name is required"})
	}
	if !validAssetType(params.Type) {
		issues = append(issues, apperrors.FieldIssue{Field: "type", Message: "unsupported asset type"})
	}
	if params.Value <= 0 {
		issues = append(issues, apperrors.FieldIssue{Field: "value", Message: "value must be positive"})
	}
	if params.Quantity != nil && *params.Quantity <= 0 {
		issues = append(issues, apperrors.FieldIssue{Field: "quantity", Message: "quantity must be positive"})
	}
	if params.UnitValue != nil && *params.UnitValue <= 0 {
		issues = append(issues, apperrors.FieldIssue{Field: "unit_value", Message: "unit_value must be positive"})
	}
	if len(issues) > 0 {
		return nil, apperrors.NewValidation(issues)
	}

	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}
	quantity := 1.0
	if params.Quantity != nil {
		quantity = *params.Quantity
	}
	value := decimal.NewFromFloat(params.Value)
	unitValue := value
	if params.UnitValue != nil {
		unitValue = decimal.NewFromFloat(*params.UnitValue)
	}

	asset := &models.Asset{
		OwnerID:     ownerID,
		Name:        params.Name,
		Type:        params.Type,
		Description: params.Description,
		Value:       value,
		Currency:    currency,
		Quantity:    quantity,
		UnitValue:   unitValue,
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return asset, nil
}

// ListAssets returns all assets owned by the principal, in insertion order.
func (s *assetService) ListAssets(ownerID string) ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// GetAssetByID retrieves an asset by id for a specific owner. An asset that
// exists but belongs to someone else is indistinguishable from an absent one.
func (s *assetService) GetAssetByID(ownerID, assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("id = ? AND owner_id = ?", assetID, ownerID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// UpdateAsset applies only the supplied fields; unchanged fields are
// preserved. OwnerID is never updatable.
func (s *assetService) UpdateAsset(ownerID, assetID string, fields AssetUpdateFields) (*models.Asset, error) {
	asset, err := s.GetAssetByID(ownerID, assetID)
	if err != nil {
		return nil, err
	}

	var issues []apperrors.FieldIssue
	if fields.Name != nil && *fields.Name == "" {
		issues = append(issues, apperrors.FieldIssue{Field: "name", Message: "name must not be empty"})
	}
	if fields.Type != nil && !validAssetType(*fields.Type) {
		issues = append(issues, apperrors.FieldIssue{Field: "type", Message: "unsupported asset type"})
	}
	if fields.Value != nil && *fields.Value <= 0 {
		issues = append(issues, apperrors.FieldIssue{Field: "value", Message: "value must be positive"})
	}
	if fields.Quantity != nil && *fields.Quantity <= 0 {
		issues = append(issues, apperrors.FieldIssue{Field: "quantity", Message: "quantity must be positive"})
	}
	if fields.UnitValue != nil && *fields.UnitValue <= 0 {
		issues = append(issues, apperrors.FieldIssue{Field: "unit_value", Message: "unit_value must be positive"})
	}
	if len(issues) > 0 {
		return nil, apperrors.NewValidation(issues)
	}

	updates := make(map[string]interface{})
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Value != nil {
		updates["value"] = decimal.NewFromFloat(*fields.Value)
	}
	if fields.Currency != nil {
		updates["currency"] = *fields.Currency
	}
	if fields.Quantity != nil {
		updates["quantity"] = *fields.Quantity
	}
	if fields.UnitValue != nil {
		updates["unit_value"] = decimal.NewFromFloat(*fields.UnitValue)
	}

	if len(updates) > 0 {
		if err := s.db.Model(asset).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reload to get fresh data
		if err := s.db.Where("id = ?", asset.ID).First(asset).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return asset, nil
}

// DeleteAsset removes the asset and all its documents. Storage objects are
// deleted best-effort first; the database rows go in a single transaction.
func (s *assetService) DeleteAsset(ctx context.Context, ownerID, assetID string) error {
	asset, err := s.GetAssetByID(ownerID, assetID)
	if err != nil {
		return err
	}

	var docs []models.AssetDocument
	if err := s.db.Where("object_id = ?", asset.ID).Find(&docs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	removeStoredObjects(ctx, s.store, docs)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("object_id = ?", asset.ID).Delete(&models.AssetDocument{}).Error; err != nil {
			return fmt.Errorf("delete documents: %w", err)
		}
		if err := tx.Delete(asset).Error; err != nil {
			return fmt.Errorf("delete asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}
