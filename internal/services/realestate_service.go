package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "expensify/internal/errors"
	"expensify/internal/models"
	"expensify/internal/storage"
)

// realEstateService handles real-estate business logic.
type realEstateService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

// NewRealEstateService creates a new RealEstateServicer.
func NewRealEstateService(db *gorm.DB, store storage.ObjectStore) RealEstateServicer {
	return &realEstateService{db: db, store: store}
}

// validPropertyType reports whether t is a member of the property-type enumeration.
func validPropertyType(t models.PropertyType) bool {
	switch t {
	case models.PropertyTypeHouse, models.PropertyTypeApartment, models.PropertyTypeLand,
		models.PropertyTypeCommercial, models.PropertyTypeOther:
		return true
	}
	return false
}

// validateRealEstate checks the full schema and returns every violation.
func validateRealEstate(params RealEstateParams) []apperrors.FieldIssue {
	var issues []apperrors.FieldIssue
	if params.Name == "" {
		issues = append(issues, apperrors.FieldIssue{Field: "name", Message: "name is required"})
	}
	if params.Value <= 0 {
		issues = append(issues, apperrors.FieldIssue{Field: "value", Message: "value must be positive"})
	}
	if params.Location == "" {
		issues = append(issues, apperrors.FieldIssue{Field: "location", Message: "location is required"})
	}
	if params.Address == "" {
		issues = append(issues, apperrors.FieldIssue{Field: "address", Message: "address is required"})
	}
	if params.Surface <= 0 {
		issues = append(issues, apperrors.FieldIssue{Field: "surface", Message: "surface must be positive"})
	}
	if params.YearBuilt != nil {
		if y := *params.YearBuilt; y < 1800 || y > time.Now().Year() {
			issues = append(issues, apperrors.FieldIssue{
				Field:   "year_built",
				Message: fmt.Sprintf("year_built must be between 1800 and %d", time.Now().Year()),
			})
		}
	}
	if !validPropertyType(params.PropertyType) {
		issues = append(issues, apperrors.FieldIssue{Field: "property_type", Message: "unsupported property type"})
	}
	return issues
}

// CreateRealEstate validates the strict schema and persists a new property
// owned by the given principal. All violations are reported at once.
func (s *realEstateService) CreateRealEstate(ownerID string, params RealEstateParams) (*models.RealEstate, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if issues := validateRealEstate(params); len(issues) > 0 {
		return nil, apperrors.NewValidation(issues)
	}

	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}
	yearBuilt := time.Now().Year()
	if params.YearBuilt != nil {
		yearBuilt = *params.YearBuilt
	}

	property := &models.RealEstate{
		OwnerID:      ownerID,
		Name:         params.Name,
		Description:  params.Description,
		Value:        decimal.NewFromFloat(params.Value),
		Currency:     currency,
		Location:     params.Location,
		Address:      params.Address,
		Surface:      params.Surface,
		YearBuilt:    yearBuilt,
		PropertyType: params.PropertyType,
		Rooms:        params.Rooms,
		Bathrooms:    params.Bathrooms,
		HasParking:   params.HasParking,
		HasGarden:    params.HasGarden,
	}

	if err := s.db.Create(property).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return property, nil
}

// ListRealEstate returns all properties owned by the principal.
func (s *realEstateService) ListRealEstate(ownerID string) ([]models.RealEstate, error) {
	var properties []models.RealEstate
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at").Find(&properties).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return properties, nil
}

// GetRealEstateByID retrieves a property by id for a specific owner. As with
// generic assets, "not owned" and "absent" are indistinguishable to callers.
func (s *realEstateService) GetRealEstateByID(ownerID, propertyID string) (*models.RealEstate, error) {
	var property models.RealEstate
	if err := s.db.Where("id = ? AND owner_id = ?", propertyID, ownerID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &property, nil
}

// UpdateRealEstate replaces the property with the validated full schema.
func (s *realEstateService) UpdateRealEstate(ownerID, propertyID string, params RealEstateParams) (*models.RealEstate, error) {
	property, err := s.GetRealEstateByID(ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	if issues := validateRealEstate(params); len(issues) > 0 {
		return nil, apperrors.NewValidation(issues)
	}

	currency := params.Currency
	if currency == "" {
		currency = property.Currency
	}
	yearBuilt := property.YearBuilt
	if params.YearBuilt != nil {
		yearBuilt = *params.YearBuilt
	}

	updates := map[string]interface{}{
		"name":          params.Name,
		"description":   params.Description,
		"value":         decimal.NewFromFloat(params.Value),
		"currency":      currency,
		"location":      params.Location,
		"address":       params.Address,
		"surface":       params.Surface,
		"year_built":    yearBuilt,
		"property_type": params.PropertyType,
		"rooms":         params.Rooms,
		"bathrooms":     params.Bathrooms,
		"has_parking":   params.HasParking,
		"has_garden":    params.HasGarden,
	}

	if err := s.db.Model(property).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Where("id = ?", property.ID).First(property).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return property, nil
}

// DeleteRealEstate removes the property and all its documents, mirroring
// generic-asset deletion.
func (s *realEstateService) DeleteRealEstate(ctx context.Context, ownerID, propertyID string) error {
	property, err := s.GetRealEstateByID(ownerID, propertyID)
	if err != nil {
		return err
	}

	var docs []models.AssetDocument
	if err := s.db.Where("object_id = ?", property.ID).Find(&docs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	removeStoredObjects(ctx, s.store, docs)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("object_id = ?", property.ID).Delete(&models.AssetDocument{}).Error; err != nil {
			return fmt.Errorf("delete documents: %w", err)
		}
		if err := tx.Delete(property).Error; err != nil {
			return fmt.Errorf("delete property: %w", err)
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}
