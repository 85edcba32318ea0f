package services

import (
	"context"
	"io"

	"expensify/internal/models"
)

// AssetParams holds the fields for creating a generic asset. Optional fields
// left nil take their documented defaults (currency USD, quantity 1,
// unit value = value).
type AssetParams struct {
	Name        string
	Type        models.AssetType
	Description string
	Value       float64
	Currency    string
	Quantity    *float64
	UnitValue   *float64
}

// AssetUpdateFields holds the partial update for an asset. Only non-nil
// fields are applied; everything else is preserved.
type AssetUpdateFields struct {
	Name        *string
	Type        *models.AssetType
	Description *string
	Value       *float64
	Currency    *string
	Quantity    *float64
	UnitValue   *float64
}

// AssetServicer defines the contract for generic-asset business logic.
type AssetServicer interface {
	CreateAsset(ownerID string, params AssetParams) (*models.Asset, error)
	ListAssets(ownerID string) ([]models.Asset, error)
	GetAssetByID(ownerID, assetID string) (*models.Asset, error)
	UpdateAsset(ownerID, assetID string, fields AssetUpdateFields) (*models.Asset, error)
	DeleteAsset(ctx context.Context, ownerID, assetID string) error
}

// RealEstateParams holds the full real-estate schema. Create and update both
// validate the complete set and report every violation at once.
type RealEstateParams struct {
	Name         string
	Description  string
	Value        float64
	Currency     string
	Location     string
	Address      string
	Surface      float64
	YearBuilt    *int
	PropertyType models.PropertyType
	Rooms        *int
	Bathrooms    *int
	HasParking   bool
	HasGarden    bool
}

// RealEstateServicer defines the contract for real-estate business logic.
type RealEstateServicer interface {
	CreateRealEstate(ownerID string, params RealEstateParams) (*models.RealEstate, error)
	ListRealEstate(ownerID string) ([]models.RealEstate, error)
	GetRealEstateByID(ownerID, propertyID string) (*models.RealEstate, error)
	UpdateRealEstate(ownerID, propertyID string, params RealEstateParams) (*models.RealEstate, error)
	DeleteRealEstate(ctx context.Context, ownerID, propertyID string) error
}

// DocumentUpload describes an inbound file.
type DocumentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// DocumentServicer defines the contract for asset-document business logic.
// Every operation re-derives the owner of the referenced asset before
// touching storage or the database.
type DocumentServicer interface {
	UploadDocument(ctx context.Context, ownerID string, objectType models.ObjectType, objectID string, upload DocumentUpload) (*models.AssetDocument, error)
	ListDocuments(ctx context.Context, ownerID string, objectType models.ObjectType, objectID string) ([]models.AssetDocument, error)
	DeleteDocument(ctx context.Context, ownerID, documentID string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(principalID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
