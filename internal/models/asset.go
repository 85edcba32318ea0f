package models

import "github.com/shopspring/decimal"

// AssetType categorizes a generic asset.
type AssetType string

const (
	AssetTypeRealEstate AssetType = "REAL_ESTATE"
	AssetTypeVehicle    AssetType = "VEHICLE"
	AssetTypeJewelry    AssetType = "JEWELRY"
	AssetTypeArt        AssetType = "ART"
	AssetTypeStock      AssetType = "STOCK"
	AssetTypeCrypto     AssetType = "CRYPTO"
	AssetTypeOther      AssetType = "OTHER"
)

// Asset represents a generic owned item of value. OwnerID is the opaque
// principal id from the identity provider and never changes after creation.
type Asset struct {
	Base
	OwnerID     string          `gorm:"size:64;not null;index" json:"owner_id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Type        AssetType       `gorm:"size:20;not null" json:"type"`
	Description string          `gorm:"size:1000" json:"description,omitempty"`
	Value       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"value"`
	Currency    string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Quantity    float64         `gorm:"not null;default:1" json:"quantity"`
	UnitValue   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"unit_value"`
}
