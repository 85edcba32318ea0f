package models

import "github.com/shopspring/decimal"

// PropertyType categorizes a real-estate asset.
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "HOUSE"
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeLand       PropertyType = "LAND"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
	PropertyTypeOther      PropertyType = "OTHER"
)

// RealEstate is the specialized real-estate asset type. It shares the
// ownership and lifecycle rules of Asset but is persisted in its own table
// with property-specific attributes.
type RealEstate struct {
	Base
	OwnerID      string          `gorm:"size:64;not null;index" json:"owner_id"`
	Name         string          `gorm:"size:200;not null" json:"name"`
	Description  string          `gorm:"size:1000" json:"description,omitempty"`
	Value        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"value"`
	Currency     string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Location     string          `gorm:"size:200;not null" json:"location"`
	Address      string          `gorm:"size:500;not null" json:"address"`
	Surface      float64         `gorm:"not null" json:"surface"`
	YearBuilt    int             `gorm:"not null" json:"year_built"`
	PropertyType PropertyType    `gorm:"size:20;not null" json:"property_type"`
	Rooms        *int            `json:"rooms,omitempty"`
	Bathrooms    *int            `json:"bathrooms,omitempty"`
	HasParking   bool            `gorm:"not null;default:false" json:"has_parking"`
	HasGarden    bool            `gorm:"not null;default:false" json:"has_garden"`
}
