package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"expensify/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewPrincipalID returns a unique opaque principal id, as the identity
// provider would issue.
func NewPrincipalID() string {
	return fmt.Sprintf("principal_%d", nextID())
}

// CreateTestAsset creates a generic asset owned by the given principal.
func CreateTestAsset(t *testing.T, db *gorm.DB, ownerID string) *models.Asset {
	t.Helper()

	value := decimal.NewFromInt(1000)
	asset := &models.Asset{
		OwnerID:   ownerID,
		Name:      fmt.Sprintf("Test Asset %d", nextID()),
		Type:      models.AssetTypeOther,
		Value:     value,
		Currency:  "USD",
		Quantity:  1,
		UnitValue: value,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestRealEstate creates a property owned by the given principal.
func CreateTestRealEstate(t *testing.T, db *gorm.DB, ownerID string) *models.RealEstate {
	t.Helper()

	property := &models.RealEstate{
		OwnerID:      ownerID,
		Name:         fmt.Sprintf("Test Property %d", nextID()),
		Value:        decimal.NewFromInt(250000),
		Currency:     "USD",
		Location:     "Lyon",
		Address:      "12 rue de Test",
		Surface:      80,
		YearBuilt:    1990,
		PropertyType: models.PropertyTypeApartment,
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test real estate: %v", err)
	}
	return property
}

// CreateTestDocument creates a document row referencing the given object,
// with a URL matching the fake object store's scheme.
func CreateTestDocument(t *testing.T, db *gorm.DB, store *FakeObjectStore, objectType models.ObjectType, objectID string) *models.AssetDocument {
	t.Helper()

	key := fmt.Sprintf("owner/%s/%s/%d-deed.pdf", objectType, objectID, nextID())
	store.Objects[key] = []byte("test document bytes")

	doc := &models.AssetDocument{
		Name:       "deed.pdf",
		URL:        store.PublicURL(key),
		ObjectID:   objectID,
		ObjectType: objectType,
	}
	if err := db.Create(doc).Error; err != nil {
		t.Fatalf("failed to create test document: %v", err)
	}
	return doc
}
