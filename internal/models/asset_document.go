package models

// ObjectType selects which table a document's ObjectID points into.
// The set is closed: real_estate resolves against the real_estates table,
// every other kind against the assets table.
type ObjectType string

const (
	ObjectTypeRealEstate ObjectType = "real_estate"
	ObjectTypeStock      ObjectType = "stock"
	ObjectTypeBond       ObjectType = "bond"
	ObjectTypeETF        ObjectType = "etf"
	ObjectTypeCash       ObjectType = "cash"
	ObjectTypeCustom     ObjectType = "custom"
)

// ValidObjectType reports whether s names a known document object type.
func ValidObjectType(s string) bool {
	switch ObjectType(s) {
	case ObjectTypeRealEstate, ObjectTypeStock, ObjectTypeBond,
		ObjectTypeETF, ObjectTypeCash, ObjectTypeCustom:
		return true
	}
	return false
}

// AssetDocument is a file reference attached to an asset. The bytes live in
// object storage under URL; only the pointer is stored here. There is no
// owner column: the effective owner is re-derived from the referenced asset
// on every mutation.
type AssetDocument struct {
	Base
	Name       string     `gorm:"size:255;not null" json:"name"`
	URL        string     `gorm:"size:1024;not null" json:"url"`
	ObjectID   string     `gorm:"type:uuid;not null;index:idx_asset_documents_object" json:"object_id"`
	ObjectType ObjectType `gorm:"size:20;not null;index:idx_asset_documents_object" json:"object_type"`
}
