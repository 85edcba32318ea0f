package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	apperrors "expensify/internal/errors"
	"expensify/internal/logger"
	"expensify/internal/models"
	"expensify/internal/storage"
)

// documentService handles asset-document business logic. It coordinates the
// object store with the database: an upload writes storage first and the row
// only after storage success, so a row never points at a missing object.
type documentService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

// NewDocumentService creates a new DocumentServicer.
func NewDocumentService(db *gorm.DB, store storage.ObjectStore) DocumentServicer {
	return &documentService{db: db, store: store}
}

// objectOwner resolves the owner of the asset a document references.
// real_estate looks in the real_estates table; every other kind in assets.
// Returns ErrAssetNotFound when the referenced record is absent.
func (s *documentService) objectOwner(objectType models.ObjectType, objectID string) (string, error) {
	switch objectType {
	case models.ObjectTypeRealEstate:
		var property models.RealEstate
		if err := s.db.Select("owner_id").Where("id = ?", objectID).First(&property).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", apperrors.ErrAssetNotFound
			}
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return property.OwnerID, nil
	default:
		var asset models.Asset
		if err := s.db.Select("owner_id").Where("id = ?", objectID).First(&asset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", apperrors.ErrAssetNotFound
			}
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return asset.OwnerID, nil
	}
}

// requireOwnedObject verifies the referenced asset exists and belongs to the
// principal. Absent and not-owned collapse into the same not-found outcome.
func (s *documentService) requireOwnedObject(ownerID string, objectType models.ObjectType, objectID string) error {
	owner, err := s.objectOwner(objectType, objectID)
	if err != nil {
		return err
	}
	if owner != ownerID {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// sanitizeFilename strips diacritics and replaces any character outside
// [A-Za-z0-9._-] with an underscore, so the name is safe inside a storage key.
func sanitizeFilename(name string) string {
	decomposed := norm.NFD.String(name)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining mark left over from decomposition
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// objectKey builds the canonical storage key for a document. The millisecond
// timestamp keeps keys collision-free without a coordination step.
func objectKey(ownerID string, objectType models.ObjectType, objectID, filename string) string {
	return fmt.Sprintf("%s/%s/%s/%d-%s", ownerID, objectType, objectID, time.Now().UnixMilli(), sanitizeFilename(filename))
}

// removeStoredObjects deletes the storage objects behind the given documents,
// best-effort. Failures are logged and never abort the caller; an orphaned
// storage object is acceptable, a dangling database row is not.
func removeStoredObjects(ctx context.Context, store storage.ObjectStore, docs []models.AssetDocument) {
	for _, doc := range docs {
		key, ok := store.KeyFromURL(doc.URL)
		if !ok {
			logger.Get().Warnw("could not derive storage key from document URL",
				"document_id", doc.ID, "url", doc.URL)
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			logger.Get().Errorw("failed to delete storage object",
				"document_id", doc.ID, "key", key, "error", err)
		}
	}
}

// UploadDocument stores the file bytes and then records the document row.
// A storage failure aborts before any database write.
func (s *documentService) UploadDocument(ctx context.Context, ownerID string, objectType models.ObjectType, objectID string, upload DocumentUpload) (*models.AssetDocument, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !models.ValidObjectType(string(objectType)) {
		return nil, apperrors.ErrInvalidObjectType
	}
	if err := s.requireOwnedObject(ownerID, objectType, objectID); err != nil {
		return nil, err
	}
	if upload.Content == nil || upload.Filename == "" || upload.Size <= 0 {
		return nil, apperrors.ErrNoFile
	}

	key := objectKey(ownerID, objectType, objectID, upload.Filename)
	if err := s.store.Put(ctx, key, upload.Content, upload.Size, upload.ContentType); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}

	document := &models.AssetDocument{
		Name:       upload.Filename,
		URL:        s.store.PublicURL(key),
		ObjectID:   objectID,
		ObjectType: objectType,
	}
	if err := s.db.Create(document).Error; err != nil {
		// The object is already in storage; it becomes an orphan. Logged,
		// never surfaced as a dangling row.
		logger.Get().Errorw("document row insert failed after storage write",
			"key", key, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return document, nil
}

// ListDocuments returns all documents attached to the referenced asset,
// after the same ownership check as upload.
func (s *documentService) ListDocuments(ctx context.Context, ownerID string, objectType models.ObjectType, objectID string) ([]models.AssetDocument, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !models.ValidObjectType(string(objectType)) {
		return nil, apperrors.ErrInvalidObjectType
	}
	if err := s.requireOwnedObject(ownerID, objectType, objectID); err != nil {
		return nil, err
	}

	var docs []models.AssetDocument
	if err := s.db.Where("object_id = ? AND object_type = ?", objectID, objectType).
		Order("created_at").Find(&docs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return docs, nil
}

// DeleteDocument removes a document row and, best-effort, its storage
// object. The owner is re-derived from the referenced asset; a document
// whose parent is gone or owned by someone else is forbidden.
func (s *documentService) DeleteDocument(ctx context.Context, ownerID, documentID string) error {
	if ownerID == "" {
		return apperrors.ErrUnauthorized
	}

	var document models.AssetDocument
	if err := s.db.Where("id = ?", documentID).First(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	owner, err := s.objectOwner(document.ObjectType, document.ObjectID)
	if err != nil || owner != ownerID {
		return apperrors.ErrForbidden
	}

	removeStoredObjects(ctx, s.store, []models.AssetDocument{document})

	if err := s.db.Delete(&document).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
