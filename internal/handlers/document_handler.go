package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expensify/internal/errors"
	"expensify/internal/models"
	"expensify/internal/services"
)

// DocumentHandler handles asset-document requests.
type DocumentHandler struct {
	documentService services.DocumentServicer
	auditService    services.AuditServicer
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService services.DocumentServicer, auditService services.AuditServicer) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, auditService: auditService}
}

// uploadFromForm extracts the multipart "file" part for the service layer.
// The returned close func must be called after the upload completes.
func uploadFromForm(c *gin.Context) (services.DocumentUpload, func(), error) {
	header, err := c.FormFile("file")
	if err != nil {
		return services.DocumentUpload{}, nil, apperrors.ErrNoFile
	}

	file, err := header.Open()
	if err != nil {
		return services.DocumentUpload{}, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	upload := services.DocumentUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
	return upload, func() { _ = file.Close() }, nil
}

// UploadDocument attaches a file to an owned object.
// @Summary     Upload a document
// @Description Upload a document and attach it to an object owned by the authenticated principal
// @Tags        documents
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       assetType path     string true "Object type" Enums(real_estate, stock, bond, etf, cash, custom)
// @Param       objectId  path     string true "Object ID"
// @Param       file      formData file   true "Document file"
// @Success     201 {object} models.AssetDocument "Document created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Referenced object not found"
// @Failure     500 {object} ErrorResponse "Storage or server error"
// @Router      /documents/{assetType}/{objectId} [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	objectType := models.ObjectType(c.Param("assetType"))
	objectID, err := parseUUIDParam(c, "objectId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	upload, closeFile, err := uploadFromForm(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer closeFile()

	document, err := h.documentService.UploadDocument(c.Request.Context(), principalID, objectType, objectID, upload)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "UPLOAD_DOCUMENT", "asset_document", document.ID, c.ClientIP(),
		map[string]interface{}{"name": document.Name, "object_type": objectType, "object_id": objectID})

	c.JSON(http.StatusCreated, document)
}

// ListDocuments returns the documents attached to an owned object.
// @Summary     List documents
// @Description List the documents attached to an object owned by the authenticated principal, oldest first
// @Tags        documents
// @Produce     json
// @Security    BearerAuth
// @Param       assetType path string true "Object type" Enums(real_estate, stock, bond, etf, cash, custom)
// @Param       objectId  path string true "Object ID"
// @Success     200 {array}  models.AssetDocument
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Referenced object not found"
// @Router      /documents/{assetType}/{objectId} [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	objectType := models.ObjectType(c.Param("assetType"))
	objectID, err := parseUUIDParam(c, "objectId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	documents, err := h.documentService.ListDocuments(c.Request.Context(), principalID, objectType, objectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

// DeleteDocument removes a document row and its stored object.
// @Summary     Delete a document
// @Description Delete a document attached to an object owned by the authenticated principal
// @Tags        documents
// @Produce     json
// @Security    BearerAuth
// @Param       documentId path string true "Document ID"
// @Success     200 {object} map[string]string "Deletion confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Document owned by another principal"
// @Failure     404 {object} ErrorResponse "Document not found"
// @Router      /documents/{documentId} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	documentID, err := parseUUIDParam(c, "documentId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), principalID, documentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "DELETE_DOCUMENT", "asset_document", documentID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// UploadAssetDocument attaches a file directly to a generic asset. It shares
// the document service with the generic routes, using the custom object type.
// @Summary     Upload an asset document
// @Description Upload a document and attach it to an asset owned by the authenticated principal
// @Tags        assets
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       id   path     string true "Asset ID"
// @Param       file formData file   true "Document file"
// @Success     200 {object} models.AssetDocument "Document created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Storage or server error"
// @Router      /assets/{id}/documents [post]
func (h *DocumentHandler) UploadAssetDocument(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	upload, closeFile, err := uploadFromForm(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer closeFile()

	document, err := h.documentService.UploadDocument(c.Request.Context(), principalID, models.ObjectTypeCustom, assetID, upload)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "UPLOAD_DOCUMENT", "asset_document", document.ID, c.ClientIP(),
		map[string]interface{}{"name": document.Name, "object_id": assetID})

	c.JSON(http.StatusOK, document)
}

// ListAssetDocuments lists the documents attached directly to a generic asset.
// @Summary     List asset documents
// @Description List the documents attached to an asset owned by the authenticated principal
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {array}  models.AssetDocument
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/documents [get]
func (h *DocumentHandler) ListAssetDocuments(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	documents, err := h.documentService.ListDocuments(c.Request.Context(), principalID, models.ObjectTypeCustom, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}
