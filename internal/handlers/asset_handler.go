package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensify/internal/models"
	"expensify/internal/services"
)

// AssetHandler handles generic-asset requests.
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// CreateAssetRequest represents the request payload for creating an asset.
// Currency defaults to USD, quantity to 1, and unit_value to value when omitted.
type CreateAssetRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Type        string   `json:"type" binding:"required,asset_type"`
	Description string   `json:"description" binding:"max=1000"`
	Value       float64  `json:"value" binding:"required,gt=0"`
	Currency    string   `json:"currency" binding:"omitempty,iso4217"`
	Quantity    *float64 `json:"quantity" binding:"omitempty,gt=0"`
	UnitValue   *float64 `json:"unit_value" binding:"omitempty,gt=0"`
}

// UpdateAssetRequest represents the request payload for partially updating an
// asset. Only the fields present in the payload are changed.
type UpdateAssetRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Type        *string  `json:"type" binding:"omitempty,asset_type"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Value       *float64 `json:"value" binding:"omitempty,gt=0"`
	Currency    *string  `json:"currency" binding:"omitempty,iso4217"`
	Quantity    *float64 `json:"quantity" binding:"omitempty,gt=0"`
	UnitValue   *float64 `json:"unit_value" binding:"omitempty,gt=0"`
}

// CreateAsset handles the creation of a new asset.
// @Summary     Create an asset
// @Description Create a new asset owned by the authenticated principal
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	asset, err := h.assetService.CreateAsset(principalID, services.AssetParams{
		Name:        req.Name,
		Type:        models.AssetType(req.Type),
		Description: req.Description,
		Value:       req.Value,
		Currency:    req.Currency,
		Quantity:    req.Quantity,
		UnitValue:   req.UnitValue,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "CREATE_ASSET", "asset", asset.ID, c.ClientIP(),
		map[string]interface{}{"name": asset.Name, "type": asset.Type})

	c.JSON(http.StatusCreated, asset)
}

// ListAssets returns all assets owned by the authenticated principal.
// @Summary     List assets
// @Description List all assets owned by the authenticated principal, oldest first
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.Asset
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assets, err := h.assetService.ListAssets(principalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetAsset returns a single asset by ID.
// @Summary     Get an asset
// @Description Get a single asset owned by the authenticated principal
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} models.Asset
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
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

	asset, err := h.assetService.GetAssetByID(principalID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// UpdateAsset applies a partial update to an asset.
// @Summary     Update an asset
// @Description Partially update an asset owned by the authenticated principal
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Asset ID"
// @Param       request body UpdateAssetRequest true "Fields to update"
// @Success     200 {object} models.Asset "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
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

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	fields := services.AssetUpdateFields{
		Name:        req.Name,
		Description: req.Description,
		Value:       req.Value,
		Currency:    req.Currency,
		Quantity:    req.Quantity,
		UnitValue:   req.UnitValue,
	}
	if req.Type != nil {
		t := models.AssetType(*req.Type)
		fields.Type = &t
	}

	asset, err := h.assetService.UpdateAsset(principalID, assetID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "UPDATE_ASSET", "asset", asset.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, asset)
}

// DeleteAsset deletes an asset along with its attached documents.
// @Summary     Delete an asset
// @Description Delete an asset and all of its attached documents
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]bool "Deletion confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
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

	if err := h.assetService.DeleteAsset(c.Request.Context(), principalID, assetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "DELETE_ASSET", "asset", assetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
