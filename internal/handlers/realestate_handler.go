package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensify/internal/models"
	"expensify/internal/services"
)

// RealEstateHandler handles real-estate requests.
type RealEstateHandler struct {
	realEstateService services.RealEstateServicer
	auditService      services.AuditServicer
}

// NewRealEstateHandler creates a new RealEstateHandler.
func NewRealEstateHandler(realEstateService services.RealEstateServicer, auditService services.AuditServicer) *RealEstateHandler {
	return &RealEstateHandler{realEstateService: realEstateService, auditService: auditService}
}

// RealEstateRequest represents the full real-estate payload. Create and
// update both carry the complete schema; updates replace every field.
type RealEstateRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=200"`
	Description  string  `json:"description" binding:"max=1000"`
	Value        float64 `json:"value" binding:"required,gt=0"`
	Currency     string  `json:"currency" binding:"omitempty,iso4217"`
	Location     string  `json:"location" binding:"required,min=1,max=200"`
	Address      string  `json:"address" binding:"required,min=1,max=500"`
	Surface      float64 `json:"surface" binding:"required,gt=0"`
	YearBuilt    *int    `json:"year_built" binding:"omitempty,year_built"`
	PropertyType string  `json:"property_type" binding:"required,property_type"`
	Rooms        *int    `json:"rooms" binding:"omitempty,gte=0"`
	Bathrooms    *int    `json:"bathrooms" binding:"omitempty,gte=0"`
	HasParking   bool    `json:"has_parking"`
	HasGarden    bool    `json:"has_garden"`
}

func (r RealEstateRequest) params() services.RealEstateParams {
	return services.RealEstateParams{
		Name:         r.Name,
		Description:  r.Description,
		Value:        r.Value,
		Currency:     r.Currency,
		Location:     r.Location,
		Address:      r.Address,
		Surface:      r.Surface,
		YearBuilt:    r.YearBuilt,
		PropertyType: models.PropertyType(r.PropertyType),
		Rooms:        r.Rooms,
		Bathrooms:    r.Bathrooms,
		HasParking:   r.HasParking,
		HasGarden:    r.HasGarden,
	}
}

// CreateRealEstate handles the creation of a new property.
// @Summary     Create a property
// @Description Create a new real-estate property owned by the authenticated principal
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RealEstateRequest true "Property details"
// @Success     201 {object} models.RealEstate "Property created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /real-estate [post]
func (h *RealEstateHandler) CreateRealEstate(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RealEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	property, err := h.realEstateService.CreateRealEstate(principalID, req.params())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "CREATE_PROPERTY", "real_estate", property.ID, c.ClientIP(),
		map[string]interface{}{"name": property.Name, "location": property.Location})

	c.JSON(http.StatusCreated, property)
}

// ListRealEstate returns all properties owned by the authenticated principal.
// @Summary     List properties
// @Description List all real-estate properties owned by the authenticated principal, oldest first
// @Tags        real-estate
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.RealEstate
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /real-estate [get]
func (h *RealEstateHandler) ListRealEstate(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	properties, err := h.realEstateService.ListRealEstate(principalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetRealEstate returns a single property by ID.
// @Summary     Get a property
// @Description Get a single real-estate property owned by the authenticated principal
// @Tags        real-estate
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Property ID"
// @Success     200 {object} models.RealEstate
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /real-estate/{id} [get]
func (h *RealEstateHandler) GetRealEstate(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.realEstateService.GetRealEstateByID(principalID, propertyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// UpdateRealEstate replaces a property with the submitted schema.
// @Summary     Update a property
// @Description Replace a property owned by the authenticated principal with the submitted schema
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Property ID"
// @Param       request body RealEstateRequest true "Property details"
// @Success     200 {object} models.RealEstate "Updated property"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /real-estate/{id} [put]
func (h *RealEstateHandler) UpdateRealEstate(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RealEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	property, err := h.realEstateService.UpdateRealEstate(principalID, propertyID, req.params())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "UPDATE_PROPERTY", "real_estate", property.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, property)
}

// DeleteRealEstate deletes a property along with its attached documents.
// @Summary     Delete a property
// @Description Delete a real-estate property and all of its attached documents
// @Tags        real-estate
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Property ID"
// @Success     200 {object} map[string]bool "Deletion confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /real-estate/{id} [delete]
func (h *RealEstateHandler) DeleteRealEstate(c *gin.Context) {
	principalID, err := getPrincipalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.realEstateService.DeleteRealEstate(c.Request.Context(), principalID, propertyID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(principalID, "DELETE_PROPERTY", "real_estate", propertyID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
