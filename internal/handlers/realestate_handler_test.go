package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expensify/internal/errors"
	"expensify/internal/models"
	"expensify/internal/services"
	"expensify/internal/uuid"
)

// --- mock real-estate service ---

type mockRealEstateService struct {
	createFn func(ownerID string, params services.RealEstateParams) (*models.RealEstate, error)
	listFn   func(ownerID string) ([]models.RealEstate, error)
	getFn    func(ownerID, propertyID string) (*models.RealEstate, error)
	updateFn func(ownerID, propertyID string, params services.RealEstateParams) (*models.RealEstate, error)
	deleteFn func(ctx context.Context, ownerID, propertyID string) error
}

func (m *mockRealEstateService) CreateRealEstate(ownerID string, params services.RealEstateParams) (*models.RealEstate, error) {
	if m.createFn != nil {
		return m.createFn(ownerID, params)
	}
	return &models.RealEstate{}, nil
}

func (m *mockRealEstateService) ListRealEstate(ownerID string) ([]models.RealEstate, error) {
	if m.listFn != nil {
		return m.listFn(ownerID)
	}
	return []models.RealEstate{}, nil
}

func (m *mockRealEstateService) GetRealEstateByID(ownerID, propertyID string) (*models.RealEstate, error) {
	if m.getFn != nil {
		return m.getFn(ownerID, propertyID)
	}
	return &models.RealEstate{}, nil
}

func (m *mockRealEstateService) UpdateRealEstate(ownerID, propertyID string, params services.RealEstateParams) (*models.RealEstate, error) {
	if m.updateFn != nil {
		return m.updateFn(ownerID, propertyID, params)
	}
	return &models.RealEstate{}, nil
}

func (m *mockRealEstateService) DeleteRealEstate(ctx context.Context, ownerID, propertyID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, propertyID)
	}
	return nil
}

// verify interface compliance
var _ services.RealEstateServicer = (*mockRealEstateService)(nil)

func setupRealEstateRouter(handler *RealEstateHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectPrincipal(testPrincipal))
	auth.POST("/real-estate", handler.CreateRealEstate)
	auth.GET("/real-estate", handler.ListRealEstate)
	auth.GET("/real-estate/:id", handler.GetRealEstate)
	auth.PUT("/real-estate/:id", handler.UpdateRealEstate)
	auth.DELETE("/real-estate/:id", handler.DeleteRealEstate)
	return r
}

const validProperty = `{
	"name": "Lyon flat",
	"value": 250000,
	"location": "Lyon",
	"address": "12 Rue de la République",
	"surface": 72.5,
	"year_built": 1990,
	"property_type": "APARTMENT"
}`

// --- tests ---

func TestRealEstateHandler_CreateRealEstate(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockRealEstateService{
			createFn: func(ownerID string, params services.RealEstateParams) (*models.RealEstate, error) {
				if params.YearBuilt == nil || *params.YearBuilt != 1990 {
					t.Error("expected year_built 1990 to reach the service")
				}
				return &models.RealEstate{
					Base:         models.Base{ID: uuid.New()},
					OwnerID:      ownerID,
					Name:         params.Name,
					Value:        decimal.NewFromFloat(params.Value),
					Currency:     "USD",
					Location:     params.Location,
					Address:      params.Address,
					Surface:      params.Surface,
					YearBuilt:    *params.YearBuilt,
					PropertyType: params.PropertyType,
				}, nil
			},
		}
		handler := NewRealEstateHandler(svc, &mockAuditService{})
		r := setupRealEstateRouter(handler)

		rec := doRequest(r, "POST", "/real-estate", validProperty)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["location"] != "Lyon" {
			t.Errorf("expected Lyon, got %v", result["location"])
		}
	})

	t.Run("returns 400 with year_built issue on implausible year", func(t *testing.T) {
		handler := NewRealEstateHandler(&mockRealEstateService{}, &mockAuditService{})
		r := setupRealEstateRouter(handler)

		rec := doRequest(r, "POST", "/real-estate", `{
			"name": "Old pile",
			"value": 250000,
			"location": "Lyon",
			"address": "12 Rue de la République",
			"surface": 72.5,
			"year_built": 1492,
			"property_type": "HOUSE"
		}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_ERROR")
		errObj := result["error"].(map[string]interface{})
		issues, ok := errObj["issues"].([]interface{})
		if !ok || len(issues) == 0 {
			t.Fatalf("expected issues list, got %v", errObj["issues"])
		}
		found := false
		for _, raw := range issues {
			if issue, ok := raw.(map[string]interface{}); ok && issue["field"] == "year_built" {
				found = true
			}
		}
		if !found {
			t.Error("expected an issue on the year_built field")
		}
	})

	t.Run("returns 400 on missing required fields", func(t *testing.T) {
		handler := NewRealEstateHandler(&mockRealEstateService{}, &mockAuditService{})
		r := setupRealEstateRouter(handler)

		rec := doRequest(r, "POST", "/real-estate", `{"name":"Lyon flat"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRealEstateHandler_UpdateRealEstate(t *testing.T) {
	t.Run("passes the full schema through", func(t *testing.T) {
		propertyID := uuid.New()
		svc := &mockRealEstateService{
			updateFn: func(_, id string, params services.RealEstateParams) (*models.RealEstate, error) {
				if id != propertyID {
					t.Errorf("expected property ID %q, got %q", propertyID, id)
				}
				if params.Surface != 72.5 {
					t.Errorf("expected surface 72.5, got %v", params.Surface)
				}
				return &models.RealEstate{Base: models.Base{ID: id}, Name: params.Name}, nil
			},
		}
		handler := NewRealEstateHandler(svc, &mockAuditService{})
		r := setupRealEstateRouter(handler)

		rec := doRequest(r, "PUT", "/real-estate/"+propertyID, validProperty)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 when property is not owned", func(t *testing.T) {
		svc := &mockRealEstateService{
			updateFn: func(_, _ string, _ services.RealEstateParams) (*models.RealEstate, error) {
				return nil, apperrors.ErrPropertyNotFound
			},
		}
		handler := NewRealEstateHandler(svc, &mockAuditService{})
		r := setupRealEstateRouter(handler)

		rec := doRequest(r, "PUT", "/real-estate/"+uuid.New(), validProperty)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PROPERTY_NOT_FOUND")
	})
}

func TestRealEstateHandler_DeleteRealEstate(t *testing.T) {
	t.Run("returns success body", func(t *testing.T) {
		handler := NewRealEstateHandler(&mockRealEstateService{}, &mockAuditService{})
		r := setupRealEstateRouter(handler)

		rec := doRequest(r, "DELETE", "/real-estate/"+uuid.New(), "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["success"] != true {
			t.Error("expected success true")
		}
	})
}
