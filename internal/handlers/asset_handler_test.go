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

// --- mock asset service ---

type mockAssetService struct {
	createAssetFn func(ownerID string, params services.AssetParams) (*models.Asset, error)
	listAssetsFn  func(ownerID string) ([]models.Asset, error)
	getAssetFn    func(ownerID, assetID string) (*models.Asset, error)
	updateAssetFn func(ownerID, assetID string, fields services.AssetUpdateFields) (*models.Asset, error)
	deleteAssetFn func(ctx context.Context, ownerID, assetID string) error
}

func (m *mockAssetService) CreateAsset(ownerID string, params services.AssetParams) (*models.Asset, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(ownerID, params)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) ListAssets(ownerID string) ([]models.Asset, error) {
	if m.listAssetsFn != nil {
		return m.listAssetsFn(ownerID)
	}
	return []models.Asset{}, nil
}

func (m *mockAssetService) GetAssetByID(ownerID, assetID string) (*models.Asset, error) {
	if m.getAssetFn != nil {
		return m.getAssetFn(ownerID, assetID)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) UpdateAsset(ownerID, assetID string, fields services.AssetUpdateFields) (*models.Asset, error) {
	if m.updateAssetFn != nil {
		return m.updateAssetFn(ownerID, assetID, fields)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) DeleteAsset(ctx context.Context, ownerID, assetID string) error {
	if m.deleteAssetFn != nil {
		return m.deleteAssetFn(ctx, ownerID, assetID)
	}
	return nil
}

// verify interface compliance
var _ services.AssetServicer = (*mockAssetService)(nil)

const testPrincipal = "principal_test"

func setupAssetRouter(handler *AssetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectPrincipal(testPrincipal))
	auth.POST("/assets", handler.CreateAsset)
	auth.GET("/assets", handler.ListAssets)
	auth.GET("/assets/:id", handler.GetAsset)
	auth.PUT("/assets/:id", handler.UpdateAsset)
	auth.DELETE("/assets/:id", handler.DeleteAsset)
	return r
}

// --- tests ---

func TestAssetHandler_CreateAsset(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		assetSvc := &mockAssetService{
			createAssetFn: func(ownerID string, params services.AssetParams) (*models.Asset, error) {
				if ownerID != testPrincipal {
					t.Errorf("expected owner %q, got %q", testPrincipal, ownerID)
				}
				return &models.Asset{
					Base:      models.Base{ID: uuid.New()},
					OwnerID:   ownerID,
					Name:      params.Name,
					Type:      params.Type,
					Value:     decimal.NewFromFloat(params.Value),
					Currency:  "USD",
					Quantity:  1,
					UnitValue: decimal.NewFromFloat(params.Value),
				}, nil
			},
		}
		handler := NewAssetHandler(assetSvc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "POST", "/assets",
			`{"name":"Car","type":"VEHICLE","value":20000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Car" {
			t.Errorf("expected Car, got %v", result["name"])
		}
		if result["currency"] != "USD" {
			t.Errorf("expected default currency USD, got %v", result["currency"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "POST", "/assets", `{"type":"VEHICLE","value":20000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 400 on unknown asset type", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "POST", "/assets", `{"name":"Car","type":"SPACESHIP","value":20000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "POST", "/assets", `{"name":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 401 without principal", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/assets", handler.CreateAsset)

		rec := doRequest(r, "POST", "/assets", `{"name":"Car","type":"VEHICLE","value":20000}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})
}

func TestAssetHandler_ListAssets(t *testing.T) {
	t.Run("returns owned assets as a bare array", func(t *testing.T) {
		assetSvc := &mockAssetService{
			listAssetsFn: func(ownerID string) ([]models.Asset, error) {
				return []models.Asset{
					{Base: models.Base{ID: uuid.New()}, OwnerID: ownerID, Name: "Car", Type: models.AssetTypeVehicle},
					{Base: models.Base{ID: uuid.New()}, OwnerID: ownerID, Name: "Watch", Type: models.AssetTypeJewelry},
				}, nil
			},
		}
		handler := NewAssetHandler(assetSvc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "GET", "/assets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSONArray(t, rec)
		if len(result) != 2 {
			t.Fatalf("expected 2 assets, got %d", len(result))
		}
	})

	t.Run("returns empty array when principal owns nothing", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "GET", "/assets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(parseJSONArray(t, rec)) != 0 {
			t.Error("expected empty array")
		}
	})
}

func TestAssetHandler_GetAsset(t *testing.T) {
	t.Run("returns 404 when asset is not owned", func(t *testing.T) {
		assetSvc := &mockAssetService{
			getAssetFn: func(_, _ string) (*models.Asset, error) {
				return nil, apperrors.ErrAssetNotFound
			},
		}
		handler := NewAssetHandler(assetSvc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "GET", "/assets/"+uuid.New(), "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ASSET_NOT_FOUND")
	})

	t.Run("returns 400 on malformed ID", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "GET", "/assets/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAssetHandler_UpdateAsset(t *testing.T) {
	t.Run("passes only provided fields", func(t *testing.T) {
		assetID := uuid.New()
		assetSvc := &mockAssetService{
			updateAssetFn: func(_, id string, fields services.AssetUpdateFields) (*models.Asset, error) {
				if id != assetID {
					t.Errorf("expected asset ID %q, got %q", assetID, id)
				}
				if fields.Name == nil || *fields.Name != "Renamed" {
					t.Error("expected name field to be set")
				}
				if fields.Value != nil {
					t.Error("expected value field to stay nil")
				}
				return &models.Asset{Base: models.Base{ID: id}, Name: "Renamed"}, nil
			},
		}
		handler := NewAssetHandler(assetSvc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "PUT", "/assets/"+assetID, `{"name":"Renamed"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on bad currency", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "PUT", "/assets/"+uuid.New(), `{"currency":"NOPE"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAssetHandler_DeleteAsset(t *testing.T) {
	t.Run("returns success body", func(t *testing.T) {
		called := false
		assetSvc := &mockAssetService{
			deleteAssetFn: func(_ context.Context, _, _ string) error {
				called = true
				return nil
			},
		}
		handler := NewAssetHandler(assetSvc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "DELETE", "/assets/"+uuid.New(), "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !called {
			t.Error("expected service delete to be called")
		}
		result := parseJSON(t, rec)
		if result["success"] != true {
			t.Errorf("expected success true, got %v", result["success"])
		}
	})

	t.Run("returns 404 when asset is not owned", func(t *testing.T) {
		assetSvc := &mockAssetService{
			deleteAssetFn: func(_ context.Context, _, _ string) error {
				return apperrors.ErrAssetNotFound
			},
		}
		handler := NewAssetHandler(assetSvc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "DELETE", "/assets/"+uuid.New(), "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
