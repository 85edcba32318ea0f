package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"expensify/internal/handlers"
	"expensify/internal/identity"
	"expensify/internal/logger"
	"expensify/internal/middleware"
	"expensify/internal/models"
	"expensify/internal/services"
	"expensify/internal/testutil"
	"expensify/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB       *gorm.DB
	Store    *testutil.FakeObjectStore
	Verifier *identity.JWTVerifier
	Router   *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

var principalCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Asset{},
		&models.RealEstate{},
		&models.AssetDocument{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database and a fake object store.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	store := testutil.NewFakeObjectStore()
	verifier := identity.NewJWTVerifier("integration-test-secret", "expensify-test")

	// Services
	assetService := services.NewAssetService(db, store)
	realEstateService := services.NewRealEstateService(db, store)
	documentService := services.NewDocumentService(db, store)
	auditService := services.NewAuditService(db)

	// Handlers
	assetHandler := handlers.NewAssetHandler(assetService, auditService)
	realEstateHandler := handlers.NewRealEstateHandler(realEstateService, auditService)
	documentHandler := handlers.NewDocumentHandler(documentService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(verifier))

	assets := v1.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)
	assets.POST("/:id/documents", documentHandler.UploadAssetDocument)
	assets.GET("/:id/documents", documentHandler.ListAssetDocuments)

	realEstate := v1.Group("/real-estate")
	realEstate.POST("", realEstateHandler.CreateRealEstate)
	realEstate.GET("", realEstateHandler.ListRealEstate)
	realEstate.GET("/:id", realEstateHandler.GetRealEstate)
	realEstate.PUT("/:id", realEstateHandler.UpdateRealEstate)
	realEstate.DELETE("/:id", realEstateHandler.DeleteRealEstate)

	documents := v1.Group("/documents")
	documents.POST("/:assetType/:objectId", documentHandler.UploadDocument)
	documents.GET("/:assetType/:objectId", documentHandler.ListDocuments)
	documents.DELETE("/:documentId", documentHandler.DeleteDocument)

	return &testApp{DB: db, Store: store, Verifier: verifier, Router: router}
}

// newPrincipal issues a bearer token for a fresh principal and returns both.
func (app *testApp) newPrincipal(t *testing.T) (principalID, token string) {
	t.Helper()

	principalID = fmt.Sprintf("principal_%d", principalCounter.Add(1))
	token, err := app.Verifier.Issue(principalID, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return principalID, token
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// upload sends a multipart request with a single "file" part.
func (app *testApp) upload(t *testing.T, method, path, filename, content, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createAsset creates an asset over the API and returns its response body.
func (app *testApp) createAsset(t *testing.T, token, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", "/api/v1/assets", body, token)
	if rec.Code != 201 {
		t.Fatalf("create asset failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// createProperty creates a real-estate property over the API.
func (app *testApp) createProperty(t *testing.T, token, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", "/api/v1/real-estate", body, token)
	if rec.Code != 201 {
		t.Fatalf("create property failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}
