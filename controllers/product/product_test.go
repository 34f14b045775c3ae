package productController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yashsingh9651/arvan-backend/common"
	productController "github.com/yashsingh9651/arvan-backend/controllers/product"
	"github.com/yashsingh9651/arvan-backend/middleware"
	"github.com/yashsingh9651/arvan-backend/models"
	productRoutes "github.com/yashsingh9651/arvan-backend/routers/productRoutes"
)

func newProductApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.ProductAsset{}, &models.ProductColor{}, &models.ProductVariant{},
	))

	auth := middleware.NewAuth("test-secret")
	app := fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	productRoutes.SetupProductRoutes(app, productController.New(db), auth)

	admin := &models.User{Mobile: "+10000000099", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)
	adminToken, err := auth.GenerateJWT(admin)
	require.NoError(t, err)

	return app, db, adminToken
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func productBody() fiber.Map {
	return fiber.Map{
		"name":        "Oversized Tee",
		"description": "Heavyweight cotton tee",
		"price":       799.0,
		"categoryId":  1,
		"material":    "cotton",
		"assets": []fiber.Map{
			{"url": "https://cdn.example.com/tee.jpg", "type": "IMAGE"},
		},
	}
}

func TestAddProductRequiresAdmin(t *testing.T) {
	app, _, _ := newProductApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/products/", "", productBody())
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAddProductDefaultsToDraft(t *testing.T) {
	app, db, adminToken := newProductApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/products/", adminToken, productBody())
	require.Equal(t, http.StatusCreated, status)

	var product models.Product
	require.NoError(t, db.Preload("Assets").First(&product).Error)
	assert.Equal(t, models.ProductStatusDraft, product.Status)
	require.Len(t, product.Assets, 1)
	assert.Equal(t, models.AssetTypeImage, product.Assets[0].Type)
}

func TestAddProductValidation(t *testing.T) {
	app, _, adminToken := newProductApp(t)

	body := productBody()
	body["price"] = 0
	status, _ := call(t, app, http.MethodPost, "/api/products/", adminToken, body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestColorAndSizeLifecycle(t *testing.T) {
	app, db, adminToken := newProductApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/products/", adminToken, productBody())
	require.Equal(t, http.StatusCreated, status)

	var product models.Product
	require.NoError(t, db.First(&product).Error)

	status, _ = call(t, app, http.MethodPost, "/api/products/color", adminToken, fiber.Map{
		"productId": product.ID,
		"color":     "Black",
		"sizes": []fiber.Map{
			{"size": "M", "stock": 5},
			{"size": "L", "stock": 3},
		},
	})
	require.Equal(t, http.StatusCreated, status)

	var color models.ProductColor
	require.NoError(t, db.Preload("Sizes").First(&color).Error)
	require.Len(t, color.Sizes, 2)

	// Stock update targets one variant
	status, _ = call(t, app, http.MethodPut, "/api/products/stock", adminToken, fiber.Map{
		"variantId": color.Sizes[0].ID,
		"stock":     42,
	})
	require.Equal(t, http.StatusOK, status)

	var variant models.ProductVariant
	require.NoError(t, db.First(&variant, color.Sizes[0].ID).Error)
	assert.Equal(t, 42, variant.Stock)

	// Unknown size names are rejected
	status, _ = call(t, app, http.MethodPost, "/api/products/sizes", adminToken, fiber.Map{
		"colorId": color.ID,
		"sizes":   []fiber.Map{{"size": "GIGANTIC", "stock": 1}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestGetProductPreloadsTree(t *testing.T) {
	app, db, adminToken := newProductApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/products/", adminToken, productBody())
	require.Equal(t, http.StatusCreated, status)

	var product models.Product
	require.NoError(t, db.First(&product).Error)

	status, _ = call(t, app, http.MethodPost, "/api/products/color", adminToken, fiber.Map{
		"productId": product.ID,
		"color":     "Black",
		"sizes":     []fiber.Map{{"size": "M", "stock": 5}},
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := call(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), "", nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	colors := data["colors"].([]interface{})
	require.Len(t, colors, 1)
	sizes := colors[0].(map[string]interface{})["sizes"].([]interface{})
	assert.Len(t, sizes, 1)
}

func TestDeleteProduct(t *testing.T) {
	app, db, adminToken := newProductApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/products/", adminToken, productBody())
	require.Equal(t, http.StatusCreated, status)

	var product models.Product
	require.NoError(t, db.First(&product).Error)

	status, _ = call(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
