package inventoryController

import (
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
	"github.com/yashsingh9651/arvan-backend/models"
)

func newInventoryApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ProductColor{}, &models.ProductVariant{}))

	ctrl := New(db)
	app := fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	app.Get("/api/inventory/overview", ctrl.GetOverview)
	app.Get("/api/inventory", ctrl.GetInventory)

	return app, db
}

func seedProduct(t *testing.T, db *gorm.DB, name, status string, stocks ...int) *models.Product {
	t.Helper()

	product := models.Product{Name: name, Description: "d", Price: 100, Material: "cotton", Status: status, CategoryID: 1}
	require.NoError(t, db.Create(&product).Error)

	if len(stocks) > 0 {
		color := models.ProductColor{ProductID: product.ID, Color: "Black"}
		require.NoError(t, db.Create(&color).Error)
		for i, stock := range stocks {
			variant := models.ProductVariant{ColorID: color.ID, Size: fmt.Sprintf("S%d", i), Stock: stock}
			require.NoError(t, db.Create(&variant).Error)
		}
	}
	return &product
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestGetOverview(t *testing.T) {
	app, db := newInventoryApp(t)

	// Stocked across two variants: 8 + 7 = 15, above the threshold
	seedProduct(t, db, "Oversized Tee", models.ProductStatusPublished, 8, 7)
	// Aggregate 4, at or below the threshold
	seedProduct(t, db, "Cargo Pants", models.ProductStatusPublished, 4)
	// Variants exist but all empty
	seedProduct(t, db, "Hoodie", models.ProductStatusPublished, 0)
	// No variants at all, never enters the stock map
	seedProduct(t, db, "Cap", models.ProductStatusDraft)

	status, body := getJSON(t, app, "/api/inventory/overview")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["totalProducts"])
	assert.Equal(t, float64(1), data["restockAlerts"])
	assert.Equal(t, float64(2), data["lowStockItems"])
	// Only the two products with positive stock leave the out-of-stock count
	assert.Equal(t, float64(2), data["outOfStock"])
}

func TestGetInventory(t *testing.T) {
	app, db := newInventoryApp(t)

	seedProduct(t, db, "Oversized Tee", models.ProductStatusPublished, 8, 7)
	seedProduct(t, db, "Cargo Pants", models.ProductStatusPublished, 4)
	seedProduct(t, db, "Secret Drop", models.ProductStatusDraft, 99)

	status, body := getJSON(t, app, "/api/inventory?limit=10&page=1")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	require.Len(t, products, 2)

	byName := map[string]float64{}
	for _, p := range products {
		row := p.(map[string]interface{})
		byName[row["name"].(string)] = row["inStock"].(float64)
	}
	assert.Equal(t, float64(15), byName["Oversized Tee"])
	assert.Equal(t, float64(4), byName["Cargo Pants"])
	assert.NotContains(t, byName, "Secret Drop")
}

func TestGetInventorySearch(t *testing.T) {
	app, db := newInventoryApp(t)

	seedProduct(t, db, "Oversized Tee", models.ProductStatusPublished, 8)
	seedProduct(t, db, "Cargo Pants", models.ProductStatusPublished, 4)

	status, body := getJSON(t, app, "/api/inventory?search=Cargo")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "Cargo Pants", products[0].(map[string]interface{})["name"])
}
