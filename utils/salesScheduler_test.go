package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yashsingh9651/arvan-backend/models"
)

func newRollupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.ProductColor{}, &models.ProductVariant{},
		&models.Order{}, &models.OrderItem{}, &models.ProductSale{},
	))
	return db
}

func seedVariant(t *testing.T, db *gorm.DB, productName string) *models.ProductVariant {
	t.Helper()

	product := models.Product{Name: productName, Description: "d", Price: 100, Material: "cotton", CategoryID: 1}
	require.NoError(t, db.Create(&product).Error)

	color := models.ProductColor{ProductID: product.ID, Color: "Black"}
	require.NoError(t, db.Create(&color).Error)

	variant := models.ProductVariant{ColorID: color.ID, Size: "M", Stock: 10}
	require.NoError(t, db.Create(&variant).Error)
	return &variant
}

func TestRollupDailySales(t *testing.T) {
	db := newRollupDB(t)

	v1 := seedVariant(t, db, "Oversized Tee")
	v2 := seedVariant(t, db, "Cargo Pants")

	order := models.Order{UserID: 1, AddressID: 1, Total: 700}
	require.NoError(t, db.Create(&order).Error)

	items := []models.OrderItem{
		{OrderID: order.ID, ProductVariantID: v1.ID, Quantity: 2, PriceAtOrder: 100},
		{OrderID: order.ID, ProductVariantID: v1.ID, Quantity: 1, PriceAtOrder: 100},
		{OrderID: order.ID, ProductVariantID: v2.ID, Quantity: 1, PriceAtOrder: 400},
	}
	require.NoError(t, db.Create(&items).Error)

	today := time.Now()
	require.NoError(t, RollupDailySales(db, today))

	var sales []models.ProductSale
	require.NoError(t, db.Order("product_id").Find(&sales).Error)
	require.Len(t, sales, 2)

	assert.Equal(t, 3, sales[0].TotalOrders)
	assert.Equal(t, 300.0, sales[0].TotalRevenue)
	assert.Equal(t, 1, sales[1].TotalOrders)
	assert.Equal(t, 400.0, sales[1].TotalRevenue)

	// Re-running the same day overwrites instead of double-counting
	require.NoError(t, RollupDailySales(db, today))
	var count int64
	db.Model(&models.ProductSale{}).Count(&count)
	assert.Equal(t, int64(2), count)

	require.NoError(t, db.Order("product_id").Find(&sales).Error)
	assert.Equal(t, 300.0, sales[0].TotalRevenue)
}

func TestRollupDailySalesIgnoresOtherDays(t *testing.T) {
	db := newRollupDB(t)

	v := seedVariant(t, db, "Hoodie")
	order := models.Order{UserID: 1, AddressID: 1, Total: 100}
	require.NoError(t, db.Create(&order).Error)

	item := models.OrderItem{OrderID: order.ID, ProductVariantID: v.ID, Quantity: 1, PriceAtOrder: 100}
	require.NoError(t, db.Create(&item).Error)
	require.NoError(t, db.Model(&item).Update("created_at", time.Now().AddDate(0, 0, -3)).Error)

	require.NoError(t, RollupDailySales(db, time.Now()))

	var count int64
	db.Model(&models.ProductSale{}).Count(&count)
	assert.Zero(t, count)
}
