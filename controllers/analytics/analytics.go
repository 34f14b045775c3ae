package analyticsController

import (
	"math"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/models"
)

type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

type topProduct struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// GetTopProducts ranks products by total units sold
func (ctrl *Controller) GetTopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 {
		limit = 5
	}

	var rows []struct {
		ProductVariantID uint
		TotalQuantity    int
		TotalRevenue     float64
	}
	if err := ctrl.db.Model(&models.OrderItem{}).
		Select("product_variant_id, SUM(quantity) AS total_quantity, SUM(price_at_order * quantity) AS total_revenue").
		Group("product_variant_id").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return common.NewInternal("Failed to aggregate sales!", err)
	}

	products := make([]topProduct, 0, len(rows))
	for _, row := range rows {
		name := "Unknown Product"

		var variant models.ProductVariant
		if err := ctrl.db.First(&variant, row.ProductVariantID).Error; err == nil {
			var color models.ProductColor
			if err := ctrl.db.First(&color, variant.ColorID).Error; err == nil {
				var product models.Product
				if err := ctrl.db.First(&product, color.ProductID).Error; err == nil {
					name = product.Name
				}
			}
		}

		products = append(products, topProduct{
			Name:    name,
			Sales:   row.TotalQuantity,
			Revenue: row.TotalRevenue,
		})
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Top products fetched.", products)
}

// GetSalesMetrics reports all-time revenue, order and customer totals plus
// last-month growth share
func (ctrl *Controller) GetSalesMetrics(c *fiber.Ctx) error {
	var totalRevenue float64
	if err := ctrl.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return common.NewInternal("Failed to aggregate revenue!", err)
	}

	var totalOrders int64
	if err := ctrl.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return common.NewInternal("Failed to count orders!", err)
	}

	var newCustomers int64
	if err := ctrl.db.Model(&models.User{}).Count(&newCustomers).Error; err != nil {
		return common.NewInternal("Failed to count customers!", err)
	}

	oneMonthAgo := time.Now().AddDate(0, -1, 0)
	var lastMonthRevenue float64
	if err := ctrl.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("created_at >= ?", oneMonthAgo).
		Scan(&lastMonthRevenue).Error; err != nil {
		return common.NewInternal("Failed to aggregate revenue!", err)
	}

	salesGrowth := 0.0
	if totalRevenue > 0 {
		salesGrowth = lastMonthRevenue / totalRevenue * 100
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Sales metrics fetched.", fiber.Map{
		"totalRevenue": totalRevenue,
		"totalOrders":  totalOrders,
		"newCustomers": newCustomers,
		"salesGrowth":  salesGrowth,
	})
}

type performanceRow struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Sales    int     `json:"sales"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
}

// GetPerformance reads the daily ProductSale rollups and reports per-product
// totals sorted by revenue. Profit is estimated at a flat 20% margin.
func (ctrl *Controller) GetPerformance(c *fiber.Ctx) error {
	var products []models.Product
	if err := ctrl.db.Preload("Category").Find(&products).Error; err != nil {
		return common.NewInternal("Failed to fetch products!", err)
	}

	rows := make([]performanceRow, 0, len(products))
	for _, product := range products {
		var sales []models.ProductSale
		if err := ctrl.db.Where("product_id = ?", product.ID).Find(&sales).Error; err != nil {
			return common.NewInternal("Failed to fetch sales!", err)
		}

		row := performanceRow{
			ID:       product.ID,
			Name:     product.Name,
			Category: product.Category.Name,
		}
		if row.Category == "" {
			row.Category = "Uncategorized"
		}
		for _, sale := range sales {
			row.Sales += sale.TotalOrders
			row.Revenue += sale.TotalRevenue
		}
		row.Profit = math.Round(row.Revenue*0.2*100) / 100
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })

	return common.JsonResponse(c, fiber.StatusOK, true, "Performance fetched.", rows)
}
