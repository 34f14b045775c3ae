package inventoryController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/models"
)

// Products with aggregate stock at or below this count the low-stock report
const lowStockThreshold = 10

type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// stockByProduct sums variant stock per product across the color indirection
func (ctrl *Controller) stockByProduct(productIDs []uint) (map[uint]int, error) {
	query := ctrl.db.Model(&models.ProductVariant{}).
		Select("product_colors.product_id AS product_id, product_variants.stock AS stock").
		Joins("JOIN product_colors ON product_colors.id = product_variants.color_id")
	if len(productIDs) > 0 {
		query = query.Where("product_colors.product_id IN ?", productIDs)
	}

	var rows []struct {
		ProductID uint
		Stock     int
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	stockMap := make(map[uint]int)
	for _, row := range rows {
		stockMap[row.ProductID] += row.Stock
	}
	return stockMap, nil
}

// GetOverview reports catalog-wide stock health
func (ctrl *Controller) GetOverview(c *fiber.Ctx) error {
	var totalProducts int64
	if err := ctrl.db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		return common.NewInternal("Failed to count products!", err)
	}

	stockMap, err := ctrl.stockByProduct(nil)
	if err != nil {
		return common.NewInternal("Failed to aggregate stock!", err)
	}

	outOfStock := int(totalProducts)
	restockAlerts := 0
	lowStockItems := 0

	for _, stock := range stockMap {
		if stock > lowStockThreshold {
			restockAlerts++
		} else {
			lowStockItems++
		}
		if stock > 0 {
			outOfStock--
		}
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Inventory overview.", fiber.Map{
		"totalProducts": totalProducts,
		"lowStockItems": lowStockItems,
		"outOfStock":    outOfStock,
		"restockAlerts": restockAlerts,
	})
}

type inventoryRow struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	InStock           int    `json:"inStock"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}

// GetInventory returns a paginated product list with aggregated stock counts
func (ctrl *Controller) GetInventory(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	search := c.Query("search")

	query := ctrl.db.Model(&models.Product{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var totalProducts int64
	if err := query.Where("status = ?", models.ProductStatusPublished).
		Count(&totalProducts).Error; err != nil {
		return common.NewInternal("Failed to count products!", err)
	}

	var products []models.Product
	if err := ctrl.db.
		Where("status = ?", models.ProductStatusPublished).
		Scopes(func(db *gorm.DB) *gorm.DB {
			if search != "" {
				return db.Where("name LIKE ?", "%"+search+"%")
			}
			return db
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Select("id", "name").
		Find(&products).Error; err != nil {
		return common.NewInternal("Failed to fetch products!", err)
	}

	productIDs := make([]uint, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}

	stockMap := map[uint]int{}
	if len(productIDs) > 0 {
		var err error
		stockMap, err = ctrl.stockByProduct(productIDs)
		if err != nil {
			return common.NewInternal("Failed to aggregate stock!", err)
		}
	}

	rows := make([]inventoryRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, inventoryRow{
			ID:                p.ID,
			Name:              p.Name,
			InStock:           stockMap[p.ID],
			LowStockThreshold: lowStockThreshold,
		})
	}

	totalPages := (totalProducts + int64(limit) - 1) / int64(limit)

	return common.JsonResponse(c, fiber.StatusOK, true, "Inventory fetched.", fiber.Map{
		"pagination": fiber.Map{
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": totalProducts,
		},
		"products": rows,
	})
}
