package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yashsingh9651/arvan-backend/models"
)

// StartSalesScheduler runs the nightly rollup that aggregates the previous
// day's order items into per-product ProductSale rows.
func StartSalesScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@daily", func() {
		if err := RollupDailySales(db, time.Now().AddDate(0, 0, -1)); err != nil {
			log.Printf("[SALES-SCHEDULER] rollup failed: %v", err)
		}
	}); err != nil {
		log.Printf("[SALES-SCHEDULER] failed to register job: %v", err)
		return c
	}

	c.Start()
	log.Println("[SALES-SCHEDULER] daily sales rollup scheduled")
	return c
}

// RollupDailySales aggregates order items created on the given day, keyed by
// product, and upserts one ProductSale row per product. Re-running for the
// same day overwrites rather than double-counts.
func RollupDailySales(db *gorm.DB, day time.Time) error {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var items []models.OrderItem
	if err := db.Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Find(&items).Error; err != nil {
		return err
	}

	type bucket struct {
		orders  int
		revenue float64
	}
	byProduct := make(map[uint]*bucket)

	for _, item := range items {
		var variant models.ProductVariant
		if err := db.First(&variant, item.ProductVariantID).Error; err != nil {
			continue
		}
		var color models.ProductColor
		if err := db.First(&color, variant.ColorID).Error; err != nil {
			continue
		}

		b, ok := byProduct[color.ProductID]
		if !ok {
			b = &bucket{}
			byProduct[color.ProductID] = b
		}
		b.orders += item.Quantity
		b.revenue += item.PriceAtOrder * float64(item.Quantity)
	}

	for productID, b := range byProduct {
		sale := models.ProductSale{
			ProductID:    productID,
			Date:         dayStart,
			TotalOrders:  b.orders,
			TotalRevenue: b.revenue,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_orders", "total_revenue"}),
		}).Create(&sale).Error; err != nil {
			return err
		}
	}

	log.Printf("[SALES-SCHEDULER] rolled up %d products for %s", len(byProduct), dayStart.Format("2006-01-02"))
	return nil
}
