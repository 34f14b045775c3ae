package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductSale is a per-product daily rollup of order items, written by the
// nightly aggregation job and read by the performance report.
type ProductSale struct {
	gorm.Model
	ProductID    uint      `gorm:"not null;index:idx_product_sale_day,unique" json:"productId"`
	Date         time.Time `gorm:"not null;index:idx_product_sale_day,unique" json:"date"`
	TotalOrders  int       `gorm:"default:0" json:"totalOrders"`
	TotalRevenue float64   `gorm:"default:0" json:"totalRevenue"`
}
