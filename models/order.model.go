package models

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

const (
	FulfillmentPending   = "PENDING"
	FulfillmentPacked    = "PACKED"
	FulfillmentShipped   = "SHIPPED"
	FulfillmentDelivered = "DELIVERED"
)

type Order struct {
	gorm.Model
	UserID      uint    `gorm:"not null;index" json:"userId"`
	AddressID   uint    `gorm:"not null" json:"addressId"`
	Total       float64 `gorm:"not null" json:"total"`
	Paid        bool    `gorm:"default:false" json:"paid"`
	Status      string  `gorm:"size:20;default:'PENDING';index" json:"status"`
	Fulfillment string  `gorm:"size:20;default:'PENDING'" json:"fulfillment"`
	AWB         string  `gorm:"size:50;default:''" json:"awb"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem snapshots the purchased variant so later catalog edits do not
// rewrite order history.
type OrderItem struct {
	gorm.Model
	OrderID          uint    `gorm:"not null;index" json:"orderId"`
	ProductVariantID uint    `gorm:"not null;index" json:"productVariantId"`
	Quantity         int     `gorm:"not null" json:"quantity"`
	PriceAtOrder     float64 `gorm:"not null" json:"priceAtOrder"`
	ProductName      string  `gorm:"size:200" json:"productName"`
	ProductImage     string  `gorm:"size:512" json:"productImage"`
	Color            string  `gorm:"size:50" json:"color"`
	Size             string  `gorm:"size:10" json:"size"`
}
