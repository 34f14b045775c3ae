package models

import (
	"gorm.io/gorm"
)

const (
	ProductStatusDraft     = "DRAFT"
	ProductStatusPublished = "PUBLISHED"
	ProductStatusArchived  = "ARCHIVED"
)

const (
	AssetTypeImage = "IMAGE"
	AssetTypeVideo = "VIDEO"
)

type Product struct {
	gorm.Model
	Name          string  `gorm:"size:200;not null" json:"name"`
	Description   string  `gorm:"type:text;not null" json:"description"`
	Price         float64 `gorm:"not null" json:"price"`
	DiscountPrice float64 `gorm:"default:0" json:"discountPrice"`
	Material      string  `gorm:"size:100;not null" json:"material"`
	Status        string  `gorm:"size:20;default:'DRAFT';index" json:"status"`
	CategoryID    uint    `gorm:"not null;index" json:"categoryId"`

	Category Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Assets   []ProductAsset `gorm:"foreignKey:ProductID" json:"assets,omitempty"`
	Colors   []ProductColor `gorm:"foreignKey:ProductID" json:"colors,omitempty"`
}

// ProductAsset belongs either to a product directly or to one of its colors.
type ProductAsset struct {
	gorm.Model
	ProductID uint   `gorm:"index" json:"productId,omitempty"`
	ColorID   uint   `gorm:"index" json:"colorId,omitempty"`
	AssetURL  string `gorm:"size:512;not null" json:"assetUrl"`
	Type      string `gorm:"size:10;default:'IMAGE'" json:"type"`
}

type ProductColor struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index" json:"productId"`
	Color     string `gorm:"size:50;not null" json:"color"`

	Assets []ProductAsset   `gorm:"foreignKey:ColorID" json:"assets,omitempty"`
	Sizes  []ProductVariant `gorm:"foreignKey:ColorID" json:"sizes,omitempty"`
}

type ProductVariant struct {
	gorm.Model
	ColorID uint   `gorm:"not null;index" json:"colorId"`
	Size    string `gorm:"size:10;not null" json:"size"`
	Stock   int    `gorm:"default:0" json:"stock"`
}

type Category struct {
	gorm.Model
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description,omitempty"`
}
