package models

import (
	"gorm.io/gorm"
)

type Testimonial struct {
	gorm.Model
	Username    string `gorm:"size:100;not null" json:"username"`
	Role        string `gorm:"size:100;not null" json:"role"`
	Description string `gorm:"type:text;not null" json:"description"`
	Image       string `gorm:"size:512;not null" json:"image"`
	Ratings     int    `gorm:"not null" json:"ratings"`
}

type ProductRating struct {
	gorm.Model
	ProductID   uint   `gorm:"not null;index" json:"productId"`
	UserID      uint   `gorm:"not null;index" json:"userId"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Rating      int    `gorm:"not null" json:"rating"`
}
