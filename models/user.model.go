package models

import (
	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	Name             string `gorm:"default:''" json:"name"`
	Email            string `gorm:"size:100;index" json:"email"`
	Mobile           string `gorm:"size:15;uniqueIndex;not null" json:"mobile"`
	Image            string `gorm:"default:''" json:"image"`
	Role             string `gorm:"default:'USER'" json:"role"`
	Password         string `gorm:"not null" json:"-"`
	IsMobileVerified bool   `gorm:"default:false" json:"isMobileVerified"`

	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}

type Address struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"userId"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:15;not null" json:"phone"`
	Street  string `gorm:"size:255;not null" json:"street"`
	City    string `gorm:"size:100;not null" json:"city"`
	State   string `gorm:"size:100;not null" json:"state"`
	Country string `gorm:"size:100;not null" json:"country"`
	ZipCode string `gorm:"size:10;not null" json:"zipCode"`
}
