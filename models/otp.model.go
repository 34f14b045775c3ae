package models

import (
	"gorm.io/gorm"
)

// OTP is one pending one-time-code challenge. At most one record exists per
// mobile number at a time; issuing again replaces it. SignedToken is populated
// only after a successful forget-password verification and must byte-equal the
// token presented to the reset endpoint while this record still exists.
type OTP struct {
	gorm.Model
	Mobile      string `gorm:"size:15;uniqueIndex;not null" json:"mobile"`
	Code        string `gorm:"size:6;not null" json:"-"`
	SignedToken string `gorm:"size:512;default:''" json:"-"`
	Attempts    int    `gorm:"default:0" json:"-"`
}
