package models

import "time"

type Worker struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:20" json:"phone"`
	Email        string `gorm:"size:100" json:"email"`
	BusinessName string `gorm:"size:100" json:"business_name"`

	// Workers are deactivated, never deleted, so appointment history survives.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
