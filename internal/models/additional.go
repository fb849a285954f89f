package models

import "time"

// Additional is an add-on attached to an appointment. It extends the
// total duration and price of the booked service.
type Additional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name             string  `gorm:"size:100;not null" json:"name"`
	ExtraDurationMin int     `gorm:"not null" json:"extra_duration_min"`
	Price            float64 `json:"price"`
	Active           bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
