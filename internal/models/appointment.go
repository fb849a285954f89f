package models

import "time"

type Appointment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	WorkerID uint   `json:"worker_id"`
	Worker   Worker `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"worker"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	AdditionalID *uint       `json:"additional_id"`
	Additional   *Additional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"additional,omitempty"`

	// Account that originated the booking, when booked through the app.
	UserID *uint `json:"user_id"`

	Date      time.Time `gorm:"type:date" json:"date"`
	StartTime string    `gorm:"size:8" json:"start_time"`
	// EndTime is always computed server-side from the service and
	// additional durations, never trusted from the caller.
	EndTime string `gorm:"size:8" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
