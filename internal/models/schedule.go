package models

import "time"

// WorkerSchedule holds one weekly row per (worker, day). DayOfWeek uses
// Monday=0 .. Sunday=6. Clock fields are "HH:MM" or "HH:MM:SS" strings.
// A worker with no row for a day falls back to the configured default
// weekly template.
type WorkerSchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WorkerID uint `gorm:"uniqueIndex:uq_worker_day" json:"worker_id"`

	DayOfWeek int  `gorm:"uniqueIndex:uq_worker_day" json:"day_of_week"`
	IsWorking bool `gorm:"default:true" json:"is_working"`

	StartTime  string `gorm:"size:8" json:"start_time"`
	EndTime    string `gorm:"size:8" json:"end_time"`
	BreakStart string `gorm:"size:8" json:"break_start"`
	BreakEnd   string `gorm:"size:8" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlockedDate fully blocks a worker's availability for one calendar date,
// regardless of the weekly schedule.
type BlockedDate struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WorkerID uint `gorm:"uniqueIndex:uq_worker_block" json:"worker_id"`

	Date   time.Time `gorm:"type:date;uniqueIndex:uq_worker_block" json:"date"`
	Reason string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
