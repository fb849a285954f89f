package appointment

import "time"

type AvailabilityInput struct {
	WorkerID     uint
	ServiceID    uint
	AdditionalID *uint
	Date         time.Time
}

type AvailabilityResult struct {
	Date         string   `json:"date"`
	WorkerID     uint     `json:"worker_id"`
	ServiceID    uint     `json:"service_id"`
	AdditionalID *uint    `json:"additional_id"`
	TotalMinutes int      `json:"total_duration_minutes"`
	Slots        []string `json:"available_slots"`
	Blocked      bool     `json:"is_blocked"`
	BlockReason  string   `json:"block_reason,omitempty"`
}
