package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

type ScheduleHandler struct {
	db  *gorm.DB
	tpl domain.WeekTemplate
}

func NewScheduleHandler(db *gorm.DB, tpl domain.WeekTemplate) *ScheduleHandler {
	return &ScheduleHandler{db: db, tpl: tpl}
}

// --------- Requests ---------

type ScheduleDayConfig struct {
	DayOfWeek  int    `json:"day_of_week" binding:"min=0,max=6"`
	IsWorking  bool   `json:"is_working"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

type CreateBlockedDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

// ======================================================
// WEEKLY SCHEDULE
// ======================================================

// GetWeek returns the worker's configured week. A worker who never
// saved a schedule gets the default template as seven synthetic rows,
// the same hours the availability engine assumes for them.
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	workerID, ok := parseIDParam(c, "workerId")
	if !ok {
		httperr.BadRequest(c, "invalid_worker_id", "Invalid worker id.")
		return
	}

	var rows []models.WorkerSchedule
	if err := h.db.
		Where("worker_id = ?", workerID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	if len(rows) == 0 {
		rows = defaultWeekRows(workerID, h.tpl)
	}

	c.JSON(http.StatusOK, rows)
}

func defaultWeekRows(workerID uint, tpl domain.WeekTemplate) []models.WorkerSchedule {
	rows := make([]models.WorkerSchedule, 0, 7)
	for day := 0; day < 7; day++ {
		row := models.WorkerSchedule{
			WorkerID:  workerID,
			DayOfWeek: day,
			IsWorking: tpl.Working[day],
		}
		if row.IsWorking {
			row.StartTime = domain.FormatClock(tpl.Start)
			row.EndTime = domain.FormatClock(tpl.End)
		}
		rows = append(rows, row)
	}
	return rows
}

// UpdateWeek replaces the whole weekly template in one call. Clock
// strings are validated up front so a bad row cannot poison the
// availability engine later.
func (h *ScheduleHandler) UpdateWeek(c *gin.Context) {
	workerID, ok := parseIDParam(c, "workerId")
	if !ok {
		httperr.BadRequest(c, "invalid_worker_id", "Invalid worker id.")
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if !d.IsWorking {
			continue
		}
		start, err := domain.ParseClock(d.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "start_time must be HH:MM.")
			return
		}
		end, err := domain.ParseClock(d.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "end_time must be HH:MM.")
			return
		}
		if end <= start {
			httperr.BadRequest(c, "invalid_time_range", "end_time must be after start_time.")
			return
		}
		if d.BreakStart != "" || d.BreakEnd != "" {
			bs, err := domain.ParseClock(d.BreakStart)
			if err != nil {
				httperr.BadRequest(c, "invalid_time", "break_start must be HH:MM.")
				return
			}
			be, err := domain.ParseClock(d.BreakEnd)
			if err != nil {
				httperr.BadRequest(c, "invalid_time", "break_end must be HH:MM.")
				return
			}
			if be <= bs {
				httperr.BadRequest(c, "invalid_time_range", "break_end must be after break_start.")
				return
			}
			if bs < start || be > end {
				httperr.BadRequest(c, "invalid_time_range", "break must fall within working hours.")
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", workerID).Delete(&models.WorkerSchedule{}).Error; err != nil {
			return err
		}

		var toCreate []models.WorkerSchedule
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkerSchedule{
				WorkerID:   workerID,
				DayOfWeek:  d.DayOfWeek,
				IsWorking:  d.IsWorking,
				StartTime:  d.StartTime,
				EndTime:    d.EndTime,
				BreakStart: d.BreakStart,
				BreakEnd:   d.BreakEnd,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// BLOCKED DATES
// ======================================================

func (h *ScheduleHandler) ListBlocks(c *gin.Context) {
	workerID, ok := parseIDParam(c, "workerId")
	if !ok {
		httperr.BadRequest(c, "invalid_worker_id", "Invalid worker id.")
		return
	}

	var blocks []models.BlockedDate
	if err := h.db.
		Where("worker_id = ?", workerID).
		Order("date ASC").
		Find(&blocks).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blocked_dates"})
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *ScheduleHandler) CreateBlock(c *gin.Context) {
	workerID, ok := parseIDParam(c, "workerId")
	if !ok {
		httperr.BadRequest(c, "invalid_worker_id", "Invalid worker id.")
		return
	}

	var req CreateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	block := models.BlockedDate{
		WorkerID: workerID,
		Date:     date,
		Reason:   req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			httperr.Conflict(c, "date_already_blocked", "The date is already blocked.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_blocked_date"})
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *ScheduleHandler) DeleteBlock(c *gin.Context) {
	workerID, ok := parseIDParam(c, "workerId")
	if !ok {
		httperr.BadRequest(c, "invalid_worker_id", "Invalid worker id.")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid blocked date id.")
		return
	}

	res := h.db.
		Where("id = ? AND worker_id = ?", id, workerID).
		Delete(&models.BlockedDate{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_blocked_date"})
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_date_not_found", "Blocked date not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
