package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shadysnails/salon-scheduler/internal/cache"
	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/httpresp"
	"github.com/shadysnails/salon-scheduler/internal/middleware"
	usecase "github.com/shadysnails/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create      *usecase.CreateAppointment
	update      *usecase.UpdateAppointment
	cancel      *usecase.CancelAppointment
	confirm     *usecase.ConfirmAppointment
	complete    *usecase.CompleteAppointment
	listByDate  *usecase.ListAppointmentsByDate
	listByMonth *usecase.ListAppointmentsByMonth
	cache       *cache.Availability
}

func NewAppointmentHandler(
	create *usecase.CreateAppointment,
	update *usecase.UpdateAppointment,
	cancel *usecase.CancelAppointment,
	confirm *usecase.ConfirmAppointment,
	complete *usecase.CompleteAppointment,
	listByDate *usecase.ListAppointmentsByDate,
	listByMonth *usecase.ListAppointmentsByMonth,
	availabilityCache *cache.Availability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		update:      update,
		cancel:      cancel,
		confirm:     confirm,
		complete:    complete,
		listByDate:  listByDate,
		listByMonth: listByMonth,
		cache:       availabilityCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	WorkerID     uint   `json:"worker_id" binding:"required"`
	CustomerID   uint   `json:"customer_id"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	AdditionalID *uint  `json:"additional_id"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	Notes        string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	ServiceID    *uint   `json:"service_id,omitempty"`
	AdditionalID *uint   `json:"additional_id,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ======================================================
// HELPERS
// ======================================================

func actorRole(c *gin.Context) domain.Role {
	switch c.GetString(middleware.ContextUserRole) {
	case "admin":
		return domain.RoleAdmin
	case "worker":
		return domain.RoleWorker
	default:
		return domain.RoleCustomer
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	actor := actorRole(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	// Customers always book for themselves; the customer record is
	// looked up (or materialized) from their own account.
	customerID := req.CustomerID
	if actor == domain.RoleCustomer || customerID == 0 {
		customerID = userID
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		WorkerID:     req.WorkerID,
		CustomerID:   customerID,
		ServiceID:    req.ServiceID,
		AdditionalID: req.AdditionalID,
		UserID:       &userID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		Notes:        req.Notes,
		Actor:        actor,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.cache.InvalidateDay(c.Request.Context(), ap.WorkerID, ap.Date)
	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, prevDate, err := h.update.Execute(c.Request.Context(), usecase.UpdateAppointmentInput{
		ID:           id,
		Date:         req.Date,
		StartTime:    req.StartTime,
		ServiceID:    req.ServiceID,
		AdditionalID: req.AdditionalID,
		Notes:        req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	// A reschedule frees a slot on the old date too.
	h.cache.InvalidateDay(c.Request.Context(), ap.WorkerID, ap.Date)
	if !prevDate.Equal(ap.Date) {
		h.cache.InvalidateDay(c.Request.Context(), ap.WorkerID, prevDate)
	}
	c.JSON(200, ap)
}

// ======================================================
// LIFECYCLE (CANCEL / CONFIRM / COMPLETE)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, actorRole(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.cache.InvalidateDay(c.Request.Context(), ap.WorkerID, ap.Date)
	c.JSON(200, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id, actorRole(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, actorRole(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// LIST
// ======================================================

// listWorkerID resolves which worker's agenda is being read: an
// explicit worker_id query for admins, the token's worker otherwise.
func (h *AppointmentHandler) listWorkerID(c *gin.Context) (uint, bool) {
	if raw := c.Query("worker_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return 0, false
		}
		return uint(id), true
	}

	if workerID, ok := c.Get(middleware.ContextWorkerID); ok {
		return workerID.(uint), true
	}
	return 0, false
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	workerID, ok := h.listWorkerID(c)
	if !ok {
		httperr.BadRequest(c, "missing_worker_id", "worker_id is required.")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), workerID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	workerID, ok := h.listWorkerID(c)
	if !ok {
		httperr.BadRequest(c, "missing_worker_id", "worker_id is required.")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), workerID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}
