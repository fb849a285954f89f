package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

type WorkerHandler struct {
	db *gorm.DB
}

func NewWorkerHandler(db *gorm.DB) *WorkerHandler {
	return &WorkerHandler{db: db}
}

// --------- Requests ---------

type CreateWorkerRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
}

type UpdateWorkerRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	BusinessName *string `json:"business_name,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

// List is public: the booking page needs the workers to choose from.
func (h *WorkerHandler) List(c *gin.Context) {
	var workers []models.Worker
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&workers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_workers"})
		return
	}

	c.JSON(http.StatusOK, workers)
}

func (h *WorkerHandler) Create(c *gin.Context) {
	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	worker := models.Worker{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Active:       true,
	}

	if err := h.db.Create(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_worker"})
		return
	}

	c.JSON(http.StatusCreated, worker)
}

func (h *WorkerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid worker id.")
		return
	}

	var worker models.Worker
	if err := h.db.First(&worker, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "worker_not_found", "Worker not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_worker", "Failed to load worker.")
		return
	}

	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.Phone != nil {
		worker.Phone = *req.Phone
	}
	if req.Email != nil {
		worker.Email = *req.Email
	}
	if req.BusinessName != nil {
		worker.BusinessName = *req.BusinessName
	}
	if req.Active != nil {
		worker.Active = *req.Active
	}

	if err := h.db.Save(&worker).Error; err != nil {
		httperr.Internal(c, "failed_to_update_worker", "Failed to save worker.")
		return
	}

	c.JSON(http.StatusOK, worker)
}
