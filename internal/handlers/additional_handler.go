package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

type AdditionalHandler struct {
	db *gorm.DB
}

func NewAdditionalHandler(db *gorm.DB) *AdditionalHandler {
	return &AdditionalHandler{db: db}
}

// --------- Requests ---------

type CreateAdditionalRequest struct {
	Name             string  `json:"name" binding:"required"`
	ExtraDurationMin int     `json:"extra_duration_min" binding:"required,min=1"`
	Price            float64 `json:"price"`
}

type UpdateAdditionalRequest struct {
	Name             *string  `json:"name,omitempty"`
	ExtraDurationMin *int     `json:"extra_duration_min,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	Active           *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *AdditionalHandler) List(c *gin.Context) {
	var additionals []models.Additional
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&additionals).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_additionals"})
		return
	}

	c.JSON(http.StatusOK, additionals)
}

func (h *AdditionalHandler) Create(c *gin.Context) {
	var req CreateAdditionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	additional := models.Additional{
		Name:             req.Name,
		ExtraDurationMin: req.ExtraDurationMin,
		Price:            req.Price,
		Active:           true,
	}

	if err := h.db.Create(&additional).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_additional"})
		return
	}

	c.JSON(http.StatusCreated, additional)
}

func (h *AdditionalHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid additional id.")
		return
	}

	var additional models.Additional
	if err := h.db.First(&additional, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "additional_not_found", "Additional service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_additional", "Failed to load additional service.")
		return
	}

	var req UpdateAdditionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		additional.Name = *req.Name
	}
	if req.ExtraDurationMin != nil {
		if *req.ExtraDurationMin < 1 {
			httperr.BadRequest(c, "invalid_duration", "extra_duration_min must be positive.")
			return
		}
		additional.ExtraDurationMin = *req.ExtraDurationMin
	}
	if req.Price != nil {
		additional.Price = *req.Price
	}
	if req.Active != nil {
		additional.Active = *req.Active
	}

	if err := h.db.Save(&additional).Error; err != nil {
		httperr.Internal(c, "failed_to_update_additional", "Failed to save additional service.")
		return
	}

	c.JSON(http.StatusOK, additional)
}
