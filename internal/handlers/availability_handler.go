package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shadysnails/salon-scheduler/internal/cache"
	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/httpresp"
	usecase "github.com/shadysnails/salon-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	getAvailability *usecase.GetAvailability
	cache           *cache.Availability
}

func NewAvailabilityHandler(
	getAvailability *usecase.GetAvailability,
	availabilityCache *cache.Availability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailability: getAvailability,
		cache:           availabilityCache,
	}
}

// Get answers "which start times are bookable". Public, no auth, since
// the booking page calls it before the customer logs in.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Query("worker_id"), 10, 32)
	if err != nil || workerID == 0 {
		httperr.BadRequest(c, "invalid_worker_id", "worker_id is required.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "invalid_service_id", "service_id is required.")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	var additionalID *uint
	if raw := c.Query("additional_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			httperr.BadRequest(c, "invalid_additional_id", "additional_id must be a positive integer.")
			return
		}
		v := uint(id)
		additionalID = &v
	}

	in := domain.AvailabilityInput{
		WorkerID:     uint(workerID),
		ServiceID:    uint(serviceID),
		AdditionalID: additionalID,
		Date:         date,
	}

	if res, ok := h.cache.Get(c.Request.Context(), in); ok {
		httpresp.OK(c, res)
		return
	}

	res, err := h.getAvailability.Execute(c.Request.Context(), in)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.cache.Set(c.Request.Context(), in, res)
	httpresp.OK(c, res)
}
