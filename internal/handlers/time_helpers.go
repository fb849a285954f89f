package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shadysnails/salon-scheduler/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(""),
	)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
