// controllers/helpers.go
package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"salonledger-backend/analytics"
)

const dateLayout = "2006-01-02"

// parsePeriod reads startDate/endDate query params (YYYY-MM-DD).
func parsePeriod(c *gin.Context) (analytics.Period, bool) {
	start, err := time.Parse(dateLayout, c.Query("startDate"))
	if err != nil {
		return analytics.Period{}, false
	}
	end, err := time.Parse(dateLayout, c.Query("endDate"))
	if err != nil || end.Before(start) {
		return analytics.Period{}, false
	}
	return analytics.Period{Start: start, End: end, Label: c.Query("label")}, true
}
