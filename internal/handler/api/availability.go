package api

import (
	"net/http"

	reqdto "agenda-engine/internal/handler/dto/request"
	resdto "agenda-engine/internal/handler/dto/response"
	"agenda-engine/internal/handler/httperr"
	"agenda-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	config       queries.ConfigQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, config queries.ConfigQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability, config: config}
}

// @Summary Check availability
// @Description Whether a single start time can be booked
// @Tags availability
// @Produce json
// @Param slug path string true "Business slug"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Start time (HH:MM)"
// @Param duration query int false "Duration in minutes"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability/{slug} [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	assessment, err := h.availability.CheckAvailability(c.Request.Context(), q.ToQuery(c.Param("slug")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssessment(assessment))
}

// @Summary Available hours
// @Description Bookable start times for a date
// @Tags availability
// @Produce json
// @Param slug path string true "Business slug"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailableHoursView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /available-hours/{slug} [get]
func (h *AvailabilityHandler) AvailableHours(c *gin.Context) {
	var q reqdto.AvailableHoursQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.availability.AvailableHours(c.Request.Context(), c.Param("slug"), q.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Public configuration
// @Tags availability
// @Produce json
// @Param slug path string true "Business slug"
// @Success 200 {object} queries.PublicConfigView
// @Failure 404 {object} httperr.Response
// @Router /public-config/{slug} [get]
func (h *AvailabilityHandler) PublicConfig(c *gin.Context) {
	view, err := h.config.PublicConfig(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
