package api

import (
	"net/http"

	"agenda-engine/internal/handler/httperr"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/commands"
	"agenda-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order; the first marked match wins.
var errorMappings = []errorMapping{
	{queries.ErrBusinessNotFound, http.StatusNotFound, "Business not found"},
	{queries.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
	{commands.ErrCancelTokenNotFound, http.StatusNotFound, "Appointment not found or already cancelled"},
	{commands.ErrInvalidBookingInput, http.StatusBadRequest, "Invalid booking request"},
	{queries.ErrInvalidAvailabilityInput, http.StatusBadRequest, "Invalid availability request"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
	{commands.ErrInvalidOAuthState, http.StatusBadRequest, "Invalid or expired authorization state"},
	{commands.ErrCalendarConnectFailed, http.StatusBadGateway, "Could not connect calendar"},
	{commands.ErrBookingFailed, http.StatusInternalServerError, "Could not complete booking"},
	{commands.ErrCancellationFailed, http.StatusInternalServerError, "Could not cancel appointment"},
	{queries.ErrAvailabilityLookup, http.StatusInternalServerError, "Could not check availability"},
	{queries.ErrConfigLookup, http.StatusInternalServerError, "Could not load business configuration"},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
