package api

import (
	"net/http"

	reqdto "agenda-engine/internal/handler/dto/request"
	resdto "agenda-engine/internal/handler/dto/response"
	"agenda-engine/internal/handler/httperr"
	"agenda-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings      commands.BookingCommands
	cancellations commands.CancellationCommands
}

func NewBookingHandler(bookings commands.BookingCommands, cancellations commands.CancellationCommands) *BookingHandler {
	return &BookingHandler{bookings: bookings, cancellations: cancellations}
}

// @Summary Create booking
// @Description Book a slot for a business. Rejections return 409 with the reason.
// @Tags bookings
// @Accept json
// @Produce json
// @Param slug path string true "Business slug"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} resdto.BookingResponse
// @Failure 429 {object} httperr.Response
// @Router /bookings/{slug} [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.bookings.CreateBooking(c.Request.Context(), req.ToCommand(c.Param("slug")))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if !result.Accepted {
		status = http.StatusConflict
	}
	c.JSON(status, resdto.FromBookingResult(result))
}

// @Summary Cancel booking
// @Description Cancel an appointment with the token from the confirmation email
// @Tags bookings
// @Produce json
// @Param token path string true "Cancel token"
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/cancel/{token} [post]
// @Router /bookings/cancel/{token} [get]
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.cancellations.CancelBooking(c.Request.Context(), c.Param("token")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelResponse{Success: true})
}
