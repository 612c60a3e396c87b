package api

import (
	"net/http"

	reqdto "agenda-engine/internal/handler/dto/request"
	resdto "agenda-engine/internal/handler/dto/response"
	"agenda-engine/internal/handler/httperr"
	"agenda-engine/internal/handler/middleware"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultPageSize = 50

var errMissingOwner = errs.New("owner identity missing from context")

type OwnerHandler struct {
	q queries.OwnerQueries
}

func NewOwnerHandler(q queries.OwnerQueries) *OwnerHandler {
	return &OwnerHandler{q: q}
}

// @Summary Monthly usage
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UsageResponse
// @Failure 401 {object} httperr.Response
// @Router /owner/usage [get]
func (h *OwnerHandler) Usage(c *gin.Context) {
	slug, ok := middleware.GetBusinessSlug(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingOwner, "Unauthorized", nil)
		return
	}
	view, err := h.q.Usage(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsageView(view))
}

// @Summary List appointments
// @Description Appointments ordered by start, paginated with an opaque cursor
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param include_cancelled query bool false "Include cancelled appointments"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /owner/appointments [get]
func (h *OwnerHandler) ListAppointments(c *gin.Context) {
	slug, ok := middleware.GetBusinessSlug(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingOwner, "Unauthorized", nil)
		return
	}
	var q reqdto.OwnerAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	req, cursor := q.ToListRequest()
	views, next, err := h.q.ListAppointments(c.Request.Context(), slug, req, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromAppointmentViews(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get appointment
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/appointments/{id} [get]
func (h *OwnerHandler) GetAppointment(c *gin.Context) {
	slug, ok := middleware.GetBusinessSlug(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingOwner, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetAppointment(c.Request.Context(), slug, id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromAppointmentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
