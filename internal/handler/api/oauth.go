package api

import (
	"net/http"

	reqdto "agenda-engine/internal/handler/dto/request"
	"agenda-engine/internal/handler/httperr"
	"agenda-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OAuthHandler struct {
	connect commands.CalendarConnectCommands
}

func NewOAuthHandler(connect commands.CalendarConnectCommands) *OAuthHandler {
	return &OAuthHandler{connect: connect}
}

// @Summary Start calendar connection
// @Description Redirects the owner to the provider consent screen
// @Tags oauth
// @Param slug query string true "Business slug"
// @Success 302
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /oauth/start [get]
func (h *OAuthHandler) Start(c *gin.Context) {
	var q reqdto.OAuthStartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	url, err := h.connect.StartConnect(c.Request.Context(), q.Slug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// @Summary Calendar connection callback
// @Tags oauth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Signed state"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /oauth/callback [get]
func (h *OAuthHandler) Callback(c *gin.Context) {
	var q reqdto.OAuthCallbackQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	slug, err := h.connect.CompleteConnect(c.Request.Context(), q.Code, q.State)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected", "slug": slug})
}
