package api

import (
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Current profile
// @Description has_contact is false until a phone number is stored.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Router /me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	view, err := h.q.Me(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromProfileView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update contact info
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateContactRequest true "Contact info"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /me/contact [put]
func (h *ProfileHandler) UpdateContact(c *gin.Context) {
	var req reqdto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateContact(c.Request.Context(), req.ToInput(middleware.GetActor(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromProfileView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
