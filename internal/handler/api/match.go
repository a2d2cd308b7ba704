package api

import (
	"context"
	"net/http"

	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchHandler struct {
	cmds commands.MatchCommands
	q    queries.MatchQueries
}

func NewMatchHandler(cmds commands.MatchCommands, q queries.MatchQueries) *MatchHandler {
	return &MatchHandler{cmds: cmds, q: q}
}

// @Summary Get match
// @Description Match details with state and remaining spots. joined is set for authenticated callers.
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.MatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /matches/{id} [get]
func (h *MatchHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	h.respond(c, http.StatusOK, view, err)
}

// @Summary Join match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.MatchResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /matches/{id}/join [post]
func (h *MatchHandler) Join(c *gin.Context) {
	h.mutate(c, h.cmds.Join)
}

// @Summary Leave match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.MatchResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /matches/{id}/participants/me [delete]
func (h *MatchHandler) Leave(c *gin.Context) {
	h.mutate(c, h.cmds.Leave)
}

func (h *MatchHandler) mutate(c *gin.Context, op func(context.Context, shared.Actor, uuid.UUID) (*queries.MatchView, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := op(c.Request.Context(), middleware.GetActor(c), id)
	h.respond(c, http.StatusOK, view, err)
}

func (h *MatchHandler) respond(c *gin.Context, status int, view *queries.MatchView, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromMatchView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}
