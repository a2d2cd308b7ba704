package api

import (
	"net/http"

	"fieldbook/internal/domain/user"
	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FieldHandler struct {
	q queries.FieldQueries
}

func NewFieldHandler(q queries.FieldQueries) *FieldHandler {
	return &FieldHandler{q: q}
}

// @Summary List fields
// @Description List bookable fields. Admins may include inactive fields.
// @Tags fields
// @Produce json
// @Param include_inactive query bool false "Include inactive fields (admin only)"
// @Success 200 {array} resdto.FieldResponse
// @Failure 503 {object} httperr.Response
// @Router /fields [get]
func (h *FieldHandler) List(c *gin.Context) {
	var q reqdto.ListFieldsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	includeInactive := q.IncludeInactive && middleware.HasRoleAtLeast(c, user.RoleAdmin)

	views, err := h.q.List(c.Request.Context(), includeInactive)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromFieldList(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get field
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [get]
func (h *FieldHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromFieldView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Field availability
// @Description Remaining capacity for a date, or for the one-hour slot starting at time.
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string false "Slot start (HH:MM)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/availability [get]
func (h *FieldHandler) Availability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	view, err := h.q.Availability(c.Request.Context(), id, q.Date, q.Time)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Field day schedule
// @Description Hourly slots between opening and closing hours with availability.
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/schedule [get]
func (h *FieldHandler) Schedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.ScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	view, err := h.q.Schedule(c.Request.Context(), id, q.Date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromScheduleView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
