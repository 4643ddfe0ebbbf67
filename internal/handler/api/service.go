package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	cmds commands.ServiceCommands
	q    queries.BusinessQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.BusinessQueries) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Description Public catalogue of a business, inactive entries included
// @Tags services
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	id, ok := uuidParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	list, err := h.q.Services(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(list))
}

// @Summary Create service
// @Description Requires manageServices
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	serviceID, err := h.cmds.Create(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Service(c.Request.Context(), id, serviceID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update service
// @Description Requires manageServices. Existing bookings keep their price snapshot.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Service patch"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/services/{serviceId} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	serviceID, ok := uuidParam(c, "serviceId", "Invalid service id")
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, serviceID, req.ToDomain()); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Service(c.Request.Context(), id, serviceID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Delete service
// @Description Requires manageServices. Bookings of the service keep their snapshot.
// @Tags services
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param serviceId path string true "Service ID"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/services/{serviceId} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	serviceID, ok := uuidParam(c, "serviceId", "Invalid service id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, serviceID); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
