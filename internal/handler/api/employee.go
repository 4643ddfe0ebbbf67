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

type EmployeeHandler struct {
	cmds commands.EmployeeCommands
	q    queries.BusinessQueries
}

func NewEmployeeHandler(cmds commands.EmployeeCommands, q queries.BusinessQueries) *EmployeeHandler {
	return &EmployeeHandler{cmds: cmds, q: q}
}

// @Summary List employees
// @Description Visible to the owner, admins and the business's employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {array} resdto.EmployeeResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	list, err := h.q.Employees(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployees(list))
}

// @Summary Add employee
// @Description Owner or admin only. At most four employees per business.
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.AddEmployeeRequest true "Employee"
// @Success 201 {object} resdto.EmployeeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/employees [post]
func (h *EmployeeHandler) Add(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	emp, err := h.cmds.Add(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEmployee(emp))
}

// @Summary Update employee
// @Description Owner or admin only. Only keys present in the body change.
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param employeeId path string true "Employee ID"
// @Param request body reqdto.UpdateEmployeeRequest true "Employee patch"
// @Success 200 {object} resdto.EmployeeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/employees/{employeeId} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	employeeID, ok := uuidParam(c, "employeeId", "Invalid employee id")
	if !ok {
		return
	}
	var req reqdto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	emp, err := h.cmds.Update(c.Request.Context(), id, employeeID, req.ToDomain())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployee(emp))
}

// @Summary Remove employee
// @Description Owner or admin only
// @Tags employees
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param employeeId path string true "Employee ID"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/employees/{employeeId} [delete]
func (h *EmployeeHandler) Remove(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	employeeID, ok := uuidParam(c, "employeeId", "Invalid employee id")
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), id, employeeID); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
