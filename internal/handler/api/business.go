package api

import (
	"net/http"

	"marketplace-api/internal/domain/schedule"
	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	cmds     commands.BusinessCommands
	q        queries.BusinessQueries
	bookings queries.BookingQueries
}

func NewBusinessHandler(cmds commands.BusinessCommands, q queries.BusinessQueries, bookings queries.BookingQueries) *BusinessHandler {
	return &BusinessHandler{cmds: cmds, q: q, bookings: bookings}
}

// @Summary Create business
// @Description Create a business owned by the caller. Requires the business or admin role.
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBusinessRequest true "Business profile"
// @Success 201 {object} resdto.BusinessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /businesses [post]
func (h *BusinessHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), caller, req.ToDomain())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/businesses/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromBusinessView(view))
}

// @Summary Get business
// @Description Public profile including rating and working hours
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} resdto.BusinessResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id} [get]
func (h *BusinessHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBusinessView(view))
}

// @Summary Update business profile
// @Description Only keys present in the body change. Requires editProfile.
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.UpdateBusinessRequest true "Profile patch"
// @Success 200 {object} resdto.BusinessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id} [put]
func (h *BusinessHandler) Update(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), id, req.ToDomain()); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBusinessView(view))
}

// @Summary List business bookings
// @Description Requires manageBookings. Optional date and status filters.
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param status query string false "Booking status"
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/bookings [get]
func (h *BusinessHandler) Bookings(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	var bq reqdto.BusinessBookingsQuery
	if err := c.ShouldBindQuery(&bq); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	var filter queries.BookingFilter
	if bq.Date != "" {
		d, err := schedule.ParseDate(bq.Date)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		filter.Date = &d
	}
	if bq.Status != "" {
		filter.Status = &bq.Status
	}
	page, err := h.bookings.ListForBusiness(c.Request.Context(), id, filter, bq.ToPageRequest())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Business analytics
// @Description Booking counts per status, paid revenue and rating. Requires viewAnalytics.
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/analytics [get]
func (h *BusinessHandler) Analytics(c *gin.Context) {
	id, ok := accessOrAbort(c)
	if !ok {
		return
	}
	view, err := h.q.Analytics(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAnalyticsView(view))
}
