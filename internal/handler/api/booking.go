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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a service of a business. The end time defaults to start plus the service duration.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), caller, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/bookings/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description Bookings made by the caller, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings/my [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var pq reqdto.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	page, err := h.q.ListMine(c.Request.Context(), caller, pq.ToPageRequest())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Available slots
// @Description Free 30-minute start times of a business on a date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/slots/{businessId} [get]
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	businessID, ok := uuidParam(c, "businessId", "Invalid business id")
	if !ok {
		return
	}
	slots, err := h.q.AvailableSlots(c.Request.Context(), businessID, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableSlots(slots))
}

// @Summary Get booking
// @Description Visible to the customer, the business owner and admins
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Any status may follow any other; repeating the current status is a no-op
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), caller, id, req.ToInput()); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Review booking
// @Description Rate a completed booking. The business rating is recomputed in the same transaction.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AddReviewRequest true "Review"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/review [post]
func (h *BookingHandler) AddReview(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	var req reqdto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}
	if err := h.cmds.AddReview(c.Request.Context(), caller, id, req.ToInput()); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Description Admin only. Physically removes the booking.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "Invalid id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), caller, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
