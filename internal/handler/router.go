package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/handler/api"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router wires so the constructor stays short.
type Handlers struct {
	Booking  *api.BookingHandler
	Business *api.BusinessHandler
	Employee *api.EmployeeHandler
	Service  *api.ServiceHandler
}

type Middlewares struct {
	Logger *middleware.Logger
	Auth   *middleware.AuthMiddleware
	Access *middleware.BusinessAccess
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	reqdto.RegisterValidators()
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := mw.Auth.RequireAuth()
	access := mw.Access

	bookings := engine.Group("/bookings")
	bookings.Use(auth)
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/my", Handler: h.Booking.ListMine},
			{Method: http.MethodGet, Path: "/slots/:businessId", Handler: h.Booking.AvailableSlots},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateStatus},
			{Method: http.MethodPost, Path: "/:id/review", Handler: h.Booking.AddReview},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete, Mw: []gin.HandlerFunc{mw.Auth.RequireAdmin()}},
		})
	}

	businesses := engine.Group("/businesses")
	{
		addRoutes(businesses, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Business.Get},
			{Method: http.MethodGet, Path: "/:id/services", Handler: h.Service.List},
		})

		authed := businesses.Group("")
		authed.Use(auth)
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Business.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Business.Update, Mw: requireCap(access, business.CapEditProfile)},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Business.Bookings, Mw: requireCap(access, business.CapManageBookings)},
			{Method: http.MethodGet, Path: "/:id/analytics", Handler: h.Business.Analytics, Mw: requireCap(access, business.CapViewAnalytics)},

			{Method: http.MethodGet, Path: "/:id/employees", Handler: h.Employee.List, Mw: []gin.HandlerFunc{access.Require(nil)}},
			{Method: http.MethodPost, Path: "/:id/employees", Handler: h.Employee.Add, Mw: []gin.HandlerFunc{access.RequireOwner()}},
			{Method: http.MethodPut, Path: "/:id/employees/:employeeId", Handler: h.Employee.Update, Mw: []gin.HandlerFunc{access.RequireOwner()}},
			{Method: http.MethodDelete, Path: "/:id/employees/:employeeId", Handler: h.Employee.Remove, Mw: []gin.HandlerFunc{access.RequireOwner()}},

			{Method: http.MethodPost, Path: "/:id/services", Handler: h.Service.Create, Mw: requireCap(access, business.CapManageServices)},
			{Method: http.MethodPut, Path: "/:id/services/:serviceId", Handler: h.Service.Update, Mw: requireCap(access, business.CapManageServices)},
			{Method: http.MethodDelete, Path: "/:id/services/:serviceId", Handler: h.Service.Delete, Mw: requireCap(access, business.CapManageServices)},
		})
	}
}

func requireCap(access *middleware.BusinessAccess, c business.Capability) []gin.HandlerFunc {
	return []gin.HandlerFunc{access.Require(middleware.Cap(c))}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
