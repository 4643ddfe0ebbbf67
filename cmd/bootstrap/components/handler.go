package components

import (
	"marketplace-api/internal/handler"
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewBusinessHandler,
		api.NewEmployeeHandler,
		api.NewServiceHandler,
		middleware.NewAuthMiddleware,
		middleware.NewBusinessAccess,
		func(h handlerParams) handler.Handlers {
			return handler.Handlers{Booking: h.Booking, Business: h.Business, Employee: h.Employee, Service: h.Service}
		},
		func(m middlewareParams) handler.Middlewares {
			return handler.Middlewares{Logger: m.Logger, Auth: m.Auth, Access: m.Access}
		},
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In
	Booking  *api.BookingHandler
	Business *api.BusinessHandler
	Employee *api.EmployeeHandler
	Service  *api.ServiceHandler
}

type middlewareParams struct {
	fx.In
	Logger *middleware.Logger
	Auth   *middleware.AuthMiddleware
	Access *middleware.BusinessAccess
}
