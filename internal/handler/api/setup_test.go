//go:build unit

package api_test

import (
	"testing"
	"time"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler"
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/errs"
	commandsmock "marketplace-api/tests/mock/commands"
	queriesmock "marketplace-api/tests/mock/queries"
	usecasemock "marketplace-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const (
	customerToken = "customer-token"
	ownerToken    = "owner-token"
	adminToken    = "admin-token"
	strangerToken = "stranger-token"
)

var (
	customer = user.Caller{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Role: user.RoleUser}
	owner    = user.Caller{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Role: user.RoleBusiness}
	admin    = user.Caller{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Role: user.RoleAdmin}
	stranger = user.Caller{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Role: user.RoleUser}
)

// fixture wires the real router and middleware around mocked use cases.
type fixture struct {
	router       *gin.Engine
	ctrl         *gomock.Controller
	authorizer   *usecasemock.MockBusinessAuthorizer
	bookingCmds  *commandsmock.MockBookingCommands
	businessCmds *commandsmock.MockBusinessCommands
	employeeCmds *commandsmock.MockEmployeeCommands
	serviceCmds  *commandsmock.MockServiceCommands
	bookingQ     *queriesmock.MockBookingQueries
	businessQ    *queriesmock.MockBusinessQueries
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := &fixture{
		router:       gin.New(),
		ctrl:         ctrl,
		authorizer:   usecasemock.NewMockBusinessAuthorizer(ctrl),
		bookingCmds:  commandsmock.NewMockBookingCommands(ctrl),
		businessCmds: commandsmock.NewMockBusinessCommands(ctrl),
		employeeCmds: commandsmock.NewMockEmployeeCommands(ctrl),
		serviceCmds:  commandsmock.NewMockServiceCommands(ctrl),
		bookingQ:     queriesmock.NewMockBookingQueries(ctrl),
		businessQ:    queriesmock.NewMockBusinessQueries(ctrl),
	}

	tokens := usecasemock.NewMockTokenValidator(ctrl)
	tokens.EXPECT().ValidateToken(customerToken).Return(customer, nil).AnyTimes()
	tokens.EXPECT().ValidateToken(ownerToken).Return(owner, nil).AnyTimes()
	tokens.EXPECT().ValidateToken(adminToken).Return(admin, nil).AnyTimes()
	tokens.EXPECT().ValidateToken(strangerToken).Return(stranger, nil).AnyTimes()
	tokens.EXPECT().ValidateToken(gomock.Any()).Return(user.Caller{}, errs.Unauthorized("invalid token")).AnyTimes()

	cfg := config.Config{
		CORS: config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
			MaxAge:       time.Hour,
		},
		Log: config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339},
	}

	handler.NewRouter(f.router, cfg,
		handler.Handlers{
			Booking:  api.NewBookingHandler(f.bookingCmds, f.bookingQ),
			Business: api.NewBusinessHandler(f.businessCmds, f.businessQ, f.bookingQ),
			Employee: api.NewEmployeeHandler(f.employeeCmds, f.businessQ),
			Service:  api.NewServiceHandler(f.serviceCmds, f.businessQ),
		},
		handler.Middlewares{
			Logger: middleware.NewLogger(cfg.Log),
			Auth:   middleware.NewAuthMiddleware(tokens),
			Access: middleware.NewBusinessAccess(f.authorizer),
		},
	)
	return f
}
