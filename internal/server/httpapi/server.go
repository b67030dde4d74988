// Package httpapi exposes the telemetry service over HTTP/JSON.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/loadwatch/internal/logging"
	"github.com/dmitrijs2005/loadwatch/internal/server/models"
	"github.com/dmitrijs2005/loadwatch/internal/server/services"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Service interfaces consumed by the handlers. The concrete
// implementations live in internal/server/services.
type userService interface {
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
}

type runService interface {
	CreateRun(ctx context.Context, name string) (*models.TestRun, error)
	EndRun(ctx context.Context, id int64) (*models.TestRun, error)
}

type sampleService interface {
	RecordSample(ctx context.Context, runID int64, usagePercent float64) (*models.CPUSample, error)
	ListSamples(ctx context.Context, runID int64) (string, []*models.CPUSample, error)
}

type adminService interface {
	InitDB(ctx context.Context) error
}

type Server struct {
	address   string
	logger    logging.Logger
	users     userService
	runs      runService
	samples   sampleService
	admin     adminService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, rs *services.RunService,
	ss *services.SampleService, as *services.AdminService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		runs:      rs,
		samples:   ss,
		admin:     as,
		jwtSecret: []byte(secretKey),
	}
}

// routes builds the echo instance with middleware and all endpoints.
func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(s.requestLogger)
	e.Use(middleware.Recover())

	// Public endpoints: authentication and the destructive schema reset.
	e.POST("/login", s.login)
	e.GET("/initdb", s.initDB)

	protected := e.Group("", s.bearerAuth)
	protected.POST("/test_runs", s.createTestRun)
	protected.PUT("/test_runs/:id/end", s.endTestRun)
	protected.POST("/test_runs/:id/cpu_usage", s.createCPUUsage)
	protected.GET("/test_runs/:id/cpu_usage", s.readCPUUsage)

	return e
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	e := s.routes()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
