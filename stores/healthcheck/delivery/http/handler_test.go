package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/domain/healthcheck/mocks"
)

type healthCheckHandlerSuite struct {
	suite.Suite

	e       *echo.Echo
	usecase *mocks.HealthCheckUsecase
}

func (s *healthCheckHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.usecase = &mocks.HealthCheckUsecase{}
	New(s.e, s.usecase)
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(healthCheckHandlerSuite))
}

func (s *healthCheckHandlerSuite) TestHealthy() {
	s.usecase.On("Check", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *healthCheckHandlerSuite) TestUnhealthy() {
	s.usecase.On("Check", mock.Anything).Return(errors.New("mongo unreachable"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
}
