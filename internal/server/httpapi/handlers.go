package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/loadwatch/internal/common"
	"github.com/labstack/echo/v4"
)

func (s *Server) login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
	}

	result, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid username or password"})
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}

	return c.JSON(http.StatusOK, loginResponse{
		FullName:    result.FullName,
		AccessToken: result.AccessToken,
	})
}

func (s *Server) createTestRun(c echo.Context) error {
	ctx := c.Request().Context()

	var req createRunRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
	}

	run, err := s.runs.CreateRun(ctx, req.Name)
	if err != nil {
		s.logger.Error(ctx, "create test run failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}

	return c.JSON(http.StatusCreated, runCreatedResponse{
		ID:        run.ID,
		Name:      run.Name,
		StartTime: run.StartTime.Format(time.RFC3339),
	})
}

func (s *Server) endTestRun(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := runID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Test run not found"})
	}

	run, err := s.runs.EndRun(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Test run not found"})
		case errors.Is(err, common.ErrorAlreadyEnded):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Test run already ended."})
		default:
			s.logger.Error(ctx, "end test run failed", "error", err.Error())
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
		}
	}

	return c.JSON(http.StatusOK, runEndedResponse{
		Message: "Test run ended.",
		EndTime: run.EndTime.Time.Format(time.RFC3339),
	})
}

func (s *Server) createCPUUsage(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := runID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Test run not found"})
	}

	var req recordSampleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
	}
	if req.UsagePercent == nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Missing usage_percent in request"})
	}

	sample, err := s.samples.RecordSample(ctx, id, *req.UsagePercent)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Test run not found"})
		}
		s.logger.Error(ctx, "record sample failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}

	return c.JSON(http.StatusCreated, sampleCreatedResponse{
		Message:      "CPU usage data created",
		CPUUsageID:   sample.ID,
		TestRunID:    sample.TestRunID,
		UsagePercent: sample.UsagePercent,
	})
}

func (s *Server) readCPUUsage(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := runID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Test run not found"})
	}

	name, list, err := s.samples.ListSamples(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Test run not found"})
		}
		s.logger.Error(ctx, "list samples failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}

	items := make([]sampleItem, 0, len(list))
	for _, sample := range list {
		items = append(items, sampleItem{
			ID:           sample.ID,
			UsagePercent: sample.UsagePercent,
			Timestamp:    sample.Timestamp.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, sampleListResponse{
		TestRunID:   id,
		TestRunName: name,
		CPUUsage:    items,
	})
}

func (s *Server) initDB(c echo.Context) error {
	ctx := c.Request().Context()

	if err := s.admin.InitDB(ctx); err != nil {
		s.logger.Error(ctx, "initdb failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Database tables created and demo data added."})
}

func runID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
