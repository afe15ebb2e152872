// Package server exposes the nesting engine over HTTP for visualization
// frontends: submit points, get back the layout and utilization as JSON.
package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halefoglu/kurutepe/internal/engine"
	"github.com/halefoglu/kurutepe/internal/model"
)

// NestRequest is the body of POST /api/nest.
type NestRequest struct {
	Points   []model.Point2D     `json:"points" binding:"required"`
	Settings *model.NestSettings `json:"settings,omitempty"`
}

// NestResponse carries the layout and its utilization.
type NestResponse struct {
	Container   model.Polygon     `json:"container"`
	Placements  []model.Placement `json:"placements"`
	Utilization float64           `json:"utilization"`
}

// SweepRequest is the body of POST /api/sweep.
type SweepRequest struct {
	Points   []model.Point2D     `json:"points" binding:"required"`
	Settings *model.NestSettings `json:"settings,omitempty"`
	Steps    []float64           `json:"steps" binding:"required"`
}

// NewRouter builds the HTTP API.
func NewRouter() *gin.Engine {
	r := gin.Default()
	r.GET("/healthz", handleHealth)
	r.POST("/api/nest", handleNest)
	r.POST("/api/sweep", handleSweep)
	return r
}

// Run starts the API server on the given address.
func Run(addr string) error {
	log.Printf("Server running at http://%s", addr)
	return NewRouter().Run(addr)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func settingsOrDefault(s *model.NestSettings) model.NestSettings {
	if s == nil {
		return model.DefaultSettings()
	}
	settings := *s
	if len(settings.Angles) == 0 {
		settings.Angles = model.DefaultSettings().Angles
	}
	if settings.GridStep == 0 {
		settings.GridStep = model.DefaultSettings().GridStep
	}
	return settings
}

// statusFor maps engine errors to HTTP statuses: input problems are the
// caller's fault, anything else is ours.
func statusFor(err error) int {
	var ipe *model.InsufficientPointsError
	var dse *model.DegenerateShapeError
	if errors.As(err, &ipe) || errors.As(err, &dse) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func handleNest(c *gin.Context) {
	var req NestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := settingsOrDefault(req.Settings)
	if err := settings.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := engine.New(settings).NestPoints(req.Points)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, NestResponse{
		Container:   result.Container,
		Placements:  result.Placements,
		Utilization: result.Utilization(),
	})
}

func handleSweep(c *gin.Context) {
	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Steps) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one grid step is required"})
		return
	}
	for _, step := range req.Steps {
		if step <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("grid steps must be positive, got %g", step)})
			return
		}
	}

	settings := settingsOrDefault(req.Settings)
	if err := settings.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shape, err := model.BuildShape(req.Points)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	results, err := engine.Sweep(shape, settings, req.Steps)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": results})
}
