package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// HealthResponse reports liveness or readiness
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleHealthz godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (app *App) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleReadyz godoc
// @Summary Readiness probe
// @Description Reports whether the artifact directory is usable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (app *App) handleReadyz(c *gin.Context) {
	checks := map[string]string{"artifacts": "disabled"}
	status := http.StatusOK

	if app.store != nil {
		info, err := os.Stat(app.store.Dir())
		switch {
		case err != nil:
			checks["artifacts"] = err.Error()
			status = http.StatusServiceUnavailable
		case !info.IsDir():
			checks["artifacts"] = "not a directory"
			status = http.StatusServiceUnavailable
		default:
			checks["artifacts"] = "ok"
		}
	}

	resp := HealthResponse{Status: "ok", Checks: checks}
	if status != http.StatusOK {
		resp.Status = "unavailable"
	}
	c.JSON(status, resp)
}
