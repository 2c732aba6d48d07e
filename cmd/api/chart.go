package main

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"celestial-chart/internal/chart"
	"celestial-chart/internal/i18n"
	"celestial-chart/internal/validation"
)

// ChartResponse is returned when at least one body could be charted.
// BodyResults maps each body to "success" or "Error: <reason>"; ImageURL is
// only set when charts are stored on disk.
type ChartResponse struct {
	Status           string            `json:"status" example:"success"`
	ImageBase64      string            `json:"image_base64"`
	BodyResults      map[string]string `json:"body_results"`
	Timezone         string            `json:"timezone" example:"Asia/Taipei"`
	TimezoneFallback bool              `json:"timezone_fallback" example:"false"`
	ImageURL         string            `json:"image_url,omitempty" example:"/download/celestial_chart_0d8f.png"`
	Location         string            `json:"location,omitempty" example:"Taipei, Taiwan"`
}

// ErrorResponse is returned for rejected or failed requests
type ErrorResponse struct {
	Status      string            `json:"status" example:"error"`
	Message     string            `json:"message"`
	BodyResults map[string]string `json:"body_results,omitempty"`
}

// handleCelestialChart godoc
// @Summary Generate an altitude chart
// @Description Compute the altitude of the selected celestial bodies over a time window for an observer and render it as a PNG line chart
// @Tags chart
// @Accept json
// @Produce json
// @Param request body validation.Input true "Observer, window and bodies"
// @Param lang query string false "Message language (en, zh)"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /celestial-chart [post]
func (app *App) handleCelestialChart(c *gin.Context) {
	locale := app.resolveLocale(c)

	var input validation.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		app.logger.Debug("malformed chart request", "error", err)
		app.respondError(c, http.StatusBadRequest, app.translator.T(locale, i18n.KeyMalformedRequest), nil)
		return
	}

	// Delegate to business layer
	result, err := app.chartService.Generate(c.Request.Context(), input)
	if err != nil {
		if verrs, ok := validation.AsErrors(err); ok {
			app.logger.Debug("chart request rejected", "error", verrs)
			app.respondError(c, http.StatusBadRequest, verrs.Localize(app.translator, locale), nil)
			return
		}

		var seriesErr *chart.SeriesError
		if errors.As(err, &seriesErr) {
			app.logger.Warn("no body could be computed", "bodies", len(seriesErr.Bodies))
			app.respondError(c, http.StatusInternalServerError,
				app.translator.T(locale, i18n.KeyNoSeries), chart.BodyStatuses(seriesErr.Bodies))
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to generate chart",
			"bodies", input.Bodies,
			"latitude", input.Latitude.String(),
			"longitude", input.Longitude.String(),
			"error", err,
		)
		app.respondError(c, http.StatusInternalServerError, app.translator.T(locale, i18n.KeyChartFailed), nil)
		return
	}

	resp := ChartResponse{
		Status:           "success",
		ImageBase64:      base64.StdEncoding.EncodeToString(result.Image),
		BodyResults:      chart.BodyStatuses(result.Bodies),
		Timezone:         result.Zone.Name,
		TimezoneFallback: result.Zone.Fallback,
		Location:         result.Location.Label(),
	}
	if result.Artifact != "" {
		resp.ImageURL = "/download/" + result.Artifact
	}

	c.JSON(http.StatusOK, resp)
}

func (app *App) respondError(c *gin.Context, status int, message string, bodies map[string]string) {
	c.JSON(status, ErrorResponse{
		Status:      "error",
		Message:     message,
		BodyResults: bodies,
	})
}
