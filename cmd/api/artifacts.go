package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"celestial-chart/internal/artifact"
	"celestial-chart/internal/i18n"
)

// handleDownload godoc
// @Summary Download a stored chart
// @Tags chart
// @Produce png
// @Param filename path string true "Chart file name"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /download/{filename} [get]
func (app *App) handleDownload(c *gin.Context) {
	app.serveArtifact(c, true)
}

// handleStatic godoc
// @Summary Show a stored chart inline
// @Tags chart
// @Produce png
// @Param filename path string true "Chart file name"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /static/{filename} [get]
func (app *App) handleStatic(c *gin.Context) {
	app.serveArtifact(c, false)
}

func (app *App) serveArtifact(c *gin.Context, attachment bool) {
	locale := app.resolveLocale(c)
	name := c.Param("filename")

	if !artifact.ValidName(name) {
		app.respondError(c, http.StatusBadRequest, app.translator.T(locale, i18n.KeyInvalidFilename), nil)
		return
	}
	if app.store == nil {
		app.respondError(c, http.StatusNotFound, app.translator.T(locale, i18n.KeyFileNotFound), nil)
		return
	}

	path, err := app.store.Path(name)
	if err != nil {
		switch {
		case errors.Is(err, artifact.ErrInvalidName):
			app.respondError(c, http.StatusBadRequest, app.translator.T(locale, i18n.KeyInvalidFilename), nil)
		case errors.Is(err, artifact.ErrNotFound):
			app.respondError(c, http.StatusNotFound, app.translator.T(locale, i18n.KeyFileNotFound), nil)
		default:
			app.logger.Error("failed to open chart", "name", name, "error", err)
			app.respondError(c, http.StatusInternalServerError, app.translator.T(locale, i18n.KeyChartFailed), nil)
		}
		return
	}

	c.Header("Content-Type", "image/png")
	if attachment {
		c.FileAttachment(path, name)
		return
	}
	c.File(path)
}
