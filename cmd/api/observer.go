package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"celestial-chart/internal/i18n"
	"celestial-chart/internal/observer"
	"celestial-chart/internal/types"
	"celestial-chart/internal/validation"
)

// ObserverResponse describes an observing site
type ObserverResponse struct {
	Latitude         float64          `json:"latitude" example:"25.03"`
	Longitude        float64          `json:"longitude" example:"121.56"`
	Timezone         string           `json:"timezone" example:"Asia/Taipei"`
	TimezoneFallback bool             `json:"timezone_fallback" example:"false"`
	Location         string           `json:"location,omitempty" example:"Taipei, Taiwan"`
	CountryCode      string           `json:"country_code,omitempty" example:"TW"`
	Elevation        *types.Elevation `json:"elevation,omitempty"`
}

// handleGetObserver godoc
// @Summary Describe an observing site
// @Description Resolve the timezone used for chart time axes, plus place name and elevation when those lookups are enabled
// @Tags observer
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(25.03)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(121.56)
// @Param lang query string false "Message language (en, zh)"
// @Success 200 {object} ObserverResponse
// @Failure 400 {object} ErrorResponse
// @Router /observer [get]
func (app *App) handleGetObserver(c *gin.Context) {
	locale := app.resolveLocale(c)

	coords, err := validation.ValidateCoords(queryValue(c, "latitude"), queryValue(c, "longitude"))
	if err != nil {
		if verrs, ok := validation.AsErrors(err); ok {
			app.respondError(c, http.StatusBadRequest, verrs.Localize(app.translator, locale), nil)
			return
		}
		app.respondError(c, http.StatusBadRequest, app.translator.T(locale, i18n.KeyMalformedRequest), nil)
		return
	}

	point, err := app.observerService.Describe(c.Request.Context(), coords)
	if err != nil {
		if errors.Is(err, observer.ErrInvalidLatitude) || errors.Is(err, observer.ErrInvalidLongitude) {
			app.respondError(c, http.StatusBadRequest, app.translator.T(locale, i18n.KeyMalformedRequest), nil)
			return
		}

		app.logger.Error("failed to describe observer",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		app.respondError(c, http.StatusInternalServerError, "failed to describe observer", nil)
		return
	}

	c.JSON(http.StatusOK, ObserverResponse{
		Latitude:         point.Coordinates.Latitude,
		Longitude:        point.Coordinates.Longitude,
		Timezone:         point.Timezone,
		TimezoneFallback: point.TimezoneFallback,
		Location:         point.Location.Label(),
		CountryCode:      point.Location.CountryCode,
		Elevation:        point.Elevation,
	})
}

// queryValue returns the named query parameter as an unparsed value, unset
// when the parameter is absent.
func queryValue(c *gin.Context, key string) validation.RawValue {
	v, ok := c.GetQuery(key)
	if !ok {
		return validation.RawValue{}
	}
	return validation.String(v)
}
