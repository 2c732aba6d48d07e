package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"celestial-chart/internal/i18n"
)

const (
	langCookie = "lang"
	langParam  = "lang"
)

var langCookieMaxAge = int((365 * 24 * time.Hour).Seconds())

// LanguageResponse confirms a language change
type LanguageResponse struct {
	Status   string `json:"status" example:"success"`
	Language string `json:"language" example:"zh"`
	Message  string `json:"message"`
}

// resolveLocale picks the message language from the lang query parameter,
// the lang cookie, then Accept-Language.
func (app *App) resolveLocale(c *gin.Context) i18n.Locale {
	if locale, ok := i18n.ParseLocale(c.Query(langParam)); ok {
		return locale
	}
	if cookie, err := c.Cookie(langCookie); err == nil {
		if locale, ok := i18n.ParseLocale(cookie); ok {
			return locale
		}
	}
	return i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
}

// handleChangeLanguage godoc
// @Summary Change message language
// @Description Store the preferred language for error messages in the lang cookie
// @Tags locale
// @Produce json
// @Param code path string true "Language code" Enums(en, zh)
// @Success 200 {object} LanguageResponse
// @Failure 400 {object} ErrorResponse
// @Router /change_language/{code} [get]
func (app *App) handleChangeLanguage(c *gin.Context) {
	code := c.Param("code")

	locale, ok := i18n.ParseLocale(code)
	if !ok {
		current := app.resolveLocale(c)
		app.respondError(c, http.StatusBadRequest, app.translator.T(current, i18n.KeyUnsupportedLocale, code), nil)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(langCookie, string(locale), langCookieMaxAge, "/", "", false, false)

	c.JSON(http.StatusOK, LanguageResponse{
		Status:   "success",
		Language: string(locale),
		Message:  app.translator.T(locale, i18n.KeyLanguageChanged),
	})
}
