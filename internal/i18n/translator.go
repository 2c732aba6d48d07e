// Package i18n selects user-facing message text by locale.
package i18n

import (
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// Locale is a supported message language.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"

	// Default is used when no preference is given or the preference is unsupported.
	Default = English
)

// ParseLocale accepts codes such as "en", "zh", "zh-TW" or "zh_CN".
func ParseLocale(code string) (Locale, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, "_", "-")
	switch {
	case code == "en" || strings.HasPrefix(code, "en-"):
		return English, true
	case code == "zh" || strings.HasPrefix(code, "zh-"):
		return Chinese, true
	default:
		return "", false
	}
}

// FromAcceptLanguage picks the best supported locale for an Accept-Language header.
func FromAcceptLanguage(header string) Locale {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Default
	}
	// tags are ordered by quality; the first supported base language wins.
	for _, tag := range tags {
		base, _ := tag.Base()
		if locale, ok := ParseLocale(base.String()); ok {
			return locale
		}
	}
	return Default
}

// Translator renders message keys for a locale.
type Translator struct {
	uni *ut.UniversalTranslator
}

// NewTranslator registers every message of the lookup table.
func NewTranslator() (*Translator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, zh.New())

	for locale, table := range messages {
		trans, found := uni.GetTranslator(string(locale))
		if !found {
			return nil, fmt.Errorf("no translator for locale %q", locale)
		}
		for key, text := range table {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("failed to register %s message %q: %w", locale, key, err)
			}
		}
	}

	return &Translator{uni: uni}, nil
}

// T returns the message for key in locale, falling back to English and finally
// to the key itself.
func (t *Translator) T(locale Locale, key Key, params ...string) string {
	if trans, found := t.uni.GetTranslator(string(locale)); found {
		if msg, err := trans.T(key, params...); err == nil {
			return msg
		}
	}
	if trans, found := t.uni.GetTranslator(string(English)); found {
		if msg, err := trans.T(key, params...); err == nil {
			return msg
		}
	}
	return string(key)
}
