package validation

import (
	"errors"
	"fmt"
	"strings"

	"celestial-chart/internal/i18n"
)

// Kind classifies a validation failure.
type Kind string

const (
	InvalidNumber   Kind = "invalid_number"
	OutOfRange      Kind = "out_of_range"
	InvalidWindow   Kind = "invalid_window"
	InvalidStart    Kind = "invalid_start"
	EmptySelection  Kind = "empty_selection"
	UnsupportedBody Kind = "unsupported_body"
)

// Field names used in FieldError.
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldHours     = "hours"
	FieldStart     = "start"
	FieldBodies    = "bodies"
)

// FieldError is a single validation failure.
type FieldError struct {
	Kind  Kind
	Field string
	// Min and Max bound the field for OutOfRange and InvalidWindow. Max is 0
	// for an uncapped window.
	Min, Max float64
	// Bodies lists the offending names for UnsupportedBody, in request order.
	Bodies []string
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case OutOfRange:
		return fmt.Sprintf("%s: %s (%g to %g)", e.Field, e.Kind, e.Min, e.Max)
	case UnsupportedBody:
		return fmt.Sprintf("%s: %s: %s", e.Field, e.Kind, strings.Join(e.Bodies, ", "))
	default:
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
}

var fieldKeys = map[string]i18n.Key{
	FieldLatitude:  i18n.KeyFieldLatitude,
	FieldLongitude: i18n.KeyFieldLongitude,
	FieldHours:     i18n.KeyFieldHours,
}

// Localize renders the failure in the given locale.
func (e *FieldError) Localize(tr *i18n.Translator, locale i18n.Locale) string {
	field := e.Field
	if key, ok := fieldKeys[e.Field]; ok {
		field = tr.T(locale, key)
	}

	switch e.Kind {
	case InvalidNumber:
		return tr.T(locale, i18n.KeyInvalidNumber, field)
	case OutOfRange:
		return tr.T(locale, i18n.KeyOutOfRange, field, formatBound(e.Min), formatBound(e.Max))
	case InvalidWindow:
		if e.Max <= 0 {
			return tr.T(locale, i18n.KeyInvalidWindowOpen)
		}
		return tr.T(locale, i18n.KeyInvalidWindow, formatBound(e.Max))
	case InvalidStart:
		return tr.T(locale, i18n.KeyInvalidStart)
	case EmptySelection:
		return tr.T(locale, i18n.KeyEmptySelection)
	case UnsupportedBody:
		return tr.T(locale, i18n.KeyUnsupportedBody, strings.Join(e.Bodies, ", "))
	default:
		return e.Error()
	}
}

func formatBound(f float64) string {
	return fmt.Sprintf("%g", f)
}

// Errors collects every failure found in a request.
type Errors []*FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether a failure of the given kind is present.
func (e Errors) Has(kind Kind) bool {
	return e.Find(kind) != nil
}

// Find returns the first failure of the given kind, or nil.
func (e Errors) Find(kind Kind) *FieldError {
	for _, fe := range e {
		if fe.Kind == kind {
			return fe
		}
	}
	return nil
}

// Localize joins every failure message in the given locale.
func (e Errors) Localize(tr *i18n.Translator, locale i18n.Locale) string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Localize(tr, locale)
	}
	return strings.Join(msgs, " ")
}

// AsErrors extracts validation failures from err.
func AsErrors(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
